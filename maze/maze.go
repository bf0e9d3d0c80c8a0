/*
Package maze generates guaranteed-solvable rectangular mazes.

A maze starts as an all-wall grid and is carved with randomized
recursive backtracking, which yields a perfect maze: exactly one open
path between any two reachable cells. A breadth-first solver then
recovers the unique path from the fixed entry to the fixed exit.

Cells are addressed as (x, y) with (0, 0) at the top-left. Dimensions
must be odd and at least 3x3: cells with both coordinates odd form the
carvable lattice, and the positions between them are the removable
walls. The carved maze can be projected onto a cubegrid.Grid for mesh
extraction, with configurable appearances for wall, path and solution
cells.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mazemesh/mazemesh/cubegrid"
)

var (
	ErrTooSmall      = errors.New("maze dimensions must be at least 3x3")
	ErrEvenDimension = errors.New("maze dimensions must be odd numbers")
	ErrOutOfBounds   = errors.New("position is outside maze bounds")
	ErrNoSolution    = errors.New("no solution path found: maze generation failed")
)

// Position is a cell coordinate in the maze grid.
type Position struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Options configures the appearances used when projecting a maze onto
// a cube grid. Appearance values are opaque to the engine and fixed at
// construction. A nil WallAppearance or SolutionAppearance falls back
// to the package default for its role; a nil PathAppearance leaves
// open cells unoccupied in the projection.
type Options struct {
	WallAppearance     *cubegrid.Appearance
	PathAppearance     *cubegrid.Appearance
	SolutionAppearance *cubegrid.Appearance
}

// Maze is a rectangular wall/open field with a fixed entry on the top
// boundary and a fixed exit on the bottom boundary. It is created
// fully walled; Generate or GenerateSeeded carves it and computes the
// solution path. After generation the maze is read-only.
type Maze struct {
	width    int
	height   int
	cells    [][]bool // [y][x], true = wall
	solution []Position

	wallAppearance     *cubegrid.Appearance
	pathAppearance     *cubegrid.Appearance
	solutionAppearance *cubegrid.Appearance
}

// New validates the dimensions and returns an ungenerated, fully
// walled maze.
func New(width, height int, opts *Options) (*Maze, error) {
	if width < 3 || height < 3 {
		return nil, ErrTooSmall
	}
	if width%2 == 0 || height%2 == 0 {
		return nil, ErrEvenDimension
	}

	if opts == nil {
		opts = &Options{}
	}
	wallAppearance := opts.WallAppearance
	if wallAppearance == nil {
		wallAppearance = &cubegrid.Appearance{Color: [3]float64{0.8, 0.8, 0.8}, Alpha: 1, Material: "default"}
	}
	solutionAppearance := opts.SolutionAppearance
	if solutionAppearance == nil {
		solutionAppearance = &cubegrid.Appearance{Color: [3]float64{1, 1, 0}, Alpha: 1, Material: "default"}
	}

	cells := make([][]bool, height)
	for y := range cells {
		cells[y] = make([]bool, width)
		for x := range cells[y] {
			cells[y][x] = true
		}
	}

	return &Maze{
		width:              width,
		height:             height,
		cells:              cells,
		wallAppearance:     wallAppearance,
		pathAppearance:     opts.PathAppearance,
		solutionAppearance: solutionAppearance,
	}, nil
}

// Width returns the number of columns in the maze.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows in the maze.
func (m *Maze) Height() int {
	return m.height
}

// Entry returns the single opening carved through the top boundary.
func (m *Maze) Entry() Position {
	return Position{X: 1, Y: 0}
}

// Exit returns the single opening carved through the bottom boundary.
func (m *Maze) Exit() Position {
	return Position{X: m.width - 2, Y: m.height - 1}
}

// IsWall reports whether the cell at (x, y) is a wall. Coordinates
// outside [0, width) x [0, height) yield an out-of-bounds error.
func (m *Maze) IsWall(x, y int) (bool, error) {
	if !m.inBounds(x, y) {
		return false, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	return m.cells[y][x], nil
}

// SolutionPath returns a copy of the entry-to-exit path computed by
// the last generation. Callers own the returned slice; mutating it
// does not affect the maze. The result is empty before generation.
func (m *Maze) SolutionPath() []Position {
	path := make([]Position, len(m.solution))
	copy(path, m.solution)
	return path
}

// Render provides a diagnostic text drawing of the maze, one character
// per cell and one line per row: '#' for walls, ' ' for open cells and
// 'o' for solution cells when showSolution is set.
func (m *Maze) Render(showSolution bool) string {
	onPath := make(map[Position]bool)
	if showSolution {
		for _, p := range m.solution {
			onPath[p] = true
		}
	}

	var b strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			switch {
			case onPath[Position{X: x, Y: y}]:
				b.WriteByte('o')
			case m.cells[y][x]:
				b.WriteByte('#')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return m.Render(false)
}

func (m *Maze) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}
