/*
Package cubegrid manages a three-dimensional occupancy grid of voxels.

Each position in the grid is either occupied or empty, and every
occupied position can carry its own Appearance. Positions without one
inherit the grid's default appearance. The grid is the hand-off point
between structure generators (such as the maze engine) and the mesh
extraction layer.
*/
package cubegrid

import (
	"errors"
	"fmt"
)

var (
	ErrDimensions  = errors.New("all dimensions must be positive")
	ErrOutOfBounds = errors.New("position is outside grid bounds")
)

// Position addresses a single voxel in the grid.
type Position struct {
	X int
	Y int
	Z int
}

// Grid is a bounded voxel field with per-voxel appearance overrides.
type Grid struct {
	dx, dy, dz        int
	occupied          []bool
	appearances       map[Position]*Appearance
	defaultAppearance *Appearance
}

// New creates an empty grid with the given dimensions.
func New(dx, dy, dz int) (*Grid, error) {
	if dx <= 0 || dy <= 0 || dz <= 0 {
		return nil, ErrDimensions
	}

	return &Grid{
		dx:                dx,
		dy:                dy,
		dz:                dz,
		occupied:          make([]bool, dx*dy*dz),
		appearances:       make(map[Position]*Appearance),
		defaultAppearance: &Appearance{Color: [3]float64{0.5, 0.5, 0.5}, Alpha: 1, Material: defaultMaterial},
	}, nil
}

// Dimensions returns the grid extents along x, y and z.
func (g *Grid) Dimensions() (int, int, int) {
	return g.dx, g.dy, g.dz
}

// SetCube marks the voxel at pos as occupied or empty. A non-nil
// appearance overrides the default for that voxel; clearing a voxel
// also drops its override.
func (g *Grid) SetCube(pos Position, occupied bool, appearance *Appearance) error {
	if !g.inBounds(pos) {
		return fmt.Errorf("%w: %+v", ErrOutOfBounds, pos)
	}

	g.occupied[g.index(pos)] = occupied
	if occupied && appearance != nil {
		g.appearances[pos] = appearance
	} else if !occupied {
		delete(g.appearances, pos)
	}

	return nil
}

// Occupied reports whether the voxel at pos is occupied.
func (g *Grid) Occupied(pos Position) (bool, error) {
	if !g.inBounds(pos) {
		return false, fmt.Errorf("%w: %+v", ErrOutOfBounds, pos)
	}
	return g.occupied[g.index(pos)], nil
}

// AppearanceAt returns the appearance of the voxel at pos, falling back
// to the grid default when no override is set.
func (g *Grid) AppearanceAt(pos Position) *Appearance {
	if a, ok := g.appearances[pos]; ok {
		return a
	}
	return g.defaultAppearance
}

// SetDefaultAppearance replaces the appearance used for voxels without
// an override. Nil values are ignored.
func (g *Grid) SetDefaultAppearance(appearance *Appearance) {
	if appearance != nil {
		g.defaultAppearance = appearance
	}
}

// OccupiedPositions returns every occupied voxel position, ordered by
// x, then y, then z.
func (g *Grid) OccupiedPositions() []Position {
	var result []Position
	for x := 0; x < g.dx; x++ {
		for y := 0; y < g.dy; y++ {
			for z := 0; z < g.dz; z++ {
				pos := Position{X: x, Y: y, Z: z}
				if g.occupied[g.index(pos)] {
					result = append(result, pos)
				}
			}
		}
	}
	return result
}

// Clear empties every voxel and drops all appearance overrides.
func (g *Grid) Clear() {
	for i := range g.occupied {
		g.occupied[i] = false
	}
	g.appearances = make(map[Position]*Appearance)
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(dimensions=(%d, %d, %d), occupied=%d)", g.dx, g.dy, g.dz, len(g.OccupiedPositions()))
}

func (g *Grid) inBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < g.dx && pos.Y >= 0 && pos.Y < g.dy && pos.Z >= 0 && pos.Z < g.dz
}

func (g *Grid) index(pos Position) int {
	return (pos.X*g.dy+pos.Y)*g.dz + pos.Z
}
