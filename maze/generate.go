package maze

import (
	"math/rand"
	"time"
)

// carveDirections are the four candidate carving jumps: each moves two
// cells along one axis, crossing exactly one wall cell between lattice
// cells.
var carveDirections = [4]Position{
	{X: 0, Y: -2}, // up
	{X: 2, Y: 0},  // right
	{X: 0, Y: 2},  // down
	{X: -2, Y: 0}, // left
}

// Generate carves a fresh maze using a time-seeded pseudorandom source
// and computes the solution path. Previous cell state and solution are
// discarded first.
func (m *Maze) Generate() error {
	return m.generate(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// GenerateSeeded carves a fresh maze from the given seed. The same
// (width, height, seed) triple always produces an identical wall field
// and solution path.
func (m *Maze) GenerateSeeded(seed int64) error {
	return m.generate(rand.New(rand.NewSource(seed)))
}

// generate runs the full generation sequence: reset to all walls,
// randomized recursive carve from the start lattice cell, force-open
// the boundary entry and exit, then solve. The pseudorandom source is
// owned by this invocation, so concurrent generation of different
// mazes never interferes.
func (m *Maze) generate(rng *rand.Rand) error {
	m.reset()
	m.carve(1, 1, rng)

	// Entry and exit are fixed conventions, not discovered by the
	// random walk.
	entry, exit := m.Entry(), m.Exit()
	m.cells[entry.Y][entry.X] = false
	m.cells[exit.Y][exit.X] = false

	path, err := m.solve()
	if err != nil {
		return err
	}
	m.solution = path
	return nil
}

// carve opens the lattice cell at (x, y) and recurses into unvisited
// neighbors in a per-visit shuffled order, opening the intervening
// wall cell on the way. The recursion backtracks naturally once all
// four directions from a cell are exhausted; every lattice cell is
// visited exactly once, so the carved structure is a spanning tree.
func (m *Maze) carve(x, y int, rng *rand.Rand) {
	m.cells[y][x] = false

	directions := carveDirections
	rng.Shuffle(len(directions), func(i, j int) {
		directions[i], directions[j] = directions[j], directions[i]
	})

	for _, d := range directions {
		nx, ny := x+d.X, y+d.Y
		if m.inBounds(nx, ny) && m.cells[ny][nx] {
			m.cells[y+d.Y/2][x+d.X/2] = false
			m.carve(nx, ny, rng)
		}
	}
}

func (m *Maze) reset() {
	for y := range m.cells {
		for x := range m.cells[y] {
			m.cells[y][x] = true
		}
	}
	m.solution = nil
}
