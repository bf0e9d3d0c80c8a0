package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mazemesh/mazemesh/cubegrid"
)

func TestNew(t *testing.T) {
	t.Run("rejects dimensions below 3x3", func(t *testing.T) {
		for _, dims := range [][2]int{{1, 5}, {2, 5}, {5, 1}, {5, 2}, {0, 0}} {
			m, err := New(dims[0], dims[1], nil)
			assert.ErrorIs(t, err, ErrTooSmall)
			assert.Nil(t, m)
		}
	})

	t.Run("rejects even dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{4, 5}, {5, 4}, {6, 6}} {
			m, err := New(dims[0], dims[1], nil)
			assert.ErrorIs(t, err, ErrEvenDimension)
			assert.Nil(t, m)
		}
	})

	t.Run("accepts minimal odd dimensions", func(t *testing.T) {
		m, err := New(3, 3, nil)
		assert.NoError(t, err)
		assert.Equal(t, 3, m.Width())
		assert.Equal(t, 3, m.Height())
		assert.Equal(t, Position{X: 1, Y: 0}, m.Entry())
		assert.Equal(t, Position{X: 1, Y: 2}, m.Exit())
	})

	t.Run("starts fully walled", func(t *testing.T) {
		m, err := New(5, 5, nil)
		assert.NoError(t, err)
		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				wall, err := m.IsWall(x, y)
				assert.NoError(t, err)
				assert.True(t, wall)
			}
		}
		assert.Empty(t, m.SolutionPath())
	})
}

func TestIsWallBounds(t *testing.T) {
	m, err := New(5, 7, nil)
	assert.NoError(t, err)

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 7}, {5, 7}} {
		_, err := m.IsWall(pos[0], pos[1])
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
}

func TestGenerateMinimalMaze(t *testing.T) {
	// A 3x3 maze has a single interior lattice cell, so the layout is
	// fully determined regardless of the seed.
	m, err := New(3, 3, nil)
	assert.NoError(t, err)
	assert.NoError(t, m.GenerateSeeded(42))

	open := map[Position]bool{
		{X: 1, Y: 0}: true,
		{X: 1, Y: 1}: true,
		{X: 1, Y: 2}: true,
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			wall, err := m.IsWall(x, y)
			assert.NoError(t, err)
			assert.Equal(t, !open[Position{X: x, Y: y}], wall, "cell (%d, %d)", x, y)
		}
	}

	assert.Equal(t, []Position{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}, m.SolutionPath())
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	first, err := New(15, 11, nil)
	assert.NoError(t, err)
	second, err := New(15, 11, nil)
	assert.NoError(t, err)

	assert.NoError(t, first.GenerateSeeded(7))
	assert.NoError(t, second.GenerateSeeded(7))

	assert.Equal(t, first.Render(false), second.Render(false))
	assert.Equal(t, first.SolutionPath(), second.SolutionPath())
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	first, err := New(9, 9, nil)
	assert.NoError(t, err)
	second, err := New(9, 9, nil)
	assert.NoError(t, err)

	assert.NoError(t, first.GenerateSeeded(1))
	assert.NoError(t, second.GenerateSeeded(2))

	assert.NotEqual(t, first.Render(false), second.Render(false))
}

func TestSolutionPathValidity(t *testing.T) {
	m, err := New(21, 13, nil)
	assert.NoError(t, err)
	assert.NoError(t, m.GenerateSeeded(42))

	path := m.SolutionPath()
	assert.GreaterOrEqual(t, len(path), 2)
	assert.Equal(t, m.Entry(), path[0])
	assert.Equal(t, m.Exit(), path[len(path)-1])

	seen := make(map[Position]bool)
	for idx, p := range path {
		wall, err := m.IsWall(p.X, p.Y)
		assert.NoError(t, err)
		assert.False(t, wall, "solution cell (%d, %d) must be open", p.X, p.Y)

		assert.False(t, seen[p], "solution repeats cell (%d, %d)", p.X, p.Y)
		seen[p] = true

		if idx > 0 {
			prev := path[idx-1]
			distance := abs(p.X-prev.X) + abs(p.Y-prev.Y)
			assert.Equal(t, 1, distance, "steps %d and %d are not adjacent", idx-1, idx)
		}
	}
}

func TestSevenBySevenSeed42(t *testing.T) {
	m, err := New(7, 7, nil)
	assert.NoError(t, err)
	assert.NoError(t, m.GenerateSeeded(42))

	path := m.SolutionPath()
	assert.GreaterOrEqual(t, len(path), 2)
	assert.Equal(t, Position{X: 1, Y: 0}, path[0])
	assert.Equal(t, Position{X: 5, Y: 6}, path[len(path)-1])

	for idx := 1; idx < len(path); idx++ {
		distance := abs(path[idx].X-path[idx-1].X) + abs(path[idx].Y-path[idx-1].Y)
		assert.Equal(t, 1, distance)
	}
}

func TestSolutionPathCopyIsolation(t *testing.T) {
	m, err := New(7, 7, nil)
	assert.NoError(t, err)
	assert.NoError(t, m.GenerateSeeded(3))

	first := m.SolutionPath()
	first[0] = Position{X: 99, Y: 99}

	second := m.SolutionPath()
	assert.Equal(t, m.Entry(), second[0])
	assert.NotEqual(t, first[0], second[0])
}

func TestRegenerateReplacesState(t *testing.T) {
	m, err := New(9, 9, nil)
	assert.NoError(t, err)

	assert.NoError(t, m.GenerateSeeded(5))
	firstRender := m.Render(false)

	assert.NoError(t, m.GenerateSeeded(6))
	assert.NotEqual(t, firstRender, m.Render(false))

	assert.NoError(t, m.GenerateSeeded(5))
	assert.Equal(t, firstRender, m.Render(false))
}

func TestRender(t *testing.T) {
	m, err := New(7, 7, nil)
	assert.NoError(t, err)
	assert.NoError(t, m.GenerateSeeded(42))

	t.Run("one line per row, one glyph per cell", func(t *testing.T) {
		rendered := m.Render(false)
		lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
		assert.Len(t, lines, 7)
		for _, line := range lines {
			assert.Len(t, line, 7)
		}
		assert.Contains(t, rendered, "#")
		assert.NotContains(t, rendered, "o")
	})

	t.Run("solution glyphs match the solution path", func(t *testing.T) {
		rendered := m.Render(true)
		assert.Equal(t, len(m.SolutionPath()), strings.Count(rendered, "o"))
	})

	t.Run("String matches Render without solution", func(t *testing.T) {
		assert.Equal(t, m.Render(false), m.String())
	})
}

func TestToCubeGrid(t *testing.T) {
	m, err := New(3, 3, nil)
	assert.NoError(t, err)
	assert.NoError(t, m.GenerateSeeded(1))

	t.Run("walls become occupied voxels", func(t *testing.T) {
		grid := m.ToCubeGrid(false)
		dx, dy, dz := grid.Dimensions()
		assert.Equal(t, [3]int{3, 1, 3}, [3]int{dx, dy, dz})

		occupied, err := grid.Occupied(cubegrid.Position{X: 0, Y: 0, Z: 0})
		assert.NoError(t, err)
		assert.True(t, occupied)
		assert.Equal(t, [3]float64{0.8, 0.8, 0.8}, grid.AppearanceAt(cubegrid.Position{X: 0, Y: 0, Z: 0}).Color)
	})

	t.Run("open cells stay empty without a path appearance", func(t *testing.T) {
		grid := m.ToCubeGrid(false)
		occupied, err := grid.Occupied(cubegrid.Position{X: 1, Y: 0, Z: 1})
		assert.NoError(t, err)
		assert.False(t, occupied)
	})

	t.Run("solution cells get the solution appearance", func(t *testing.T) {
		grid := m.ToCubeGrid(true)
		occupied, err := grid.Occupied(cubegrid.Position{X: 1, Y: 0, Z: 1})
		assert.NoError(t, err)
		assert.True(t, occupied)
		assert.Equal(t, [3]float64{1, 1, 0}, grid.AppearanceAt(cubegrid.Position{X: 1, Y: 0, Z: 1}).Color)
	})

	t.Run("configured appearances pass through", func(t *testing.T) {
		wall, err := cubegrid.NewAppearance(0.1, 0.2, 0.3, 1, "stone")
		assert.NoError(t, err)
		path, err := cubegrid.NewAppearance(0, 0, 0, 1, "floor")
		assert.NoError(t, err)

		custom, err := New(3, 3, &Options{WallAppearance: wall, PathAppearance: path})
		assert.NoError(t, err)
		assert.NoError(t, custom.GenerateSeeded(1))

		grid := custom.ToCubeGrid(false)
		assert.Equal(t, wall, grid.AppearanceAt(cubegrid.Position{X: 0, Y: 0, Z: 0}))

		occupied, err := grid.Occupied(cubegrid.Position{X: 1, Y: 0, Z: 0})
		assert.NoError(t, err)
		assert.True(t, occupied, "entry cell should carry the path appearance")
		assert.Equal(t, path, grid.AppearanceAt(cubegrid.Position{X: 1, Y: 0, Z: 0}))
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
