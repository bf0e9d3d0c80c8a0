package maze

import "github.com/mazemesh/mazemesh/cubegrid"

// ToCubeGrid projects the maze onto a one-voxel-deep cube grid laid
// out in the x/z plane. Wall cells become occupied voxels with the
// wall appearance. When includeSolution is set, solution cells become
// occupied voxels with the solution appearance. Remaining open cells
// are occupied with the path appearance when one was configured and
// left empty otherwise.
func (m *Maze) ToCubeGrid(includeSolution bool) *cubegrid.Grid {
	// Dimensions were validated at construction, so this cannot fail.
	grid, _ := cubegrid.New(m.width, 1, m.height)

	onPath := make(map[Position]bool)
	if includeSolution {
		for _, p := range m.solution {
			onPath[p] = true
		}
	}

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			pos := cubegrid.Position{X: x, Y: 0, Z: y}
			switch {
			case m.cells[y][x]:
				_ = grid.SetCube(pos, true, m.wallAppearance)
			case onPath[Position{X: x, Y: y}]:
				_ = grid.SetCube(pos, true, m.solutionAppearance)
			case m.pathAppearance != nil:
				_ = grid.SetCube(pos, true, m.pathAppearance)
			}
		}
	}

	return grid
}
