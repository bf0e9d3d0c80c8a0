/*
Package mesh extracts triangulated cube meshes from a cubegrid.Grid.

Every occupied voxel contributes eight vertices and twelve triangles,
with a per-vertex RGBA color taken from the voxel's appearance. The
result can be written out as Wavefront OBJ text, with colors carried as
inline comments since OBJ has no vertex-color channel.
*/
package mesh

import (
	"errors"

	"github.com/mazemesh/mazemesh/cubegrid"
)

var ErrCubeSize = errors.New("cube size must be positive")

// Mesh holds flat vertex, face and color buffers. Faces index into
// Vertices zero-based; Colors holds one RGBA value per vertex.
type Mesh struct {
	Vertices [][3]float64
	Faces    [][3]int
	Colors   [][4]float64
}

// Generator turns cube grids into meshes with a fixed cube edge
// length.
type Generator struct {
	cubeSize float64
}

// NewGenerator returns a Generator producing cubes of the given edge
// length.
func NewGenerator(cubeSize float64) (*Generator, error) {
	if cubeSize <= 0 {
		return nil, ErrCubeSize
	}
	return &Generator{cubeSize: cubeSize}, nil
}

// Generate builds the mesh for every occupied voxel in the grid.
func (g *Generator) Generate(grid *cubegrid.Grid) *Mesh {
	m := &Mesh{}

	offset := 0
	for _, pos := range grid.OccupiedPositions() {
		vertices, faces := g.cubeGeometry(pos)
		appearance := grid.AppearanceAt(pos)

		m.Vertices = append(m.Vertices, vertices...)
		for _, f := range faces {
			m.Faces = append(m.Faces, [3]int{f[0] + offset, f[1] + offset, f[2] + offset})
		}

		color := [4]float64{appearance.Color[0], appearance.Color[1], appearance.Color[2], appearance.Alpha}
		for range vertices {
			m.Colors = append(m.Colors, color)
		}

		offset += len(vertices)
	}

	return m
}

// cubeGeometry returns the eight corner vertices and twelve triangles
// of the axis-aligned cube at the given grid position.
func (g *Generator) cubeGeometry(pos cubegrid.Position) ([][3]float64, [][3]int) {
	s := g.cubeSize
	x0, y0, z0 := float64(pos.X)*s, float64(pos.Y)*s, float64(pos.Z)*s
	x1, y1, z1 := x0+s, y0+s, z0+s

	vertices := [][3]float64{
		{x0, y0, z0}, // 0: back-bottom-left
		{x1, y0, z0}, // 1: back-bottom-right
		{x1, y1, z0}, // 2: back-top-right
		{x0, y1, z0}, // 3: back-top-left
		{x0, y0, z1}, // 4: front-bottom-left
		{x1, y0, z1}, // 5: front-bottom-right
		{x1, y1, z1}, // 6: front-top-right
		{x0, y1, z1}, // 7: front-top-left
	}

	// Two triangles per cube face, wound to face outward.
	faces := [][3]int{
		{0, 1, 2}, {0, 2, 3}, // back (z = z0)
		{4, 6, 5}, {4, 7, 6}, // front (z = z1)
		{0, 3, 7}, {0, 7, 4}, // left (x = x0)
		{1, 5, 6}, {1, 6, 2}, // right (x = x1)
		{0, 4, 5}, {0, 5, 1}, // bottom (y = y0)
		{3, 2, 6}, {3, 6, 7}, // top (y = y1)
	}

	return vertices, faces
}
