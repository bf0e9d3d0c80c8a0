package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteOBJ writes the mesh as Wavefront OBJ text. OBJ has no native
// vertex-color channel, so each vertex line carries its RGBA color as
// a trailing comment. Face indices are written 1-based per the OBJ
// convention.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for i, v := range m.Vertices {
		c := m.Colors[i]
		if _, err := fmt.Fprintf(bw, "v %.6f %.6f %.6f # color: %.3f %.3f %.3f %.3f\n",
			v[0], v[1], v[2], c[0], c[1], c[2], c[3]); err != nil {
			return err
		}
	}

	for _, f := range m.Faces {
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ExportOBJ writes the mesh to a file at path in OBJ format.
func (m *Mesh) ExportOBJ(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return m.WriteOBJ(f)
}
