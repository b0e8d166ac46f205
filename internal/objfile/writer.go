package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"mesh-explode/internal/mesh"
)

// Write emits the mesh as OBJ with 1-based indices.
func Write(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	if m.Name != "" {
		fmt.Fprintf(bw, "o %s\n", m.Name)
	}
	for _, v := range m.Verts {
		fmt.Fprintf(bw, "v %s %s %s\n", fmtFloat(v[0]), fmtFloat(v[1]), fmtFloat(v[2]))
	}
	for _, f := range m.Faces {
		bw.WriteString("f")
		for _, vi := range f {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(vi + 1))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Save writes the mesh to path, creating or truncating it.
func Save(path string, m *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("objfile: create %s: %w", path, err)
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return fmt.Errorf("objfile: write %s: %w", path, err)
	}
	return f.Close()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
