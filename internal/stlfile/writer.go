// Package stlfile writes meshes as binary STL.
package stlfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"mesh-explode/internal/mathutil"
	"mesh-explode/internal/mesh"
)

const headerSize = 80

// TriangleCount returns the number of facets Write emits: each face with n
// corners is fan-triangulated into n-2 triangles.
func TriangleCount(m *mesh.Mesh) int {
	n := 0
	for _, f := range m.Faces {
		if len(f) >= 3 {
			n += len(f) - 2
		}
	}
	return n
}

// Write emits binary STL. The facet normal is the face normal of the whole
// polygon, or zero for degenerate faces.
func Write(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	var header [headerSize]byte
	copy(header[:], "mesh-explode "+m.Name)
	bw.Write(header[:])

	if err := binary.Write(bw, binary.LittleEndian, uint32(TriangleCount(m))); err != nil {
		return err
	}

	var rec [50]byte
	for fi, f := range m.Faces {
		if len(f) < 3 {
			continue
		}
		n, _ := m.Normal(fi)
		for k := 1; k+1 < len(f); k++ {
			putVec(rec[0:], n)
			putVec(rec[12:], m.Verts[f[0]])
			putVec(rec[24:], m.Verts[f[k]])
			putVec(rec[36:], m.Verts[f[k+1]])
			// rec[48:50] attribute byte count stays zero
			if _, err := bw.Write(rec[:]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Save writes binary STL to path.
func Save(path string, m *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stlfile: create %s: %w", path, err)
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return fmt.Errorf("stlfile: write %s: %w", path, err)
	}
	return f.Close()
}

func putVec(b []byte, v mathutil.Vec3) {
	for k := 0; k < 3; k++ {
		binary.LittleEndian.PutUint32(b[k*4:], math.Float32bits(float32(v[k])))
	}
}
