// Package objfile reads and writes the polygon subset of Wavefront OBJ.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mesh-explode/internal/mathutil"
	"mesh-explode/internal/mesh"
)

// Load reads an OBJ file. The mesh name defaults to the file's base name.
func Load(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objfile: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("objfile: %s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// Read parses "v", "f" and "o" records; all other records are ignored.
// Face corners may use the v, v/vt, v//vn or v/vt/vn forms and negative
// (relative) indices. Indices are not range-checked here: a face pointing
// past the vertex list is reported by mesh.Validate.
func Read(r io.Reader) (*mesh.Mesh, error) {
	m := &mesh.Mesh{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			m.Verts = append(m.Verts, v)
		case "f":
			face, err := parseFace(fields[1:], len(m.Verts))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			m.Faces = append(m.Faces, face)
		case "o":
			if len(fields) > 1 && m.Name == "" {
				m.Name = strings.Join(fields[1:], " ")
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}
	return m, nil
}

func parseVertex(fields []string) (mathutil.Vec3, error) {
	var v mathutil.Vec3
	if len(fields) < 3 {
		return v, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	for k := 0; k < 3; k++ {
		c, err := strconv.ParseFloat(fields[k], 64)
		if err != nil {
			return v, fmt.Errorf("vertex coordinate %q: %w", fields[k], err)
		}
		v[k] = c
	}
	return v, nil
}

func parseFace(fields []string, numVerts int) (mesh.Face, error) {
	face := make(mesh.Face, 0, len(fields))
	for _, corner := range fields {
		ref := corner
		if i := strings.IndexByte(corner, '/'); i >= 0 {
			ref = corner[:i]
		}
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return nil, fmt.Errorf("face index %q: %w", corner, err)
		}
		switch {
		case idx > 0:
			face = append(face, idx-1)
		case idx < 0:
			face = append(face, numVerts+idx)
		default:
			return nil, fmt.Errorf("face index 0 is invalid, OBJ indices start at 1")
		}
	}
	return face, nil
}
