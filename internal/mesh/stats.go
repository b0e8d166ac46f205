package mesh

import "mesh-explode/internal/mathutil"

// Stats summarizes a mesh for inspection output.
type Stats struct {
	Faces      int
	Verts      int
	Corners    int
	Triangles  int
	Quads      int
	NGons      int
	Degenerate int
	Detached   bool
	Min, Max   mathutil.Vec3
}

// ComputeStats gathers Stats. The mesh must be valid (see Validate).
func (m *Mesh) ComputeStats() Stats {
	s := Stats{
		Faces:    len(m.Faces),
		Verts:    len(m.Verts),
		Corners:  m.CornerCount(),
		Detached: m.IsDetached(),
	}
	s.Min, s.Max = m.Bounds()
	for i, f := range m.Faces {
		switch {
		case len(f) == 3:
			s.Triangles++
		case len(f) == 4:
			s.Quads++
		case len(f) > 4:
			s.NGons++
		}
		if _, ok := m.Normal(i); !ok {
			s.Degenerate++
		}
	}
	return s
}
