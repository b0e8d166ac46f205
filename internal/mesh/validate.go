package mesh

// Validate checks that every face has at least one vertex and that every
// index is within [0, len(Verts)). The returned error is a *TopologyError
// matching ErrInvalidTopology.
func (m *Mesh) Validate() error {
	n := len(m.Verts)
	for fi, f := range m.Faces {
		if len(f) == 0 {
			return &TopologyError{Face: fi, Corner: -1, Index: -1, NumVerts: n, Err: ErrEmptyFace}
		}
		for ci, vi := range f {
			if vi < 0 || vi >= n {
				return &TopologyError{Face: fi, Corner: ci, Index: vi, NumVerts: n}
			}
		}
	}
	return nil
}

// IsDetached reports whether no vertex index is referenced more than once
// across all faces. Out-of-range indices make the mesh not detached.
func (m *Mesh) IsDetached() bool {
	seen := make([]bool, len(m.Verts))
	for _, f := range m.Faces {
		for _, vi := range f {
			if vi < 0 || vi >= len(seen) || seen[vi] {
				return false
			}
			seen[vi] = true
		}
	}
	return true
}
