// Package mesh holds the polygon mesh representation shared by the
// detach/explode pipeline, the file codecs and the preview renderer.
package mesh

import "mesh-explode/internal/mathutil"

// Face is an ordered list of indices into Mesh.Verts. The winding order
// defines the face normal.
type Face []int

// Mesh is an indexed polygon mesh. Faces may share vertices unless the mesh
// was produced by a detach step, in which case every index belongs to
// exactly one face.
type Mesh struct {
	Name  string
	Verts []mathutil.Vec3
	Faces []Face
}

// New returns an empty named mesh.
func New(name string) *Mesh {
	return &Mesh{Name: name}
}

// AddVert appends a vertex and returns its index.
func (m *Mesh) AddVert(v mathutil.Vec3) int {
	m.Verts = append(m.Verts, v)
	return len(m.Verts) - 1
}

// AddFace appends a face referencing existing vertex indices.
func (m *Mesh) AddFace(idx ...int) {
	f := make(Face, len(idx))
	copy(f, idx)
	m.Faces = append(m.Faces, f)
}

// CornerCount returns the sum of all face sizes. For a detached mesh this
// equals len(Verts).
func (m *Mesh) CornerCount() int {
	n := 0
	for _, f := range m.Faces {
		n += len(f)
	}
	return n
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Name:  m.Name,
		Verts: make([]mathutil.Vec3, len(m.Verts)),
		Faces: make([]Face, len(m.Faces)),
	}
	copy(c.Verts, m.Verts)
	for i, f := range m.Faces {
		c.Faces[i] = append(Face(nil), f...)
	}
	return c
}

// FaceVerts returns the positions of face i in winding order.
func (m *Mesh) FaceVerts(i int) []mathutil.Vec3 {
	f := m.Faces[i]
	out := make([]mathutil.Vec3, len(f))
	for k, vi := range f {
		out[k] = m.Verts[vi]
	}
	return out
}

// Bounds returns the axis-aligned bounding box of all vertices.
// Both corners are zero for a mesh without vertices.
func (m *Mesh) Bounds() (lo, hi mathutil.Vec3) {
	if len(m.Verts) == 0 {
		return
	}
	lo, hi = m.Verts[0], m.Verts[0]
	for _, v := range m.Verts[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return lo, hi
}
