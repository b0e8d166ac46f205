package mesh

import "mesh-explode/internal/mathutil"

// DegenerateTolerance is the smallest accepted ratio between twice the face
// area and the sum of squared edge lengths. Faces below it, such as
// collinear corners that picked up rounding noise in a world transform,
// have no normal.
const DegenerateTolerance = 1e-9

// FaceNormal computes the unit normal of a polygon with Newell's method,
// which tolerates non-planar and concave faces. Positions are taken
// relative to the first corner so the result does not depend on how far the
// face is from the origin. ok is false for faces with fewer than three
// corners or a (near) zero area relative to their size; the returned normal
// is then the zero vector, never NaN.
func FaceNormal(verts []mathutil.Vec3, face Face) (n mathutil.Vec3, ok bool) {
	if len(face) < 3 {
		return mathutil.Vec3{}, false
	}
	origin := verts[face[0]]
	var edges float64
	for i, vi := range face {
		cur := verts[vi].Sub(origin)
		next := verts[face[(i+1)%len(face)]].Sub(origin)
		n[0] += (cur[1] - next[1]) * (cur[2] + next[2])
		n[1] += (cur[2] - next[2]) * (cur[0] + next[0])
		n[2] += (cur[0] - next[0]) * (cur[1] + next[1])
		e := next.Sub(cur)
		edges += e.Dot(e)
	}
	if !n.IsFinite() {
		return mathutil.Vec3{}, false
	}
	l := n.Len()
	if l == 0 || l < DegenerateTolerance*edges {
		return mathutil.Vec3{}, false
	}
	return n.Scale(1 / l), true
}

// Normal returns the unit normal of face i. See FaceNormal.
func (m *Mesh) Normal(i int) (mathutil.Vec3, bool) {
	return FaceNormal(m.Verts, m.Faces[i])
}
