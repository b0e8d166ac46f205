// Package explode implements the two-stage face explosion: Detach rewrites an
// indexed mesh so every face owns private vertex copies in world space, and
// Explode pushes each face along its own normal.
package explode

import (
	"mesh-explode/internal/mathutil"
	"mesh-explode/internal/mesh"
)

// DetachedSuffix is appended to the source name of a detached mesh.
const DetachedSuffix = "_detached"

// Detach returns a new mesh in which every corner of every face becomes its
// own vertex, transformed by world. Face order and winding are preserved.
// The source mesh is never modified. A mesh with no faces yields an empty
// mesh.
func Detach(src *mesh.Mesh, world mathutil.Mat4) (*mesh.Mesh, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	out := &mesh.Mesh{
		Name:  src.Name + DetachedSuffix,
		Verts: make([]mathutil.Vec3, 0, src.CornerCount()),
		Faces: make([]mesh.Face, len(src.Faces)),
	}

	identity := world.IsIdentity()
	for fi, f := range src.Faces {
		face := make(mesh.Face, len(f))
		for ci, vi := range f {
			v := src.Verts[vi]
			if !identity {
				v = world.MulPoint(v)
			}
			face[ci] = len(out.Verts)
			out.Verts = append(out.Verts, v)
		}
		out.Faces[fi] = face
	}
	return out, nil
}
