// Package xform builds object-to-world matrices from location, Euler
// rotation and scale, the way a scene object stores its transform.
package xform

import (
	"github.com/go-gl/mathgl/mgl64"

	"mesh-explode/internal/mathutil"
)

// Transform is an object transform. Rotation is Euler XYZ in degrees:
// X is applied first, then Y, then Z.
type Transform struct {
	Location mathutil.Vec3 `json:"location" toml:"location" yaml:"location"`
	Rotation mathutil.Vec3 `json:"rotation" toml:"rotation" yaml:"rotation"`
	Scale    mathutil.Vec3 `json:"scale" toml:"scale" yaml:"scale"`
}

// Identity returns the transform that leaves points unchanged.
func Identity() Transform {
	return Transform{Scale: mathutil.Vec3{1, 1, 1}}
}

// Matrix composes T @ Rz @ Ry @ Rx @ S.
func (t Transform) Matrix() mathutil.Mat4 {
	m := mgl64.Translate3D(t.Location[0], t.Location[1], t.Location[2]).
		Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(t.Rotation[2]))).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(t.Rotation[1]))).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(t.Rotation[0]))).
		Mul4(mgl64.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
	return mathutil.FromColumnMajor([16]float64(m))
}
