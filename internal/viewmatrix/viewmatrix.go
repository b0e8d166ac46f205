// Package viewmatrix positions the preview camera and projects mesh vertices
// to screen space.
package viewmatrix

import (
	"math"

	"mesh-explode/internal/mathutil"
)

// Default camera angles in degrees.
const (
	DefaultYaw   = 30.0
	DefaultPitch = -20.0
)

// Camera is an orthographic orbit camera looking at the mesh center.
type Camera struct {
	Yaw   float64 `json:"yaw" toml:"yaw" yaml:"yaw"`       // degrees around the scene up axis
	Pitch float64 `json:"pitch" toml:"pitch" yaml:"pitch"` // degrees, negative looks down on the mesh
}

// DefaultCamera returns the three-quarter view used when nothing is configured.
func DefaultCamera() Camera {
	return Camera{Yaw: DefaultYaw, Pitch: DefaultPitch}
}

// Matrix returns Rx(pitch) @ Ry(yaw) @ YUp.
func (c Camera) Matrix() mathutil.Mat3 {
	return mathutil.Mat3Mul(
		mathutil.Mat3Mul(mathutil.RotX(mathutil.Deg2Rad(c.Pitch)), mathutil.RotY(mathutil.Deg2Rad(c.Yaw))),
		mathutil.YUp)
}

// Fit computes the view-space center of the vertices and the scale that maps
// their larger screen extent to renderSize-2*margin pixels.
func Fit(verts []mathutil.Vec3, R mathutil.Mat3, renderSize, margin int) (center mathutil.Vec3, scale float64) {
	if len(verts) == 0 {
		return mathutil.Vec3{}, 1
	}
	lo := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range verts {
		t := R.MulVec3(v)
		lo = lo.Min(t)
		hi = hi.Max(t)
	}
	center = lo.Add(hi).Scale(0.5)

	span := math.Max(hi[0]-lo[0], hi[1]-lo[1])
	if span < 0.001 {
		span = 0.001
	}
	return center, float64(renderSize-2*margin) / span
}

// ProjectVertices transforms 3D vertices to 2D screen coordinates.
// Returns px, py, pz slices (screen X, screen Y, depth; larger is nearer).
func ProjectVertices(verts []mathutil.Vec3, R mathutil.Mat3, center mathutil.Vec3, scale float64, renderSize int) ([]float64, []float64, []float64) {
	n := len(verts)
	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)

	half := float64(renderSize) / 2
	for i, v := range verts {
		t := R.MulVec3(v)
		px[i] = (t[0]-center[0])*scale + half
		py[i] = -(t[1]-center[1])*scale + half
		pz[i] = t[2]
	}
	return px, py, pz
}
