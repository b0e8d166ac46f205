package xform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mesh-explode/internal/mathutil"
)

func assertVec(t *testing.T, want, got mathutil.Vec3) {
	t.Helper()
	for k := 0; k < 3; k++ {
		assert.InDelta(t, want[k], got[k], 1e-9)
	}
}

func TestIdentity(t *testing.T) {
	assert.True(t, Identity().Matrix().IsIdentity())
}

func TestMatrix(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
		in   mathutil.Vec3
		want mathutil.Vec3
	}{
		{"translate", Transform{Location: mathutil.Vec3{1, 2, 3}, Scale: mathutil.Vec3{1, 1, 1}},
			mathutil.Vec3{1, 1, 1}, mathutil.Vec3{2, 3, 4}},
		{"scale", Transform{Scale: mathutil.Vec3{2, 3, 4}},
			mathutil.Vec3{1, 1, 1}, mathutil.Vec3{2, 3, 4}},
		{"rotate z", Transform{Rotation: mathutil.Vec3{0, 0, 90}, Scale: mathutil.Vec3{1, 1, 1}},
			mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 1, 0}},
		// scale first, then rotate, then translate
		{"trs", Transform{Location: mathutil.Vec3{10, 0, 0}, Rotation: mathutil.Vec3{0, 0, 90}, Scale: mathutil.Vec3{2, 2, 2}},
			mathutil.Vec3{1, 0, 0}, mathutil.Vec3{10, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, tt.tr.Matrix().MulPoint(tt.in))
		})
	}
}

func TestMatrixMatchesEulerXYZ(t *testing.T) {
	tr := Transform{Rotation: mathutil.Vec3{25, -60, 135}, Scale: mathutil.Vec3{1, 1, 1}}
	want := mathutil.EulerXYZ(25, -60, 135)
	got := tr.Matrix().Linear()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}
}
