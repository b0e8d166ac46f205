package explode

import (
	"errors"
	"fmt"
	"math"

	"mesh-explode/internal/mathutil"
	"mesh-explode/internal/mesh"
)

// Factor limits and default mirror the range offered to users.
const (
	DefaultFactor = 0.5
	MinFactor     = -2.0
	MaxFactor     = 2.0
)

// ErrInvalidFactor is returned for a NaN or infinite factor.
var ErrInvalidFactor = errors.New("explode: factor must be a finite number")

// CheckFactor reports whether f can be used as an explosion factor. Any
// finite value is accepted; MinFactor and MaxFactor only bound user input.
func CheckFactor(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w (got %v)", ErrInvalidFactor, f)
	}
	return nil
}

// Explode translates every face of a detached mesh by factor times its unit
// normal, in place. Faces with no defined normal are left where they are.
// The mesh must satisfy the detached invariant, otherwise ErrNotDetached is
// returned and nothing is modified. A NaN or infinite factor is rejected
// with ErrInvalidFactor, also before any vertex moves.
func Explode(m *mesh.Mesh, factor float64) error {
	if err := CheckFactor(factor); err != nil {
		return err
	}
	if err := checkDetached(m); err != nil {
		return err
	}
	if factor == 0 {
		return nil
	}
	for fi := range m.Faces {
		displaceFace(m, fi, factor)
	}
	return nil
}

// ExplodeOrder is Explode with faces visited in the given order. order must
// be a permutation of the face indices.
func ExplodeOrder(m *mesh.Mesh, factor float64, order []int) error {
	if err := CheckFactor(factor); err != nil {
		return err
	}
	if err := checkDetached(m); err != nil {
		return err
	}
	if err := checkPermutation(order, len(m.Faces)); err != nil {
		return err
	}
	for _, fi := range order {
		displaceFace(m, fi, factor)
	}
	return nil
}

// Run detaches src with the world transform and explodes the result.
func Run(src *mesh.Mesh, world mathutil.Mat4, factor float64) (*mesh.Mesh, error) {
	out, err := Detach(src, world)
	if err != nil {
		return nil, err
	}
	if err := Explode(out, factor); err != nil {
		return nil, err
	}
	return out, nil
}

// displaceFace moves the vertices of face fi. It returns false for a
// degenerate face.
func displaceFace(m *mesh.Mesh, fi int, factor float64) bool {
	n, ok := m.Normal(fi)
	if !ok {
		return false
	}
	d := n.Scale(factor)
	for _, vi := range m.Faces[fi] {
		m.Verts[vi] = m.Verts[vi].Add(d)
	}
	return true
}

func checkDetached(m *mesh.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if !m.IsDetached() {
		return mesh.ErrNotDetached
	}
	return nil
}

func checkPermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("explode: order has %d entries, mesh has %d faces", len(order), n)
	}
	seen := make([]bool, n)
	for _, fi := range order {
		if fi < 0 || fi >= n || seen[fi] {
			return fmt.Errorf("explode: order is not a permutation (face %d)", fi)
		}
		seen[fi] = true
	}
	return nil
}
