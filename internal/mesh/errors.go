package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTopology is matched by every structural error: out-of-range
	// indices and empty faces.
	ErrInvalidTopology = errors.New("invalid topology")

	// ErrEmptyFace marks a face with no vertices.
	ErrEmptyFace = errors.New("empty face")

	// ErrNotDetached is returned when an operation requires every vertex to
	// belong to a single face.
	ErrNotDetached = errors.New("mesh is not detached")
)

// TopologyError describes the first structural defect found in a mesh.
type TopologyError struct {
	Face     int
	Corner   int // -1 for face-level defects
	Index    int
	NumVerts int
	Err      error // ErrEmptyFace, or nil for an out-of-range index
}

func (e *TopologyError) Error() string {
	if errors.Is(e.Err, ErrEmptyFace) {
		return fmt.Sprintf("%v: face %d has no vertices", ErrInvalidTopology, e.Face)
	}
	return fmt.Sprintf("%v: face %d corner %d references vertex %d (mesh has %d)",
		ErrInvalidTopology, e.Face, e.Corner, e.Index, e.NumVerts)
}

func (e *TopologyError) Is(target error) bool {
	return target == ErrInvalidTopology
}

func (e *TopologyError) Unwrap() error {
	return e.Err
}
