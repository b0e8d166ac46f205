package explode

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"mesh-explode/internal/mesh"
)

// minChunk is the smallest number of faces handed to one goroutine.
const minChunk = 256

// ExplodeParallel is Explode with faces split into contiguous chunks that
// are processed concurrently. Chunks never share vertices because the mesh
// is detached, so no locking is needed and the result equals Explode's.
//
// workers <= 0 means runtime.NumCPU(). ctx is checked once, before any
// vertex moves: a cancelled context returns ctx.Err() with the mesh
// untouched, and once displacement has started every face is processed.
func ExplodeParallel(ctx context.Context, m *mesh.Mesh, factor float64, workers int) error {
	if err := CheckFactor(factor); err != nil {
		return err
	}
	if err := checkDetached(m); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if factor == 0 || len(m.Faces) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	n := len(m.Faces)
	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		lo, hi := start, min(start+chunk, n)
		g.Go(func() error {
			for fi := lo; fi < hi; fi++ {
				displaceFace(m, fi, factor)
			}
			return nil
		})
	}
	return g.Wait()
}
