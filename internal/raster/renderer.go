// Package raster is a small flat-shaded software rasterizer used to preview
// meshes.
package raster

import (
	"image"

	"mesh-explode/internal/mesh"
	"mesh-explode/internal/viewmatrix"
)

// RenderMesh renders the mesh from cam into a square NRGBA image of
// size*supersample pixels. Polygons are fan-triangulated; degenerate faces
// are skipped.
func RenderMesh(m *mesh.Mesh, cam viewmatrix.Camera, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample
	if len(m.Faces) == 0 || len(m.Verts) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	}

	R := cam.Matrix()
	margin := 16 * supersample
	center, scale := viewmatrix.Fit(m.Verts, R, renderSize, margin)
	px, py, pz := viewmatrix.ProjectVertices(m.Verts, R, center, scale, renderSize)

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	for fi, f := range m.Faces {
		n, ok := m.Normal(fi)
		if !ok {
			continue
		}
		r, g, b := lc.ShadeColor(lc.ComputeShade(R.MulVec3(n)))
		for k := 1; k+1 < len(f); k++ {
			RasterizeTriangle(fb, px, py, pz, [3]int{f[0], f[k], f[k+1]}, r, g, b)
		}
	}

	return fb.Image()
}
