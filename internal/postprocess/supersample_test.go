package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solid(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsample(t *testing.T) {
	src := solid(64, color.NRGBA{200, 100, 50, 255})
	dst := Downsample(src, 16)
	assert.Equal(t, image.Rect(0, 0, 16, 16), dst.Bounds())

	c := dst.NRGBAAt(8, 8)
	assert.InDelta(t, 200, int(c.R), 1)
	assert.InDelta(t, 100, int(c.G), 1)
	assert.InDelta(t, 50, int(c.B), 1)
	assert.Equal(t, uint8(255), c.A)

	assert.Same(t, src, Downsample(src, 64))
}

func TestDownsampleNoDarkHalo(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 16; x++ {
			src.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	dst := Downsample(src, 8)
	for x := 0; x < 8; x++ {
		c := dst.NRGBAAt(x, 4)
		if c.A > 16 {
			assert.GreaterOrEqual(t, c.R, uint8(250), "x=%d", x)
		}
	}
}

func TestFlatten(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})

	out := Flatten(src, color.NRGBA{0, 0, 255, 0})
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, out.NRGBAAt(1, 0))
}
