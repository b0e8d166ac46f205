// Package imageio writes preview images, picking the encoder from the file
// extension.
package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Formats lists the supported preview extensions without the dot.
var Formats = []string{"webp", "tga", "png"}

// Supported reports whether format (with or without a leading dot) can be encoded.
func Supported(format string) bool {
	format = strings.TrimPrefix(strings.ToLower(format), ".")
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "webp":
		return nativewebp.Encode(w, img, nil)
	case "tga":
		return tga.Encode(w, img)
	case "png":
		return png.Encode(w, img)
	default:
		return fmt.Errorf("imageio: unsupported format %q", format)
	}
}

// Save creates parent directories and writes img to path.
func Save(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, img, filepath.Ext(path)); err != nil {
		f.Close()
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	return f.Close()
}
