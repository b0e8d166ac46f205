package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"mesh-explode/internal/explode"
	"mesh-explode/internal/imageio"
	"mesh-explode/internal/mathutil"
	"mesh-explode/internal/viewmatrix"
	"mesh-explode/internal/xform"
)

// Output mesh formats.
const (
	FormatOBJ = "obj"
	FormatSTL = "stl"
)

// Config holds all configurable paths, the explosion parameters and
// preview settings.
type Config struct {
	// Paths
	InputDir  string `json:"input_dir" toml:"input_dir" yaml:"input_dir"`
	OutputDir string `json:"output_dir" toml:"output_dir" yaml:"output_dir"`

	// Explosion. Factor is a pointer so an explicit 0 survives Resolve.
	Factor *float64        `json:"factor" toml:"factor" yaml:"factor"`
	Object xform.Transform `json:"object" toml:"object" yaml:"object"`
	Format string          `json:"format" toml:"format" yaml:"format"`

	// Preview settings
	Preview       bool               `json:"preview" toml:"preview" yaml:"preview"`
	PreviewFormat string             `json:"preview_format" toml:"preview_format" yaml:"preview_format"`
	RenderSize    int                `json:"render_size" toml:"render_size" yaml:"render_size"`
	Supersample   int                `json:"supersample" toml:"supersample" yaml:"supersample"`
	Camera        *viewmatrix.Camera `json:"camera" toml:"camera" yaml:"camera"`
	// Background is an optional "#rrggbb" colour the preview is flattened
	// onto. Empty keeps the transparent background.
	Background string `json:"background" toml:"background" yaml:"background"`

	Workers int `json:"workers" toml:"workers" yaml:"workers"`
}

// Load reads a config file. The decoder is chosen by extension: .json,
// .toml, .yaml or .yml. Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config: %s: unknown extension %q", path, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when set.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Factor != nil {
		f := *flags.Factor
		c.Factor = &f
	}
	if flags.Location != nil {
		c.Object.Location = *flags.Location
	}
	if flags.Rotation != nil {
		c.Object.Rotation = *flags.Rotation
	}
	if flags.Scale != nil {
		c.Object.Scale = *flags.Scale
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Preview {
		c.Preview = true
	}
	if flags.PreviewFormat != "" {
		c.PreviewFormat = flags.PreviewFormat
	}
	if flags.RenderSize > 0 {
		c.RenderSize = flags.RenderSize
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		if c.InputDir != "" {
			c.OutputDir = filepath.Join(c.InputDir, "exploded")
		} else {
			c.OutputDir = "."
		}
	}

	// Defaults
	if c.Factor == nil {
		f := explode.DefaultFactor
		c.Factor = &f
	}
	if c.Object.Scale == (mathutil.Vec3{}) {
		c.Object.Scale = mathutil.Vec3{1, 1, 1}
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = FormatOBJ
	}
	c.PreviewFormat = strings.ToLower(c.PreviewFormat)
	if c.PreviewFormat == "" {
		c.PreviewFormat = "webp"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Camera == nil {
		cam := viewmatrix.DefaultCamera()
		c.Camera = &cam
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks a resolved config.
func (c *Config) Validate() error {
	if c.Factor == nil {
		return fmt.Errorf("config: factor not resolved")
	}
	if err := explode.CheckFactor(*c.Factor); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if f := *c.Factor; f < explode.MinFactor || f > explode.MaxFactor {
		return fmt.Errorf("config: factor %g outside [%g, %g]", f, explode.MinFactor, explode.MaxFactor)
	}
	if c.Format != FormatOBJ && c.Format != FormatSTL {
		return fmt.Errorf("config: unknown output format %q (want obj or stl)", c.Format)
	}
	if !imageio.Supported(c.PreviewFormat) {
		return fmt.Errorf("config: unknown preview format %q (want one of %s)",
			c.PreviewFormat, strings.Join(imageio.Formats, ", "))
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	return nil
}

// ParseColor parses an "#rrggbb" or "rrggbb" hex colour into an opaque
// NRGBA. An empty string yields nil.
func ParseColor(s string) (*color.NRGBA, error) {
	if s == "" {
		return nil, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return nil, fmt.Errorf("config: background %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("config: background %q: %w", s, err)
	}
	return &color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Flags holds CLI flag values that override config file settings.
// Nil pointers and zero values mean "not given".
type Flags struct {
	InputDir      string
	OutputDir     string
	Factor        *float64
	Location      *mathutil.Vec3
	Rotation      *mathutil.Vec3
	Scale         *mathutil.Vec3
	Format        string
	Preview       bool
	PreviewFormat string
	RenderSize    int
	Background    string
	Workers       int
}
