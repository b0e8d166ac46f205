package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"mesh-explode/internal/batch"
	"mesh-explode/internal/config"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .toml, .yaml)")
	input := flag.String("in", "", "Single OBJ file to explode")
	inputDir := flag.String("dir", "", "Directory of OBJ files to explode")
	outputDir := flag.String("out", "", "Output directory (default: <dir>/exploded or .)")
	format := flag.String("format", "", "Output mesh format: obj or stl (default: obj)")
	preview := flag.Bool("preview", false, "Render a preview image of each result")
	previewFormat := flag.String("preview-format", "", "Preview format: webp, tga or png (default: webp)")
	size := flag.Int("size", 0, "Preview size in pixels (default: 256)")
	background := flag.String("bg", "", "Preview background colour #rrggbb (default: transparent)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	var factor floatFlag
	var loc, rot, scale vecFlag
	flag.Var(&factor, "factor", "Explosion factor in [-2, 2] (default: 0.5)")
	flag.Var(&loc, "loc", "Object location x,y,z")
	flag.Var(&rot, "rot", "Object rotation x,y,z in degrees (XYZ Euler)")
	flag.Var(&scale, "scale", "Object scale x,y,z")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InputDir:      *inputDir,
		OutputDir:     *outputDir,
		Factor:        factor.ptr(),
		Location:      loc.ptr(),
		Rotation:      rot.ptr(),
		Scale:         scale.ptr(),
		Format:        *format,
		Preview:       *preview,
		PreviewFormat: *previewFormat,
		RenderSize:    *size,
		Background:    *background,
		Workers:       *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	bg, _ := config.ParseColor(cfg.Background)

	// Collect inputs
	var inputs []string
	switch {
	case *input != "":
		inputs = []string{*input}
	case cfg.InputDir != "":
		var err error
		inputs, err = batch.Discover(cfg.InputDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: no input. Use -in file.obj or -dir inputs/.")
		os.Exit(1)
	}

	if len(inputs) == 0 {
		fmt.Println("No meshes to explode.")
		os.Exit(0)
	}

	fmt.Printf("Mesh explode (factor %g, format %s)\n", *cfg.Factor, cfg.Format)
	fmt.Printf("Meshes: %d, Workers: %d\n", len(inputs), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir:     cfg.OutputDir,
		World:         cfg.Object.Matrix(),
		Factor:        *cfg.Factor,
		Format:        cfg.Format,
		Preview:       cfg.Preview,
		PreviewFormat: cfg.PreviewFormat,
		RenderSize:    cfg.RenderSize,
		Supersample:   cfg.Supersample,
		Camera:        *cfg.Camera,
		Background:    bg,
		Workers:       cfg.Workers,
		Progress: func(done, total int, rate float64) {
			fmt.Printf("  [%d/%d] %.1f meshes/sec\n", done, total, rate)
		},
	}

	results := batch.Run(ctx, batchCfg, inputs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := batch.Summarize(results)
	fmt.Printf("Exploded: %d/%d\n", success, len(inputs))

	if failed > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		shown := 0
		for _, r := range results {
			if r.Success {
				continue
			}
			if shown == 20 {
				fmt.Printf("  ... and %d more\n", failed-shown)
				break
			}
			fmt.Printf("  %s: %s\n", r.Name, r.Error)
			shown++
		}
	}

	// Write manifest for batch runs
	if len(inputs) > 1 {
		manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
		if err := batch.WriteManifest(manifestPath, batchCfg, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
