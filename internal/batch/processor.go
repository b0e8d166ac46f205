package batch

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"mesh-explode/internal/explode"
	"mesh-explode/internal/mathutil"
	"mesh-explode/internal/mesh"
	"mesh-explode/internal/objfile"
	"mesh-explode/internal/postprocess"
	"mesh-explode/internal/raster"
	"mesh-explode/internal/stlfile"
	"mesh-explode/internal/viewmatrix"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir     string
	World         mathutil.Mat4
	Factor        float64
	Format        string // "obj" or "stl"
	Preview       bool
	PreviewFormat string
	RenderSize    int
	Supersample   int
	Camera        viewmatrix.Camera
	Background    *color.NRGBA // nil keeps the preview transparent
	Workers       int

	// Progress receives periodic status lines; nil disables reporting.
	Progress func(done, total int, rate float64)
}

// Result holds the outcome of processing one input file.
type Result struct {
	Name       string `json:"name"`
	Input      string `json:"input"`
	Output     string `json:"output,omitempty"`
	Preview    string `json:"preview,omitempty"`
	Faces      int    `json:"faces"`
	Verts      int    `json:"verts"`
	Degenerate int    `json:"degenerate"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// Discover returns the .obj files directly inside dir, sorted by name.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".obj") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Run processes all inputs using a worker pool. Results are in input order.
// Inputs not yet started when ctx is cancelled fail with ctx.Err().
func Run(ctx context.Context, cfg Config, inputs []string) []Result {
	total := len(inputs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	// A single large mesh gets the workers for its faces instead.
	faceWorkers := 1
	if total == 1 {
		faceWorkers = workers
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						cfg.Progress(int(p), total, float64(p)/time.Since(start).Seconds())
					}
				}
			}
		}()
	}

	// Worker pool
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = failed(inputs[idx], err)
				} else {
					results[idx] = processFile(ctx, cfg, inputs[idx], faceWorkers)
				}
				processed.Add(1)
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

func processFile(ctx context.Context, cfg Config, input string, faceWorkers int) Result {
	src, err := objfile.Load(input)
	if err != nil {
		return failed(input, err)
	}

	out, err := explode.Detach(src, cfg.World)
	if err != nil {
		return failed(input, fmt.Errorf("detach: %w", err))
	}
	if faceWorkers > 1 {
		err = explode.ExplodeParallel(ctx, out, cfg.Factor, faceWorkers)
	} else {
		err = explode.Explode(out, cfg.Factor)
	}
	if err != nil {
		return failed(input, fmt.Errorf("explode: %w", err))
	}

	res := Result{
		Name:       src.Name,
		Input:      input,
		Faces:      len(out.Faces),
		Verts:      len(out.Verts),
		Degenerate: out.ComputeStats().Degenerate,
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return withError(res, err)
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	res.Output = filepath.Join(cfg.OutputDir, base+"."+cfg.Format)
	switch cfg.Format {
	case "stl":
		err = stlfile.Save(res.Output, out)
	default:
		err = objfile.Save(res.Output, out)
	}
	if err != nil {
		return withError(res, err)
	}

	if cfg.Preview {
		res.Preview = filepath.Join(cfg.OutputDir, base+"."+cfg.PreviewFormat)
		if err := savePreview(res.Preview, out, cfg); err != nil {
			return withError(res, err)
		}
	}

	res.Success = true
	return res
}

func savePreview(path string, m *mesh.Mesh, cfg Config) error {
	img := raster.RenderMesh(m, cfg.Camera, cfg.RenderSize, cfg.Supersample)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}
	if cfg.Background != nil {
		img = postprocess.Flatten(img, *cfg.Background)
	}
	return previewEncoder(path, img)
}

func failed(input string, err error) Result {
	return Result{
		Name:  strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)),
		Input: input,
		Error: err.Error(),
	}
}

func withError(r Result, err error) Result {
	r.Success = false
	r.Error = err.Error()
	return r
}
