package batch

import (
	"context"
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-explode/internal/mathutil"
	"mesh-explode/internal/objfile"
	"mesh-explode/internal/viewmatrix"
)

const tetraOBJ = `o Tetra
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
f 1 3 2
f 1 2 4
f 1 4 3
f 2 3 4
`

const brokenOBJ = `v 0 0 0
v 1 0 0
f 1 2 3
`

func setup(t *testing.T) (inDir, outDir string) {
	t.Helper()
	inDir = t.TempDir()
	outDir = filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "b_tetra.obj"), []byte(tetraOBJ), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "a_broken.OBJ"), []byte(brokenOBJ), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(inDir, "sub.obj"), 0755))
	return inDir, outDir
}

func testConfig(outDir string) Config {
	return Config{
		OutputDir:     outDir,
		World:         mathutil.Mat4Identity(),
		Factor:        0.5,
		Format:        "obj",
		PreviewFormat: "png",
		RenderSize:    32,
		Supersample:   2,
		Camera:        viewmatrix.DefaultCamera(),
		Workers:       2,
	}
}

func TestDiscover(t *testing.T) {
	inDir, _ := setup(t)
	paths, err := Discover(inDir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(inDir, "a_broken.OBJ"),
		filepath.Join(inDir, "b_tetra.obj"),
	}, paths)

	_, err = Discover(filepath.Join(inDir, "missing"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	inDir, outDir := setup(t)
	inputs, err := Discover(inDir)
	require.NoError(t, err)

	results := Run(context.Background(), testConfig(outDir), inputs)
	require.Len(t, results, 2)

	broken, tetra := results[0], results[1]
	assert.False(t, broken.Success)
	assert.Contains(t, broken.Error, "invalid topology")
	assert.Equal(t, "a_broken", broken.Name)

	require.True(t, tetra.Success, tetra.Error)
	assert.Equal(t, "Tetra", tetra.Name)
	assert.Equal(t, 4, tetra.Faces)
	assert.Equal(t, 12, tetra.Verts)
	assert.Equal(t, 0, tetra.Degenerate)
	assert.Equal(t, filepath.Join(outDir, "b_tetra.obj"), tetra.Output)
	assert.Empty(t, tetra.Preview)

	m, err := objfile.Load(tetra.Output)
	require.NoError(t, err)
	assert.True(t, m.IsDetached())
	assert.Equal(t, "Tetra_detached", m.Name)

	success, failed := Summarize(results)
	assert.Equal(t, 1, success)
	assert.Equal(t, 1, failed)
}

func TestRunSingleInputSTLWithPreview(t *testing.T) {
	inDir, outDir := setup(t)

	var mu sync.Mutex
	var previews []string
	orig := previewEncoder
	previewEncoder = func(path string, img image.Image) error {
		mu.Lock()
		defer mu.Unlock()
		previews = append(previews, path)
		assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
		return nil
	}
	defer func() { previewEncoder = orig }()

	cfg := testConfig(outDir)
	cfg.Format = "stl"
	cfg.Preview = true
	cfg.Workers = 4

	results := Run(context.Background(), cfg, []string{filepath.Join(inDir, "b_tetra.obj")})
	require.Len(t, results, 1)
	require.True(t, results[0].Success, results[0].Error)

	assert.Equal(t, filepath.Join(outDir, "b_tetra.stl"), results[0].Output)
	assert.Equal(t, []string{filepath.Join(outDir, "b_tetra.png")}, previews)

	info, err := os.Stat(results[0].Output)
	require.NoError(t, err)
	assert.Equal(t, int64(80+4+4*50), info.Size())
}

func TestRunPreviewBackground(t *testing.T) {
	inDir, outDir := setup(t)
	input := []string{filepath.Join(inDir, "b_tetra.obj")}

	var corner color.NRGBA
	orig := previewEncoder
	previewEncoder = func(path string, img image.Image) error {
		corner = color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
		return nil
	}
	defer func() { previewEncoder = orig }()

	cfg := testConfig(outDir)
	cfg.Preview = true

	results := Run(context.Background(), cfg, input)
	require.True(t, results[0].Success, results[0].Error)
	assert.Equal(t, uint8(0), corner.A)

	bg := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	cfg.Background = &bg
	results = Run(context.Background(), cfg, input)
	require.True(t, results[0].Success, results[0].Error)
	assert.Equal(t, bg, corner)
}

func TestRunCancelled(t *testing.T) {
	inDir, outDir := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, testConfig(outDir), []string{filepath.Join(inDir, "b_tetra.obj")})
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Equal(t, context.Canceled.Error(), results[0].Error)
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	results := []Result{
		{Name: "a", Input: "a.obj", Output: "out/a.obj", Faces: 2, Verts: 6, Success: true},
		{Name: "b", Input: "b.obj", Error: "boom"},
	}
	require.NoError(t, WriteManifest(path, testConfig("out"), results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Manifest
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 0.5, got.Factor)
	assert.Equal(t, "obj", got.Format)
	assert.Equal(t, results, got.Results)
}

func TestWriteManifestCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "manifest.json")
	require.NoError(t, WriteManifest(path, testConfig("out"), nil))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteManifestReportsDirError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := WriteManifest(filepath.Join(blocker, "manifest.json"), testConfig("out"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch: create")
}
