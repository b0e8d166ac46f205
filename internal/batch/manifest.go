package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mesh-explode/internal/imageio"
)

// previewEncoder is swapped in tests.
var previewEncoder = imageio.Save

// Manifest is the JSON summary written next to the outputs.
type Manifest struct {
	Factor  float64  `json:"factor"`
	Format  string   `json:"format"`
	Results []Result `json:"results"`
}

// WriteManifest writes manifest.json to path, creating its directory.
func WriteManifest(path string, cfg Config, results []Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("batch: create %s: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(Manifest{
		Factor:  cfg.Factor,
		Format:  cfg.Format,
		Results: results,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}

// Summarize counts successful and failed results.
func Summarize(results []Result) (success, failed int) {
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
		}
	}
	return success, failed
}
