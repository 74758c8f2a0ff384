package batch

import (
	"encoding/json"
	"os"
)

// WriteManifest writes the per-file results as a JSON summary next to
// the processed snapshots.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
