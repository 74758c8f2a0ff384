// Package batch runs one scene transformation over a directory of
// snapshot files with a worker pool.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"mixamo-rig-tools/internal/scene"
)

// Op transforms one loaded scene in place and returns a short summary
// line for the manifest.
type Op func(s *scene.Scene) (string, error)

// Config holds the shared resources for a batch run.
type Config struct {
	OutputDir string
	Workers   int
	Process   Op
}

// Result holds the outcome of processing one snapshot.
type Result struct {
	File    string `json:"file"`
	Summary string `json:"summary,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ListScenes returns every .json snapshot in dir, sorted by name.
func ListScenes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: read dir %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Run processes all snapshot files using a worker pool.
func Run(cfg Config, files []string) []Result {
	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
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
					elapsed := time.Since(start).Seconds()
					log.Info("processing", "done", p, "total", total,
						"rate", fmt.Sprintf("%.1f/sec", float64(p)/elapsed))
				}
			}
		}
	}()

	// Worker pool
	fileChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				results[idx] = processFile(cfg, files[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	return results
}

func processFile(cfg Config, path string) Result {
	name := filepath.Base(path)

	s, err := scene.Load(path)
	if err != nil {
		return Result{File: name, Error: err.Error()}
	}

	summary, err := cfg.Process(s)
	if err != nil {
		return Result{File: name, Error: err.Error()}
	}

	outPath := path
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return Result{File: name, Error: err.Error()}
		}
		outPath = filepath.Join(cfg.OutputDir, name)
	}
	if err := scene.Save(s, outPath); err != nil {
		return Result{File: name, Error: err.Error()}
	}

	return Result{File: name, Summary: summary, Success: true}
}
