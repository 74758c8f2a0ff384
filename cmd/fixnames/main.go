package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"mixamo-rig-tools/internal/batch"
	"mixamo-rig-tools/internal/config"
	"mixamo-rig-tools/internal/rename"
	"mixamo-rig-tools/internal/scene"
)

// Cap on how many unresolved names get printed; the full list still
// counts, this is display only.
const unknownDisplayLimit = 10

func main() {
	scenePath := flag.String("scene", "", "Input scene snapshot (JSON)")
	outPath := flag.String("out", "", "Output path (default: overwrite input)")
	dir := flag.String("dir", "", "Process every snapshot in this directory instead")
	outDir := flag.String("outdir", "", "Output directory for -dir mode (default: in place)")
	workers := flag.Int("workers", 0, "Worker goroutines for -dir mode (default: NumCPU)")
	flag.Parse()

	if *dir != "" {
		runBatch(*dir, *outDir, *workers)
		return
	}

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: fixnames -scene <snapshot.json> [-out <path>] | -dir <dir> [-outdir <dir>] [-workers N]")
		os.Exit(2)
	}

	s, err := scene.Load(*scenePath)
	if err != nil {
		log.Fatal("load scene", "err", err)
	}

	rep := rename.Canonicalize(s)
	printReport(rep)

	out := *outPath
	if out == "" {
		out = *scenePath
	}
	if err := scene.Save(s, out); err != nil {
		log.Fatal("save scene", "err", err)
	}
	fmt.Printf("Saved: %s\n", out)
}

func printReport(rep *rename.Report) {
	fmt.Printf("Renamed: %d bones\n", rep.Renamed)
	fmt.Printf("Already correct: %d bones\n", rep.AlreadyCorrect)
	fmt.Printf("Skipped: %d bones (target name already exists)\n", rep.Skipped)

	if len(rep.Unknown) > 0 {
		fmt.Printf("\nUnknown bones (not renamed): %d\n", len(rep.Unknown))
		limit := unknownDisplayLimit
		if len(rep.Unknown) < limit {
			limit = len(rep.Unknown)
		}
		for _, name := range rep.Unknown[:limit] {
			fmt.Printf("  - %s\n", name)
		}
		if len(rep.Unknown) > limit {
			fmt.Printf("  ... and %d more\n", len(rep.Unknown)-limit)
		}
	}
}

func runBatch(dir, outDir string, workers int) {
	cfg := config.Config{Workers: workers}
	cfg.Resolve(config.Flags{})

	files, err := batch.ListScenes(dir)
	if err != nil {
		log.Fatal("list scenes", "err", err)
	}
	if len(files) == 0 {
		fmt.Println("No snapshots to process.")
		return
	}

	fmt.Printf("Snapshots: %d, Workers: %d\n", len(files), cfg.Workers)

	results := batch.Run(batch.Config{
		OutputDir: outDir,
		Workers:   cfg.Workers,
		Process: func(s *scene.Scene) (string, error) {
			rep := rename.Canonicalize(s)
			return fmt.Sprintf("renamed=%d correct=%d skipped=%d unknown=%d",
				rep.Renamed, rep.AlreadyCorrect, rep.Skipped, len(rep.Unknown)), nil
		},
	}, files)

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			log.Error("failed", "file", r.File, "err", r.Error)
		}
	}
	fmt.Printf("Processed: %d/%d\n", success, len(files))

	manifestDir := outDir
	if manifestDir == "" {
		manifestDir = dir
	}
	manifestPath := filepath.Join(manifestDir, "fixnames-manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		log.Warn("manifest write failed", "err", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
