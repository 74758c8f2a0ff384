package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"mixamo-rig-tools/internal/config"
	"mixamo-rig-tools/internal/preview"
	"mixamo-rig-tools/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	scenePath := flag.String("scene", "", "Input scene snapshot (JSON)")
	outPath := flag.String("out", "", "Output WebP path (default: preview.webp)")
	size := flag.Int("size", 0, "Output size in pixels (default: 512)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	elev := flag.Float64("elev", 0, "Camera elevation in degrees")
	turn := flag.Float64("turn", 0, "Rotation around the up axis in degrees")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatal("load config", "err", err)
		}
	}
	cfg.Resolve(config.Flags{
		Scene:       *scenePath,
		Out:         *outPath,
		Size:        *size,
		Supersample: *supersample,
	})
	if *elev != 0 {
		cfg.ElevDeg = *elev
	}
	if *turn != 0 {
		cfg.TurnDeg = *turn
	}
	if cfg.ScenePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: preview -scene <snapshot.json> [-out <path.webp>] [-size N] [-supersample N]")
		os.Exit(2)
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "preview.webp"
	}

	s, err := scene.Load(cfg.ScenePath)
	if err != nil {
		log.Fatal("load scene", "err", err)
	}

	armatures := s.ByKind(scene.KindArmature)
	if len(armatures) == 0 || armatures[0].Armature == nil {
		log.Fatal("no armature in scene", "scene", cfg.ScenePath)
	}
	arm := armatures[0].Armature

	img := preview.Render(arm, preview.Options{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		ElevDeg:     cfg.ElevDeg,
		TurnDeg:     cfg.TurnDeg,
	})
	img = preview.Downsample(img, cfg.RenderSize)

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		log.Fatal("create output", "err", err)
	}
	defer f.Close()

	if err := preview.Encode(f, img); err != nil {
		log.Fatal("encode webp", "err", err)
	}
	fmt.Printf("Rendered %d bones -> %s (%dpx)\n", arm.Len(), cfg.OutputPath, cfg.RenderSize)
}
