package main

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/log"

	"mixamo-rig-tools/internal/mixamo"
	"mixamo-rig-tools/internal/riggen"
	"mixamo-rig-tools/internal/scene"
)

func main() {
	outPath := flag.String("out", "rig.json", "Output scene snapshot path")
	flag.Parse()

	s := scene.New()
	armNode, actions, err := riggen.Build(s)
	if err != nil {
		log.Fatal("build rig", "err", err)
	}

	fmt.Printf("Armature: %d bones\n", armNode.Armature.Len())
	fmt.Printf("Clips: %d (on %d muted tracks, stacked in reverse declaration order)\n",
		len(actions), len(armNode.Anim.Tracks))
	for i, clip := range mixamo.Clips {
		fmt.Printf("  [%2d] %-18s %.2fs -> %d frames\n", i, clip.Name, clip.Seconds, clip.FrameCount())
	}

	if err := scene.Save(s, *outPath); err != nil {
		log.Fatal("save scene", "err", err)
	}
	fmt.Printf("Saved: %s\n", *outPath)
}
