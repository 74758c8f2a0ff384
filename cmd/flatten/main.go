package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"mixamo-rig-tools/internal/flatten"
	"mixamo-rig-tools/internal/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Input scene snapshot (JSON)")
	outPath := flag.String("out", "", "Output path (default: overwrite input)")
	rootJoint := flag.Bool("root-joint", false, "Also remove a _rootJoint wrapper bone")
	flag.Parse()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: flatten -scene <snapshot.json> [-out <path>] [-root-joint]")
		os.Exit(2)
	}

	s, err := scene.Load(*scenePath)
	if err != nil {
		log.Fatal("load scene", "err", err)
	}

	rep, err := flatten.Flatten(s)
	if err != nil {
		log.Fatal("flatten", "err", err)
	}

	fmt.Printf("Armature: %q -> %q\n", rep.ArmatureOldName, flatten.CanonicalArmatureName)
	fmt.Printf("Meshes: %d (%d bound to armature, %d unparented)\n",
		rep.MeshCount, rep.BoundMeshCount, rep.UnparentedMeshes)
	for _, name := range rep.Deleted {
		fmt.Printf("  deleted wrapper: %s\n", name)
	}

	if *rootJoint {
		arm := s.Find(flatten.CanonicalArmatureName)
		if arm != nil && flatten.RemoveRootJoint(arm) {
			fmt.Printf("Removed %s, promoted its child to root bone\n", flatten.RootJointName)
		} else {
			log.Warn("no removable root joint", "bone", flatten.RootJointName)
		}
	}

	out := *outPath
	if out == "" {
		out = *scenePath
	}
	if err := scene.Save(s, out); err != nil {
		log.Fatal("save scene", "err", err)
	}
	fmt.Printf("Saved: %s\n", out)
}
