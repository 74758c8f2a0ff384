package main

import (
	"fmt"
	"os"
	"strings"

	"mixamo-rig-tools/internal/scene"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: inspect <snapshot.json>")
		os.Exit(2)
	}

	s, err := scene.Load(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Nodes: %d, Actions: %d\n", len(s.Nodes()), len(s.Actions()))

	fmt.Println("\nScene hierarchy:")
	for _, root := range s.Roots() {
		printNode(root, 0)
	}

	for _, n := range s.ByKind(scene.KindArmature) {
		if n.Armature == nil {
			continue
		}
		fmt.Printf("\nBones of %s (%d):\n", n.Name, n.Armature.Len())
		for _, b := range n.Armature.Bones() {
			if b.Parent == nil {
				printBone(n.Armature, b, 1)
			}
		}
		if n.Anim != nil && len(n.Anim.Tracks) > 0 {
			fmt.Printf("\nTracks of %s (bottom to top):\n", n.Name)
			for i, t := range n.Anim.Tracks {
				muted := ""
				if t.Mute {
					muted = " [muted]"
				}
				fmt.Printf("  [%2d] %s -> %s (%d frames)%s\n", i, t.Name, t.Action.Name, t.Action.FrameCount, muted)
			}
		}
	}
}

func printNode(n *scene.Node, depth int) {
	fmt.Printf("%s- %s (%s)\n", strings.Repeat("  ", depth), n.Name, n.Kind)
	for _, c := range n.Children() {
		printNode(c, depth+1)
	}
}

func printBone(arm *scene.Armature, b *scene.Bone, depth int) {
	conn := ""
	if b.Connected {
		conn = " (connected)"
	}
	fmt.Printf("%s- %s%s\n", strings.Repeat("  ", depth), b.Name, conn)
	for _, c := range arm.Children(b) {
		printBone(arm, c, depth+1)
	}
}
