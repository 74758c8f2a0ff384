// Package riggen builds the reference skeleton and a set of placeholder
// animation clips from the static Mixamo tables. The output is a
// scaffold for hand-authored refinement: every clip gets inspectable
// but near-identity keyframes.
package riggen

import (
	"fmt"

	"mixamo-rig-tools/internal/mathutil"
	"mixamo-rig-tools/internal/mixamo"
	"mixamo-rig-tools/internal/scene"
)

// perturbation is the mid-clip rotation key. Near-identity, just enough
// to make the presence of animation visible in an inspector.
var perturbation = mathutil.Quat{0.01, 0.01, 0.01, 0.998}

// Build resets the scene, constructs the armature from the bone table,
// generates one action per clip, and stacks the actions on muted
// tracks. Deterministic over the static tables: two runs produce
// bit-identical bone positions and frame counts.
func Build(s *scene.Scene) (*scene.Node, []*scene.Action, error) {
	s.Reset()

	armNode, err := buildArmature(s)
	if err != nil {
		return nil, nil, err
	}

	actions := make([]*scene.Action, 0, len(mixamo.Clips))
	for _, clip := range mixamo.Clips {
		actions = append(actions, buildAction(s, armNode, clip))
	}

	// No clip stays bound for default playback; consumers pick clips
	// off the track stack.
	ad := armNode.EnsureAnim()
	ad.Active = nil

	// Tracks are created in reverse declaration order; the first
	// track created sits at the bottom of the stack, so the
	// last-declared clip is bottom-most and the first-declared
	// clip ends on top.
	ad.Tracks = ad.Tracks[:0]
	for i := len(actions) - 1; i >= 0; i-- {
		ad.Tracks = append(ad.Tracks, &scene.Track{
			Name:   actions[i].Name,
			Mute:   true,
			Action: actions[i],
		})
	}

	return armNode, actions, nil
}

// buildArmature resolves the bone table in one top-down pass. The table
// is ordered parents-first; a forward reference is a table bug and
// fails loudly rather than producing a half-built rig.
func buildArmature(s *scene.Scene) (*scene.Node, error) {
	node := s.NewNode("Armature", scene.KindArmature)
	arm := scene.NewArmature("Armature")
	node.Armature = arm

	tails := make(map[string]mathutil.Vec3, len(mixamo.BoneDefs))

	for _, def := range mixamo.BoneDefs {
		base := mixamo.RootOrigin
		var parent *scene.Bone
		if def.Parent != "" {
			parent = arm.Bone(def.Parent)
			if parent == nil {
				return nil, fmt.Errorf("riggen: bone %q declared before its parent %q", def.Name, def.Parent)
			}
			base = tails[def.Parent]
		}

		b, err := arm.NewBone(def.Name)
		if err != nil {
			return nil, fmt.Errorf("riggen: %w", err)
		}
		b.Head = base.Add(def.HeadOffset)
		b.Tail = b.Head.Add(def.TailOffset)
		b.Roll = def.Roll
		b.Parent = parent
		// A zero head offset means the head sits exactly on the
		// parent's tail: the bones are connected.
		b.Connected = parent != nil && def.HeadOffset.IsZero()

		tails[def.Name] = b.Tail
	}

	return node, nil
}

func buildAction(s *scene.Scene, armNode *scene.Node, clip mixamo.ClipDef) *scene.Action {
	action := s.NewAction(clip.Name)
	action.FrameCount = clip.FrameCount()
	action.Loop = clip.Loop

	arm := armNode.Armature
	for _, boneName := range clip.Bones() {
		if arm.Bone(boneName) == nil {
			continue
		}
		curve := action.Curve(boneName)
		curve.Insert(1, mathutil.QuatIdentity())
		if action.FrameCount > 4 {
			curve.Insert(action.FrameCount/2, perturbation)
		}
		curve.Insert(action.FrameCount, mathutil.QuatIdentity())
	}

	return action
}
