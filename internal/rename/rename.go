// Package rename strips numeric disambiguation suffixes from vendor
// bone names so a skinned mesh matches the naming used by separately
// authored animation files.
package rename

import (
	"strings"

	"mixamo-rig-tools/internal/mixamo"
	"mixamo-rig-tools/internal/scene"
)

// Report aggregates the outcome across every armature in the scene.
type Report struct {
	Renamed        int
	Skipped        int
	AlreadyCorrect int
	Unknown        []string
}

// A rename intent, planned against an immutable snapshot of the bone
// list before any mutation happens.
type intent struct {
	bone    *scene.Bone
	oldName string
	newName string
}

// Canonicalize normalizes vendor bone names in every armature of the
// scene. Non-vendor names are ignored entirely; unresolvable names are
// collected, not errors; a rename whose target name already exists on
// a different bone is skipped and counted. Re-running on an already
// canonical scene changes nothing.
func Canonicalize(s *scene.Scene) *Report {
	rep := &Report{}
	for _, n := range s.ByKind(scene.KindArmature) {
		if n.Armature == nil {
			continue
		}
		canonicalizeArmature(n.Armature, rep)
	}
	return rep
}

func canonicalizeArmature(arm *scene.Armature, rep *Report) {
	// Phase 1: plan. Collecting intents first avoids iteration-order
	// aliasing when renames free up names mid-walk.
	var plan []intent
	for _, b := range arm.Bones() {
		if !strings.HasPrefix(b.Name, mixamo.Prefix) {
			continue
		}
		target, ok := mixamo.CanonicalFor(b.Name)
		if !ok {
			rep.Unknown = append(rep.Unknown, b.Name)
			continue
		}
		if target == b.Name {
			rep.AlreadyCorrect++
			continue
		}
		plan = append(plan, intent{bone: b, oldName: b.Name, newName: target})
	}

	// Phase 2: commit. Collision avoidance takes precedence: a target
	// held by any other bone (including one renamed earlier in this
	// pass) blocks the rename.
	for _, in := range plan {
		if other := arm.Bone(in.newName); other != nil && other != in.bone {
			rep.Skipped++
			continue
		}
		if err := arm.Rename(in.bone, in.newName); err != nil {
			rep.Skipped++
			continue
		}
		rep.Renamed++
	}
}
