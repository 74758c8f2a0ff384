// Package flatten normalizes an imported character scene so the
// armature sits at root level with the canonical name, matching the
// "Armature -> bones" path structure animation files are authored
// against.
package flatten

import (
	"errors"
	"strings"

	"mixamo-rig-tools/internal/mathutil"
	"mixamo-rig-tools/internal/scene"
)

// CanonicalArmatureName is what both the armature node and its bone
// collection are renamed to. Animation files bind by this exact path
// segment.
const CanonicalArmatureName = "Armature"

// RootJointName is the wrapper joint some exporters insert above the
// real root bone.
const RootJointName = "_rootJoint"

// wrapperMarkers identify import-wrapper empties by name,
// case-insensitive substring match.
var wrapperMarkers = []string{"sketchfab", "fbx"}

// Report summarizes what Flatten changed.
type Report struct {
	ArmatureOldName  string
	MeshCount        int
	BoundMeshCount   int
	UnparentedMeshes int
	Deleted          []string
}

// Flatten normalizes the scene in place:
// locate the armature, detach it preserving its world transform, rename
// it canonically, detach meshes, delete wrapper empties, and reset the
// armature's local translation and rotation (scale untouched).
// The scene is mutated even on a partially successful run; the source
// scene is assumed disposable and re-importable.
func Flatten(s *scene.Scene) (*Report, error) {
	armatures := s.ByKind(scene.KindArmature)
	if len(armatures) == 0 {
		return nil, errors.New("flatten: no armature found")
	}
	arm := armatures[0]
	meshes := s.ByKind(scene.KindMesh)

	rep := &Report{
		ArmatureOldName: arm.Name,
		MeshCount:       len(meshes),
	}

	// Record which meshes are bound to this armature before touching
	// the graph. The modifier binding is by node identity, so it
	// survives the rename and reparenting below.
	tracked := map[*scene.Node]bool{arm: true}
	for _, m := range meshes {
		tracked[m] = true
		if m.Mesh != nil && m.Mesh.ArmatureModifier(arm) != nil {
			rep.BoundMeshCount++
		}
	}

	s.ClearParentKeepTransform(arm)

	arm.Name = CanonicalArmatureName
	if arm.Armature != nil {
		arm.Armature.Name = CanonicalArmatureName
	}

	for _, m := range meshes {
		if m.Parent() != nil && m.Parent() != arm {
			s.ClearParentKeepTransform(m)
			rep.UnparentedMeshes++
		}
	}

	// Wrapper empties: deletable when they hold nothing of value, or
	// when a vendor marker names them as import scaffolding. An empty
	// that still has an armature or mesh below it is left alone.
	var doomed []*scene.Node
	for _, n := range s.Nodes() {
		if n.Kind != scene.KindEmpty || tracked[n] {
			continue
		}
		if n.HasDescendant(func(d *scene.Node) bool { return d.Kind == scene.KindArmature }) {
			// Never delete above a surviving armature.
			continue
		}
		hasMesh := n.HasDescendant(func(d *scene.Node) bool { return d.Kind == scene.KindMesh })
		if hasMesh && !hasWrapperMarker(n.Name) {
			continue
		}
		doomed = append(doomed, n)
	}
	for _, n := range doomed {
		rep.Deleted = append(rep.Deleted, n.Name)
		s.Remove(n)
	}

	arm.Transform.Translation = mathutil.Vec3{}
	arm.Transform.Rotation = mathutil.QuatIdentity()

	return rep, nil
}

// RemoveRootJoint drops the exporter's wrapper joint when it is the
// armature's root bone, promoting its child chain to root. Returns
// false (and leaves the armature untouched) when the wrapper is absent
// or has no child to promote.
func RemoveRootJoint(armNode *scene.Node) bool {
	a := armNode.Armature
	if a == nil {
		return false
	}
	root := a.Root()
	if root == nil || root.Name != RootJointName {
		return false
	}
	if len(a.Children(root)) == 0 {
		// Inconsistent rig: a lone wrapper joint with nothing under it.
		// Skip rather than abort the whole run.
		return false
	}
	a.Remove(root)
	return true
}

func hasWrapperMarker(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range wrapperMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
