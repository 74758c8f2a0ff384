package scene

import (
	"fmt"

	"mixamo-rig-tools/internal/mathutil"
)

// Armature is the bone collection attached to an armature node. It has
// its own name, distinct from the owning node's name (the host keeps
// object and data-block identifiers separately).
type Armature struct {
	Name  string
	bones []*Bone
}

// Bone is one joint segment inside an armature. Names are unique per
// armature; the parent relation is acyclic.
type Bone struct {
	Name      string
	Parent    *Bone
	Head      mathutil.Vec3
	Tail      mathutil.Vec3
	Roll      float64
	Connected bool
}

// NewArmature returns an empty armature data block.
func NewArmature(name string) *Armature {
	return &Armature{Name: name}
}

// NewBone appends a bone with the given name. Duplicate names are
// rejected to keep the per-armature uniqueness invariant.
func (a *Armature) NewBone(name string) (*Bone, error) {
	if a.Bone(name) != nil {
		return nil, fmt.Errorf("scene: armature %q already has a bone named %q", a.Name, name)
	}
	b := &Bone{Name: name}
	a.bones = append(a.bones, b)
	return b, nil
}

// Bones returns all bones in creation order.
func (a *Armature) Bones() []*Bone { return a.bones }

// Len returns the number of bones.
func (a *Armature) Len() int { return len(a.bones) }

// Bone returns the bone with the given name, or nil.
func (a *Armature) Bone(name string) *Bone {
	for _, b := range a.bones {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Root returns the first parentless bone, or nil for an empty armature.
func (a *Armature) Root() *Bone {
	for _, b := range a.bones {
		if b.Parent == nil {
			return b
		}
	}
	return nil
}

// Children returns the direct children of a bone, in creation order.
func (a *Armature) Children(parent *Bone) []*Bone {
	var out []*Bone
	for _, b := range a.bones {
		if b.Parent == parent && b != parent {
			out = append(out, b)
		}
	}
	return out
}

// Rename changes a bone's name. It fails when another bone already
// carries the target name.
func (a *Armature) Rename(b *Bone, name string) error {
	if other := a.Bone(name); other != nil && other != b {
		return fmt.Errorf("scene: armature %q already has a bone named %q", a.Name, name)
	}
	b.Name = name
	return nil
}

// Remove deletes a bone. Its children are reparented to the removed
// bone's parent (nil makes them roots) and lose their connected flag,
// since their heads no longer meet a parent tail.
func (a *Armature) Remove(b *Bone) {
	for _, c := range a.Children(b) {
		c.Parent = b.Parent
		c.Connected = false
	}
	for i, x := range a.bones {
		if x == b {
			a.bones = append(a.bones[:i], a.bones[i+1:]...)
			return
		}
	}
}
