package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"mixamo-rig-tools/internal/mathutil"
)

// Snapshot format: a JSON rendition of the scene with all references
// flattened to names. It is the toolkit's own inspection/interchange
// format, not a 3D interchange file; names must be unique within one
// snapshot for references to resolve.

type sceneJSON struct {
	Nodes   []nodeJSON `json:"nodes"`
	Actions []*Action  `json:"actions,omitempty"`
}

type nodeJSON struct {
	Name      string             `json:"name"`
	Kind      Kind               `json:"kind"`
	Parent    string             `json:"parent,omitempty"`
	Transform mathutil.Transform `json:"transform"`
	Armature  *armatureJSON      `json:"armature,omitempty"`
	Mesh      *meshJSON          `json:"mesh,omitempty"`
	Anim      *animJSON          `json:"anim,omitempty"`
}

type armatureJSON struct {
	Name  string     `json:"name"`
	Bones []boneJSON `json:"bones"`
}

type boneJSON struct {
	Name      string        `json:"name"`
	Parent    string        `json:"parent,omitempty"`
	Head      mathutil.Vec3 `json:"head"`
	Tail      mathutil.Vec3 `json:"tail"`
	Roll      float64       `json:"roll"`
	Connected bool          `json:"connected,omitempty"`
}

type meshJSON struct {
	Modifiers []modifierJSON `json:"modifiers,omitempty"`
}

type modifierJSON struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Object string `json:"object,omitempty"`
}

type animJSON struct {
	Active string      `json:"active,omitempty"`
	Tracks []trackJSON `json:"tracks,omitempty"`
}

type trackJSON struct {
	Name   string `json:"name"`
	Mute   bool   `json:"mute"`
	Action string `json:"action"`
}

// Save writes the scene as an indented JSON snapshot.
func Save(s *Scene, path string) error {
	doc := sceneJSON{Actions: s.actions}
	for _, n := range s.nodes {
		nj := nodeJSON{
			Name:      n.Name,
			Kind:      n.Kind,
			Transform: n.Transform,
		}
		if n.parent != nil {
			nj.Parent = n.parent.Name
		}
		if n.Armature != nil {
			aj := &armatureJSON{Name: n.Armature.Name}
			for _, b := range n.Armature.bones {
				bj := boneJSON{
					Name:      b.Name,
					Head:      b.Head,
					Tail:      b.Tail,
					Roll:      b.Roll,
					Connected: b.Connected,
				}
				if b.Parent != nil {
					bj.Parent = b.Parent.Name
				}
				aj.Bones = append(aj.Bones, bj)
			}
			nj.Armature = aj
		}
		if n.Mesh != nil {
			mj := &meshJSON{}
			for _, mod := range n.Mesh.Modifiers {
				ej := modifierJSON{Name: mod.Name, Type: mod.Type}
				if mod.Object != nil {
					ej.Object = mod.Object.Name
				}
				mj.Modifiers = append(mj.Modifiers, ej)
			}
			nj.Mesh = mj
		}
		if n.Anim != nil {
			tj := &animJSON{}
			if n.Anim.Active != nil {
				tj.Active = n.Anim.Active.Name
			}
			for _, t := range n.Anim.Tracks {
				tj.Tracks = append(tj.Tracks, trackJSON{
					Name:   t.Name,
					Mute:   t.Mute,
					Action: t.Action.Name,
				})
			}
			nj.Anim = tj
		}
		doc.Nodes = append(doc.Nodes, nj)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("scene: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a JSON snapshot back into a live scene graph.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var doc sceneJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	s := New()
	s.actions = doc.Actions

	// First pass: create nodes and data blocks.
	for _, nj := range doc.Nodes {
		n := s.NewNode(nj.Name, nj.Kind)
		n.Transform = nj.Transform
		if n.Transform.Scale.IsZero() && n.Transform.Rotation == (mathutil.Quat{}) {
			n.Transform = mathutil.TransformIdentity()
		}
		if nj.Armature != nil {
			arm := NewArmature(nj.Armature.Name)
			for _, bj := range nj.Armature.Bones {
				b, err := arm.NewBone(bj.Name)
				if err != nil {
					return nil, fmt.Errorf("scene: parse %s: %w", path, err)
				}
				b.Head = bj.Head
				b.Tail = bj.Tail
				b.Roll = bj.Roll
				b.Connected = bj.Connected
			}
			// Second pass over bones: resolve parents by name.
			for _, bj := range nj.Armature.Bones {
				if bj.Parent == "" {
					continue
				}
				p := arm.Bone(bj.Parent)
				if p == nil {
					return nil, fmt.Errorf("scene: parse %s: bone %q references missing parent %q", path, bj.Name, bj.Parent)
				}
				arm.Bone(bj.Name).Parent = p
			}
			n.Armature = arm
		}
		if nj.Mesh != nil {
			n.Mesh = &Mesh{}
		}
	}

	// Second pass: resolve node-level references.
	for i, nj := range doc.Nodes {
		n := s.nodes[i]
		if nj.Parent != "" {
			p := s.Find(nj.Parent)
			if p == nil {
				return nil, fmt.Errorf("scene: parse %s: node %q references missing parent %q", path, nj.Name, nj.Parent)
			}
			if err := s.SetParent(n, p); err != nil {
				return nil, fmt.Errorf("scene: parse %s: %w", path, err)
			}
		}
		if nj.Mesh != nil {
			for _, ej := range nj.Mesh.Modifiers {
				mod := &Modifier{Name: ej.Name, Type: ej.Type}
				if ej.Object != "" {
					mod.Object = s.Find(ej.Object)
					if mod.Object == nil {
						return nil, fmt.Errorf("scene: parse %s: modifier on %q references missing node %q", path, nj.Name, ej.Object)
					}
				}
				n.Mesh.Modifiers = append(n.Mesh.Modifiers, mod)
			}
		}
		if nj.Anim != nil {
			ad := n.EnsureAnim()
			if nj.Anim.Active != "" {
				ad.Active = s.Action(nj.Anim.Active)
			}
			for _, tj := range nj.Anim.Tracks {
				act := s.Action(tj.Action)
				if act == nil {
					return nil, fmt.Errorf("scene: parse %s: track %q references missing action %q", path, tj.Name, tj.Action)
				}
				ad.Tracks = append(ad.Tracks, &Track{Name: tj.Name, Mute: tj.Mute, Action: act})
			}
		}
	}

	return s, nil
}
