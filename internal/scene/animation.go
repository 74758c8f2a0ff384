package scene

import "mixamo-rig-tools/internal/mathutil"

// Key associates a frame index with a bone rotation. Rotations are
// always quaternions; no Euler fallback exists in this model.
type Key struct {
	Frame    int           `json:"frame"`
	Rotation mathutil.Quat `json:"rotation"`
}

// BoneCurve holds the ordered keyframes of one bone within an action.
type BoneCurve struct {
	BoneName string `json:"bone"`
	Keys     []Key  `json:"keys"`
}

// Action is a named animation clip.
type Action struct {
	Name       string       `json:"name"`
	FrameCount int          `json:"frame_count"`
	Loop       bool         `json:"loop"`
	Curves     []*BoneCurve `json:"curves,omitempty"`
}

// Curve returns the curve for a bone, creating it on first use.
func (a *Action) Curve(boneName string) *BoneCurve {
	for _, c := range a.Curves {
		if c.BoneName == boneName {
			return c
		}
	}
	c := &BoneCurve{BoneName: boneName}
	a.Curves = append(a.Curves, c)
	return c
}

// Insert records a rotation key at the given frame, replacing any
// existing key on the same frame.
func (c *BoneCurve) Insert(frame int, rot mathutil.Quat) {
	for i := range c.Keys {
		if c.Keys[i].Frame == frame {
			c.Keys[i].Rotation = rot
			return
		}
	}
	c.Keys = append(c.Keys, Key{Frame: frame, Rotation: rot})
}

// Track is one non-linear-animation slot holding a single action.
// Stacking order is the track slice order: index 0 is the bottom track.
type Track struct {
	Name   string
	Mute   bool
	Action *Action
}

// AnimData is the animation state attached to one node: the action
// bound for direct playback plus the track stack.
type AnimData struct {
	Active *Action
	Tracks []*Track
}

// EnsureAnim returns the node's animation data, creating it on first use.
func (n *Node) EnsureAnim() *AnimData {
	if n.Anim == nil {
		n.Anim = &AnimData{}
	}
	return n.Anim
}

// NewAction creates a named clip and registers it with the scene's
// action store.
func (s *Scene) NewAction(name string) *Action {
	a := &Action{Name: name}
	s.actions = append(s.actions, a)
	return a
}

// Actions returns every stored clip in creation order.
func (s *Scene) Actions() []*Action { return s.actions }

// Action returns the stored clip with the given name, or nil.
func (s *Scene) Action(name string) *Action {
	for _, a := range s.actions {
		if a.Name == name {
			return a
		}
	}
	return nil
}
