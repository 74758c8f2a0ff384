package scene

import (
	"fmt"

	"mixamo-rig-tools/internal/mathutil"
)

// Kind tags what a scene node represents.
type Kind string

const (
	KindArmature Kind = "armature"
	KindMesh     Kind = "mesh"
	KindEmpty    Kind = "empty"
	KindOther    Kind = "other"
)

// Node is one entity in the scene graph. The parent link owns the
// positional relationship only, never the child's lifetime.
type Node struct {
	Name      string
	Kind      Kind
	Transform mathutil.Transform

	// Data blocks, present according to Kind.
	Armature *Armature
	Mesh     *Mesh
	Anim     *AnimData

	parent   *Node
	children []*Node
}

// Parent returns the positional parent, or nil for a root node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the direct children. The slice is shared; callers
// that mutate the graph while iterating must copy it first.
func (n *Node) Children() []*Node { return n.children }

// World resolves the node's world transform by composing the parent chain.
func (n *Node) World() mathutil.Transform {
	if n.parent == nil {
		return n.Transform
	}
	return mathutil.Compose(n.parent.World(), n.Transform)
}

// HasDescendant reports whether any node below n satisfies pred.
func (n *Node) HasDescendant(pred func(*Node) bool) bool {
	for _, c := range n.children {
		if pred(c) || c.HasDescendant(pred) {
			return true
		}
	}
	return false
}

// Scene is the single mutable object graph the utilities operate on.
// It stands in for the host tool's live scene so every transformation
// is testable without a running host.
type Scene struct {
	nodes   []*Node
	actions []*Action
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// NewNode creates a node of the given kind at the identity transform
// and links it into the scene at root level.
func (s *Scene) NewNode(name string, kind Kind) *Node {
	n := &Node{
		Name:      name,
		Kind:      kind,
		Transform: mathutil.TransformIdentity(),
	}
	s.nodes = append(s.nodes, n)
	return n
}

// Nodes returns all nodes in insertion order.
func (s *Scene) Nodes() []*Node { return s.nodes }

// ByKind returns all nodes with the given kind, in insertion order.
func (s *Scene) ByKind(kind Kind) []*Node {
	var out []*Node
	for _, n := range s.nodes {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the first node with the given name, or nil.
func (s *Scene) Find(name string) *Node {
	for _, n := range s.nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// Roots returns all parentless nodes.
func (s *Scene) Roots() []*Node {
	var out []*Node
	for _, n := range s.nodes {
		if n.parent == nil {
			out = append(out, n)
		}
	}
	return out
}

// SetParent reparents child under parent (nil detaches). The child's
// local transform is kept as-is; use ClearParentKeepTransform to
// preserve the world-space pose instead. Cycles are rejected.
func (s *Scene) SetParent(child, parent *Node) error {
	for p := parent; p != nil; p = p.parent {
		if p == child {
			return fmt.Errorf("scene: parenting %q under %q would create a cycle", child.Name, parent.Name)
		}
	}
	detach(child)
	child.parent = parent
	if parent != nil {
		parent.children = append(parent.children, child)
	}
	return nil
}

// ClearParentKeepTransform detaches a node from its parent while
// preserving its resolved world transform. No-op for root nodes.
func (s *Scene) ClearParentKeepTransform(n *Node) {
	if n.parent == nil {
		return
	}
	world := n.World()
	detach(n)
	n.parent = nil
	n.Transform = world
}

// Remove deletes a node from the scene. Children survive: each is
// detached at its current world transform before the node is unlinked.
func (s *Scene) Remove(n *Node) {
	for _, c := range append([]*Node(nil), n.children...) {
		s.ClearParentKeepTransform(c)
	}
	detach(n)
	for i, m := range s.nodes {
		if m == n {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			break
		}
	}
}

// Reset removes every node and every stored action.
func (s *Scene) Reset() {
	s.nodes = nil
	s.actions = nil
}

func detach(n *Node) {
	if n.parent == nil {
		return
	}
	sib := n.parent.children
	for i, c := range sib {
		if c == n {
			n.parent.children = append(sib[:i], sib[i+1:]...)
			break
		}
	}
	n.parent = nil
}
