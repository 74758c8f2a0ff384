package scene

// ModArmature is the modifier type that binds a mesh to an armature.
const ModArmature = "armature"

// Modifier is a deformation entry on a mesh. Only the armature type
// matters here; the binding is an identifier association to a node and
// survives renames and reparenting.
type Modifier struct {
	Name   string
	Type   string
	Object *Node
}

// Mesh is the data block attached to a mesh node.
type Mesh struct {
	Modifiers []*Modifier
}

// ArmatureModifier returns the first armature-type modifier bound to
// the given node, or nil.
func (m *Mesh) ArmatureModifier(arm *Node) *Modifier {
	for _, mod := range m.Modifiers {
		if mod.Type == ModArmature && mod.Object == arm {
			return mod
		}
	}
	return nil
}

// Bind adds an armature modifier pointing at the given node.
func (m *Mesh) Bind(name string, arm *Node) *Modifier {
	mod := &Modifier{Name: name, Type: ModArmature, Object: arm}
	m.Modifiers = append(m.Modifiers, mod)
	return mod
}
