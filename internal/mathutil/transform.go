package mathutil

// Transform is a local translation/rotation/scale triple, the unit of
// placement for every scene node.
type Transform struct {
	Translation Vec3 `json:"translation"`
	Rotation    Quat `json:"rotation"`
	Scale       Vec3 `json:"scale"`
}

// TransformIdentity returns a transform that leaves points unchanged.
func TransformIdentity() Transform {
	return Transform{
		Rotation: QuatIdentity(),
		Scale:    Vec3{1, 1, 1},
	}
}

// Compose resolves a child-local transform against its parent's world
// transform. Scale composes component-wise; shear introduced by rotated
// non-uniform scale is not representable and is dropped, which matches
// how the transforms here are produced (uniform or axis-aligned scale).
func Compose(parent, local Transform) Transform {
	return Transform{
		Translation: parent.Translation.Add(parent.Rotation.Rotate(parent.Scale.MulVec(local.Translation))),
		Rotation:    QuatMul(parent.Rotation, local.Rotation),
		Scale:       parent.Scale.MulVec(local.Scale),
	}
}

// Apply transforms a point from local into the transform's parent space.
func (t Transform) Apply(v Vec3) Vec3 {
	return t.Translation.Add(t.Rotation.Rotate(t.Scale.MulVec(v)))
}

// Equal reports whether two transforms match within eps per component.
func (t Transform) Equal(o Transform, eps float64) bool {
	if !t.Translation.Equal(o.Translation, eps) || !t.Scale.Equal(o.Scale, eps) {
		return false
	}
	for i := 0; i < 4; i++ {
		d := t.Rotation[i] - o.Rotation[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}
