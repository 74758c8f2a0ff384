package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quatZ builds a rotation of angle radians around the Z axis.
func quatZ(angle float64) Quat {
	return Quat{0, 0, math.Sin(angle / 2), math.Cos(angle / 2)}
}

func TestQuatRotate(t *testing.T) {
	t.Run("Should match the matrix form", func(t *testing.T) {
		q := quatZ(math.Pi / 3)
		v := Vec3{1, 2, 3}
		got := q.Rotate(v)
		want := QuatToMat3(q).MulVec3(v)
		assert.True(t, got.Equal(want, 1e-12), "got %v want %v", got, want)
	})
	t.Run("Should leave vectors alone under identity", func(t *testing.T) {
		v := Vec3{0.5, -1, 2}
		assert.True(t, QuatIdentity().Rotate(v).Equal(v, 1e-15))
	})
}

func TestQuatMul(t *testing.T) {
	t.Run("Should compose rotations right to left", func(t *testing.T) {
		a := quatZ(math.Pi / 4)
		b := quatZ(math.Pi / 4)
		got := QuatMul(a, b).Rotate(Vec3{1, 0, 0})
		want := quatZ(math.Pi / 2).Rotate(Vec3{1, 0, 0})
		assert.True(t, got.Equal(want, 1e-12))
	})
}

func TestCompose(t *testing.T) {
	t.Run("Should be a no-op against identity", func(t *testing.T) {
		local := Transform{
			Translation: Vec3{1, 2, 3},
			Rotation:    quatZ(0.3),
			Scale:       Vec3{2, 2, 2},
		}
		got := Compose(TransformIdentity(), local)
		assert.True(t, got.Equal(local, 1e-12))
	})
	t.Run("Should rotate and scale the child translation", func(t *testing.T) {
		parent := Transform{
			Translation: Vec3{10, 0, 0},
			Rotation:    quatZ(math.Pi / 2),
			Scale:       Vec3{2, 2, 2},
		}
		local := Transform{
			Translation: Vec3{1, 0, 0},
			Rotation:    QuatIdentity(),
			Scale:       Vec3{1, 1, 1},
		}
		got := Compose(parent, local)
		// (1,0,0) scaled to (2,0,0), rotated 90° around Z to (0,2,0),
		// then offset by the parent translation.
		require.True(t, got.Translation.Equal(Vec3{10, 2, 0}, 1e-12), "got %v", got.Translation)
		assert.True(t, got.Scale.Equal(Vec3{2, 2, 2}, 1e-12))
	})
	t.Run("Should agree with Apply on points", func(t *testing.T) {
		parent := Transform{Translation: Vec3{1, 1, 1}, Rotation: quatZ(0.7), Scale: Vec3{1.5, 1.5, 1.5}}
		local := Transform{Translation: Vec3{0, 2, 0}, Rotation: quatZ(-0.2), Scale: Vec3{1, 1, 1}}
		p := Vec3{0.3, 0.4, 0.5}
		viaCompose := Compose(parent, local).Apply(p)
		viaChain := parent.Apply(local.Apply(p))
		assert.True(t, viaCompose.Equal(viaChain, 1e-12), "got %v want %v", viaCompose, viaChain)
	})
}
