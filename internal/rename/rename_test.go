package rename

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mixamo-rig-tools/internal/scene"
)

func armatureScene(t *testing.T, boneNames ...string) (*scene.Scene, *scene.Armature) {
	t.Helper()
	s := scene.New()
	n := s.NewNode("Armature", scene.KindArmature)
	arm := scene.NewArmature("Armature")
	for _, name := range boneNames {
		_, err := arm.NewBone(name)
		require.NoError(t, err)
	}
	n.Armature = arm
	return s, arm
}

func TestCanonicalize(t *testing.T) {
	t.Run("Should strip suffixes down to canonical names", func(t *testing.T) {
		s, arm := armatureScene(t, "mixamorig:Hips_02", "mixamorig:Spine_015")
		rep := Canonicalize(s)

		assert.Equal(t, 2, rep.Renamed)
		assert.Equal(t, 0, rep.Skipped)
		assert.NotNil(t, arm.Bone("mixamorig:Hips"))
		assert.NotNil(t, arm.Bone("mixamorig:Spine"))
	})

	t.Run("Should leave canonical names alone", func(t *testing.T) {
		s, arm := armatureScene(t, "mixamorig:Hips", "mixamorig:LeftHandIndex4")
		rep := Canonicalize(s)

		assert.Equal(t, 0, rep.Renamed)
		assert.Equal(t, 2, rep.AlreadyCorrect)
		assert.NotNil(t, arm.Bone("mixamorig:LeftHandIndex4"))
	})

	t.Run("Should skip a rename whose target exists on another bone", func(t *testing.T) {
		s, arm := armatureScene(t, "mixamorig:Head_02", "mixamorig:Head")
		rep := Canonicalize(s)

		assert.Equal(t, 0, rep.Renamed)
		assert.Equal(t, 1, rep.Skipped)
		assert.Equal(t, 1, rep.AlreadyCorrect)
		assert.NotNil(t, arm.Bone("mixamorig:Head_02"), "collision must leave both bones untouched")
		assert.NotNil(t, arm.Bone("mixamorig:Head"))
	})

	t.Run("Should collect unresolvable vendor names", func(t *testing.T) {
		s, arm := armatureScene(t, "mixamorig:Tail", "mixamorig:Pelvis_02")
		rep := Canonicalize(s)

		assert.Equal(t, 0, rep.Renamed)
		assert.ElementsMatch(t, []string{"mixamorig:Tail", "mixamorig:Pelvis_02"}, rep.Unknown)
		assert.NotNil(t, arm.Bone("mixamorig:Tail"))
	})

	t.Run("Should ignore names outside the vendor namespace", func(t *testing.T) {
		s, arm := armatureScene(t, "_rootJoint", "ControlBone_02")
		rep := Canonicalize(s)

		assert.Zero(t, rep.Renamed)
		assert.Zero(t, rep.Skipped)
		assert.Zero(t, rep.AlreadyCorrect)
		assert.Empty(t, rep.Unknown)
		assert.NotNil(t, arm.Bone("_rootJoint"))
		assert.NotNil(t, arm.Bone("ControlBone_02"))
	})

	t.Run("Should aggregate across armatures", func(t *testing.T) {
		s, _ := armatureScene(t, "mixamorig:Hips_02")
		second := s.NewNode("Armature.001", scene.KindArmature)
		arm2 := scene.NewArmature("Armature.001")
		_, err := arm2.NewBone("mixamorig:Neck_03")
		require.NoError(t, err)
		second.Armature = arm2

		rep := Canonicalize(s)
		assert.Equal(t, 2, rep.Renamed)
	})

	t.Run("Should scope collision checks to one armature", func(t *testing.T) {
		s, arm1 := armatureScene(t, "mixamorig:Head_02")
		second := s.NewNode("Armature.001", scene.KindArmature)
		arm2 := scene.NewArmature("Armature.001")
		_, err := arm2.NewBone("mixamorig:Head")
		require.NoError(t, err)
		second.Armature = arm2

		rep := Canonicalize(s)
		assert.Equal(t, 1, rep.Renamed, "a name held in another armature is not a collision")
		assert.NotNil(t, arm1.Bone("mixamorig:Head"))
	})
}

func TestCanonicalizeIdempotence(t *testing.T) {
	t.Run("Should change nothing on a second run", func(t *testing.T) {
		s, _ := armatureScene(t,
			"mixamorig:Hips_02",
			"mixamorig:Spine",
			"mixamorig:Head_029",
			"mixamorig:UnknownThing",
		)

		first := Canonicalize(s)
		require.Equal(t, 2, first.Renamed)

		second := Canonicalize(s)
		assert.Equal(t, 0, second.Renamed)
		assert.Equal(t, 0, second.Skipped)
		assert.Equal(t, first.Renamed+first.AlreadyCorrect, second.AlreadyCorrect)
		assert.Equal(t, first.Unknown, second.Unknown)
	})
}
