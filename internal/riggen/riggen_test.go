package riggen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mixamo-rig-tools/internal/mathutil"
	"mixamo-rig-tools/internal/mixamo"
	"mixamo-rig-tools/internal/scene"
)

func build(t *testing.T) (*scene.Scene, *scene.Node, []*scene.Action) {
	t.Helper()
	s := scene.New()
	armNode, actions, err := Build(s)
	require.NoError(t, err)
	return s, armNode, actions
}

func TestBuildArmature(t *testing.T) {
	_, armNode, _ := build(t)
	arm := armNode.Armature

	t.Run("Should create every bone in the table", func(t *testing.T) {
		assert.Equal(t, len(mixamo.BoneDefs), arm.Len())
	})

	t.Run("Should root the hips at pelvis height", func(t *testing.T) {
		hips := arm.Bone("mixamorig:Hips")
		require.NotNil(t, hips)
		assert.Nil(t, hips.Parent)
		assert.True(t, hips.Head.Equal(mathutil.Vec3{0, 0, 1.0}, 0))
		assert.True(t, hips.Tail.Equal(mathutil.Vec3{0, 0, 1.1}, 1e-12))
	})

	t.Run("Should chain child heads off parent tails", func(t *testing.T) {
		spine := arm.Bone("mixamorig:Spine")
		hips := arm.Bone("mixamorig:Hips")
		require.NotNil(t, spine)
		assert.True(t, spine.Head.Equal(hips.Tail, 0))
	})

	t.Run("Should apply head offsets relative to the parent tail", func(t *testing.T) {
		// LeftUpLeg declares a (0.1, 0, 0) head offset off the hips tail.
		leg := arm.Bone("mixamorig:LeftUpLeg")
		hips := arm.Bone("mixamorig:Hips")
		require.NotNil(t, leg)
		assert.True(t, leg.Head.Equal(hips.Tail.Add(mathutil.Vec3{0.1, 0, 0}), 1e-12))
	})

	t.Run("Should derive the connected flag from a zero head offset", func(t *testing.T) {
		assert.True(t, arm.Bone("mixamorig:Spine").Connected)
		assert.False(t, arm.Bone("mixamorig:LeftShoulder").Connected)
		assert.False(t, arm.Bone("mixamorig:Hips").Connected, "root is never connected")
	})

	t.Run("Should carry the declared roll", func(t *testing.T) {
		left := arm.Bone("mixamorig:LeftArm")
		right := arm.Bone("mixamorig:RightArm")
		assert.InDelta(t, 3.14159265, left.Roll, 1e-6)
		assert.InDelta(t, -3.14159265, right.Roll, 1e-6)
	})
}

func TestBuildDeterminism(t *testing.T) {
	t.Run("Should produce bit-identical rigs across runs", func(t *testing.T) {
		_, a1, acts1 := build(t)
		_, a2, acts2 := build(t)

		b1, b2 := a1.Armature.Bones(), a2.Armature.Bones()
		require.Equal(t, len(b1), len(b2))
		for i := range b1 {
			assert.Equal(t, b1[i].Name, b2[i].Name)
			assert.Equal(t, b1[i].Head, b2[i].Head, "head of %s", b1[i].Name)
			assert.Equal(t, b1[i].Tail, b2[i].Tail, "tail of %s", b1[i].Name)
		}
		require.Equal(t, len(acts1), len(acts2))
		for i := range acts1 {
			assert.Equal(t, acts1[i].FrameCount, acts2[i].FrameCount)
		}
	})
}

func TestBuildActions(t *testing.T) {
	s, armNode, actions := build(t)

	t.Run("Should generate one action per clip, registered with the scene", func(t *testing.T) {
		require.Len(t, actions, len(mixamo.Clips))
		assert.Len(t, s.Actions(), len(mixamo.Clips))
		for i, clip := range mixamo.Clips {
			assert.Equal(t, clip.Name, actions[i].Name)
			assert.Equal(t, clip.FrameCount(), actions[i].FrameCount)
			assert.Equal(t, clip.Loop, actions[i].Loop)
		}
	})

	t.Run("Should animate the lower body for lower_ clips", func(t *testing.T) {
		lower := s.Action("lower_walk")
		require.NotNil(t, lower)
		assert.Len(t, lower.Curves, len(mixamo.LowerBodyBones))
	})

	t.Run("Should animate the upper body for weapon clips", func(t *testing.T) {
		rifle := s.Action("rifle_idle")
		require.NotNil(t, rifle)
		assert.Len(t, rifle.Curves, len(mixamo.UpperBodyBones))
	})

	t.Run("Should key identity at both ends and a perturbation mid-clip", func(t *testing.T) {
		rifle := s.Action("rifle_idle") // 48 frames
		curve := rifle.Curves[0]
		require.Len(t, curve.Keys, 3)
		assert.Equal(t, 1, curve.Keys[0].Frame)
		assert.True(t, curve.Keys[0].Rotation.IsIdentity())
		assert.Equal(t, 24, curve.Keys[1].Frame)
		assert.False(t, curve.Keys[1].Rotation.IsIdentity())
		assert.Equal(t, 48, curve.Keys[2].Frame)
		assert.True(t, curve.Keys[2].Rotation.IsIdentity())
	})

	t.Run("Should skip the midpoint key on very short clips", func(t *testing.T) {
		fire := s.Action("rifle_fire") // 2 frames
		curve := fire.Curves[0]
		require.Len(t, curve.Keys, 2)
		assert.Equal(t, 1, curve.Keys[0].Frame)
		assert.Equal(t, 2, curve.Keys[1].Frame)
	})

	t.Run("Should leave no active action bound", func(t *testing.T) {
		require.NotNil(t, armNode.Anim)
		assert.Nil(t, armNode.Anim.Active)
	})
}

func TestTrackStack(t *testing.T) {
	_, armNode, _ := build(t)
	tracks := armNode.Anim.Tracks

	t.Run("Should create tracks in reverse declaration order", func(t *testing.T) {
		require.Len(t, tracks, len(mixamo.Clips))
		last := len(mixamo.Clips) - 1
		assert.Equal(t, mixamo.Clips[last].Name, tracks[0].Name, "last-declared clip is bottom-most")
		assert.Equal(t, mixamo.Clips[0].Name, tracks[last].Name, "first-declared clip is top-most")
	})

	t.Run("Should mute every track", func(t *testing.T) {
		for _, tr := range tracks {
			assert.True(t, tr.Mute, "track %s", tr.Name)
		}
	})

	t.Run("Should name tracks after their action", func(t *testing.T) {
		for _, tr := range tracks {
			assert.Equal(t, tr.Action.Name, tr.Name)
		}
	})
}

func TestBuildResetsScene(t *testing.T) {
	t.Run("Should clear pre-existing nodes and actions", func(t *testing.T) {
		s := scene.New()
		s.NewNode("stale", scene.KindMesh)
		s.NewAction("stale_clip")

		_, _, err := Build(s)
		require.NoError(t, err)

		assert.Nil(t, s.Find("stale"))
		assert.Nil(t, s.Action("stale_clip"))
		assert.Len(t, s.Nodes(), 1)
	})
}
