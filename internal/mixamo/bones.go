package mixamo

import (
	"math"

	"mixamo-rig-tools/internal/mathutil"
)

// BoneDef describes one joint of the reference skeleton. Head offsets
// are relative to the parent's resolved tail (or RootOrigin for the
// root); tail offsets are relative to the computed head. Units are
// meters.
type BoneDef struct {
	Name       string
	Parent     string
	HeadOffset mathutil.Vec3
	TailOffset mathutil.Vec3
	Roll       float64
}

// RootOrigin is where the root bone chain starts: approximate pelvis
// height above the ground plane.
var RootOrigin = mathutil.Vec3{0, 0, 1.0}

// BoneDefs is the full reference skeleton, ordered parents-first so a
// single top-down pass resolves every head and tail position.
var BoneDefs = []BoneDef{
	// Root/Hips
	{"mixamorig:Hips", "", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 0, 0.1}, 0},

	// Spine chain
	{"mixamorig:Spine", "mixamorig:Hips", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 0, 0.12}, 0},
	{"mixamorig:Spine1", "mixamorig:Spine", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 0, 0.12}, 0},
	{"mixamorig:Spine2", "mixamorig:Spine1", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 0, 0.12}, 0},

	// Head
	{"mixamorig:Neck", "mixamorig:Spine2", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 0, 0.08}, 0},
	{"mixamorig:Head", "mixamorig:Neck", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 0, 0.2}, 0},
	{"mixamorig:HeadTop_End", "mixamorig:Head", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 0, 0.1}, 0},

	// Left arm
	{"mixamorig:LeftShoulder", "mixamorig:Spine2", mathutil.Vec3{0.05, 0, -0.02}, mathutil.Vec3{0.12, 0, 0}, 0},
	{"mixamorig:LeftArm", "mixamorig:LeftShoulder", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.28, 0, 0}, math.Pi},
	{"mixamorig:LeftForeArm", "mixamorig:LeftArm", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.25, 0, 0}, math.Pi},
	{"mixamorig:LeftHand", "mixamorig:LeftForeArm", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.08, 0, 0}, 0},

	// Left hand fingers
	{"mixamorig:LeftHandThumb1", "mixamorig:LeftHand", mathutil.Vec3{-0.02, 0.02, 0}, mathutil.Vec3{0.03, 0.02, 0}, 0},
	{"mixamorig:LeftHandThumb2", "mixamorig:LeftHandThumb1", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.025, 0, 0}, 0},
	{"mixamorig:LeftHandThumb3", "mixamorig:LeftHandThumb2", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.02, 0, 0}, 0},
	{"mixamorig:LeftHandThumb4", "mixamorig:LeftHandThumb3", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.015, 0, 0}, 0},

	{"mixamorig:LeftHandIndex1", "mixamorig:LeftHand", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.04, 0.01, 0}, 0},
	{"mixamorig:LeftHandIndex2", "mixamorig:LeftHandIndex1", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.025, 0, 0}, 0},
	{"mixamorig:LeftHandIndex3", "mixamorig:LeftHandIndex2", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.02, 0, 0}, 0},
	{"mixamorig:LeftHandIndex4", "mixamorig:LeftHandIndex3", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.015, 0, 0}, 0},

	{"mixamorig:LeftHandMiddle1", "mixamorig:LeftHand", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.045, 0, 0}, 0},
	{"mixamorig:LeftHandMiddle2", "mixamorig:LeftHandMiddle1", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.03, 0, 0}, 0},
	{"mixamorig:LeftHandMiddle3", "mixamorig:LeftHandMiddle2", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.022, 0, 0}, 0},
	{"mixamorig:LeftHandMiddle4", "mixamorig:LeftHandMiddle3", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.015, 0, 0}, 0},

	{"mixamorig:LeftHandRing1", "mixamorig:LeftHand", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.04, -0.01, 0}, 0},
	{"mixamorig:LeftHandRing2", "mixamorig:LeftHandRing1", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.028, 0, 0}, 0},
	{"mixamorig:LeftHandRing3", "mixamorig:LeftHandRing2", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.02, 0, 0}, 0},
	{"mixamorig:LeftHandRing4", "mixamorig:LeftHandRing3", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.015, 0, 0}, 0},

	{"mixamorig:LeftHandPinky1", "mixamorig:LeftHand", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.035, -0.02, 0}, 0},
	{"mixamorig:LeftHandPinky2", "mixamorig:LeftHandPinky1", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.022, 0, 0}, 0},
	{"mixamorig:LeftHandPinky3", "mixamorig:LeftHandPinky2", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.018, 0, 0}, 0},
	{"mixamorig:LeftHandPinky4", "mixamorig:LeftHandPinky3", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0.015, 0, 0}, 0},

	// Right arm
	{"mixamorig:RightShoulder", "mixamorig:Spine2", mathutil.Vec3{-0.05, 0, -0.02}, mathutil.Vec3{-0.12, 0, 0}, 0},
	{"mixamorig:RightArm", "mixamorig:RightShoulder", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.28, 0, 0}, -math.Pi},
	{"mixamorig:RightForeArm", "mixamorig:RightArm", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.25, 0, 0}, -math.Pi},
	{"mixamorig:RightHand", "mixamorig:RightForeArm", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.08, 0, 0}, 0},

	// Right hand fingers
	{"mixamorig:RightHandThumb1", "mixamorig:RightHand", mathutil.Vec3{0.02, 0.02, 0}, mathutil.Vec3{-0.03, 0.02, 0}, 0},
	{"mixamorig:RightHandThumb2", "mixamorig:RightHandThumb1", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.025, 0, 0}, 0},
	{"mixamorig:RightHandThumb3", "mixamorig:RightHandThumb2", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.02, 0, 0}, 0},
	{"mixamorig:RightHandThumb4", "mixamorig:RightHandThumb3", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.015, 0, 0}, 0},

	{"mixamorig:RightHandIndex1", "mixamorig:RightHand", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.04, 0.01, 0}, 0},
	{"mixamorig:RightHandIndex2", "mixamorig:RightHandIndex1", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.025, 0, 0}, 0},
	{"mixamorig:RightHandIndex3", "mixamorig:RightHandIndex2", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.02, 0, 0}, 0},
	{"mixamorig:RightHandIndex4", "mixamorig:RightHandIndex3", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.015, 0, 0}, 0},

	{"mixamorig:RightHandMiddle1", "mixamorig:RightHand", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.045, 0, 0}, 0},
	{"mixamorig:RightHandMiddle2", "mixamorig:RightHandMiddle1", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.03, 0, 0}, 0},
	{"mixamorig:RightHandMiddle3", "mixamorig:RightHandMiddle2", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.022, 0, 0}, 0},
	{"mixamorig:RightHandMiddle4", "mixamorig:RightHandMiddle3", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.015, 0, 0}, 0},

	{"mixamorig:RightHandRing1", "mixamorig:RightHand", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.04, -0.01, 0}, 0},
	{"mixamorig:RightHandRing2", "mixamorig:RightHandRing1", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.028, 0, 0}, 0},
	{"mixamorig:RightHandRing3", "mixamorig:RightHandRing2", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.02, 0, 0}, 0},
	{"mixamorig:RightHandRing4", "mixamorig:RightHandRing3", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.015, 0, 0}, 0},

	{"mixamorig:RightHandPinky1", "mixamorig:RightHand", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.035, -0.02, 0}, 0},
	{"mixamorig:RightHandPinky2", "mixamorig:RightHandPinky1", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.022, 0, 0}, 0},
	{"mixamorig:RightHandPinky3", "mixamorig:RightHandPinky2", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.018, 0, 0}, 0},
	{"mixamorig:RightHandPinky4", "mixamorig:RightHandPinky3", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{-0.015, 0, 0}, 0},

	// Left leg
	{"mixamorig:LeftUpLeg", "mixamorig:Hips", mathutil.Vec3{0.1, 0, 0}, mathutil.Vec3{0.1, 0, -0.45}, 0},
	{"mixamorig:LeftLeg", "mixamorig:LeftUpLeg", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 0, -0.42}, 0},
	{"mixamorig:LeftFoot", "mixamorig:LeftLeg", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, -0.12, 0.03}, 0},
	{"mixamorig:LeftToeBase", "mixamorig:LeftFoot", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, -0.08, 0}, 0},
	{"mixamorig:LeftToe_End", "mixamorig:LeftToeBase", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, -0.04, 0}, 0},

	// Right leg
	{"mixamorig:RightUpLeg", "mixamorig:Hips", mathutil.Vec3{-0.1, 0, 0}, mathutil.Vec3{-0.1, 0, -0.45}, 0},
	{"mixamorig:RightLeg", "mixamorig:RightUpLeg", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 0, -0.42}, 0},
	{"mixamorig:RightFoot", "mixamorig:RightLeg", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, -0.12, 0.03}, 0},
	{"mixamorig:RightToeBase", "mixamorig:RightFoot", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, -0.08, 0}, 0},
	{"mixamorig:RightToe_End", "mixamorig:RightToeBase", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, -0.04, 0}, 0},
}

// LowerBodyBones is the subset animated by locomotion clips.
var LowerBodyBones = []string{
	"mixamorig:Hips",
	"mixamorig:Spine",
	"mixamorig:LeftUpLeg", "mixamorig:LeftLeg", "mixamorig:LeftFoot", "mixamorig:LeftToeBase",
	"mixamorig:RightUpLeg", "mixamorig:RightLeg", "mixamorig:RightFoot", "mixamorig:RightToeBase",
}

// UpperBodyBones is the subset animated by weapon clips.
var UpperBodyBones = []string{
	"mixamorig:Spine1", "mixamorig:Spine2",
	"mixamorig:Neck", "mixamorig:Head",
	"mixamorig:LeftShoulder", "mixamorig:LeftArm", "mixamorig:LeftForeArm", "mixamorig:LeftHand",
	"mixamorig:LeftHandThumb1", "mixamorig:LeftHandThumb2", "mixamorig:LeftHandThumb3",
	"mixamorig:LeftHandIndex1", "mixamorig:LeftHandIndex2", "mixamorig:LeftHandIndex3",
	"mixamorig:LeftHandMiddle1", "mixamorig:LeftHandMiddle2", "mixamorig:LeftHandMiddle3",
	"mixamorig:LeftHandRing1", "mixamorig:LeftHandRing2", "mixamorig:LeftHandRing3",
	"mixamorig:LeftHandPinky1", "mixamorig:LeftHandPinky2", "mixamorig:LeftHandPinky3",
	"mixamorig:RightShoulder", "mixamorig:RightArm", "mixamorig:RightForeArm", "mixamorig:RightHand",
	"mixamorig:RightHandThumb1", "mixamorig:RightHandThumb2", "mixamorig:RightHandThumb3",
	"mixamorig:RightHandIndex1", "mixamorig:RightHandIndex2", "mixamorig:RightHandIndex3",
	"mixamorig:RightHandMiddle1", "mixamorig:RightHandMiddle2", "mixamorig:RightHandMiddle3",
	"mixamorig:RightHandRing1", "mixamorig:RightHandRing2", "mixamorig:RightHandRing3",
	"mixamorig:RightHandPinky1", "mixamorig:RightHandPinky2", "mixamorig:RightHandPinky3",
}
