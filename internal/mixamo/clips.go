package mixamo

import (
	"math"
	"strings"
)

// FPS is the fixed animation frame rate.
const FPS = 24

// ClipDef declares one placeholder animation clip. Loop is carried
// through to the output but not enforced during generation.
type ClipDef struct {
	Name    string
	Seconds float64
	Loop    bool
}

// Clips is the fixed clip list, in declaration order. The consumer
// indexes clips by this order, so it must not be rearranged.
var Clips = []ClipDef{
	// Lower body (indices 0-4)
	{"lower_idle", 2.0, true},
	{"lower_walk", 1.0, true},
	{"lower_run", 0.6, true},
	{"lower_crouch_idle", 2.0, true},
	{"lower_crouch_walk", 1.0, true},
	// Rifle (indices 5-7)
	{"rifle_idle", 2.0, true},
	{"rifle_reload", 2.5, false},
	{"rifle_fire", 0.1, false},
	// Pistol (indices 8-10)
	{"pistol_idle", 2.0, true},
	{"pistol_reload", 1.8, false},
	{"pistol_fire", 0.15, false},
	// Sniper (indices 11-13)
	{"sniper_idle", 2.0, true},
	{"sniper_reload", 3.5, false},
	{"sniper_fire", 1.5, false},
	// Knife (indices 14-15)
	{"knife_idle", 2.0, true},
	{"knife_attack", 0.5, false},
}

// FrameCount converts the clip duration to frames at the fixed rate.
// Every clip spans at least 2 frames so start and end keys never land
// on the same frame.
func (c ClipDef) FrameCount() int {
	n := int(math.Round(c.Seconds * FPS))
	if n < 2 {
		return 2
	}
	return n
}

// Bones returns the bone subset a clip animates: lower-body clips are
// recognized by their name prefix, everything else drives the upper body.
func (c ClipDef) Bones() []string {
	if strings.HasPrefix(c.Name, "lower_") {
		return LowerBodyBones
	}
	return UpperBodyBones
}
