package look

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"vrscene/internal/pose"
)

// Mode is the precedence rule chosen for one frame.
type Mode int

const (
	// ModeMouse uses only the drag accumulator.
	ModeMouse Mode = iota
	// ModeMobileVR layers drag yaw/pitch on top of head pose.
	ModeMobileVR
	// ModeDesktopVR uses head pose only.
	ModeDesktopVR
)

func (m Mode) String() string {
	switch m {
	case ModeMouse:
		return "mouse"
	case ModeMobileVR:
		return "mobile-vr"
	case ModeDesktopVR:
		return "desktop-vr"
	}
	return "unknown"
}

// FusionInput is everything the policy looks at in one frame.
type FusionInput struct {
	VRMode      bool
	HMDEnabled  bool
	Mobile      bool
	Orientation rl.Quaternion
	Drag        OrientationState
}

// Fuse returns the node rotation in degrees (x pitch, y yaw, z roll) and
// the mode that produced it. It holds no state and is safe to call from
// anywhere.
func Fuse(in FusionInput) (rl.Vector3, Mode) {
	hmd := pose.EulerYXZ(in.Orientation)
	pitch, yaw := in.Drag.Degrees()

	if !in.VRMode || pose.IsNullVector(hmd) || !in.HMDEnabled {
		return rl.Vector3{X: pitch, Y: yaw}, ModeMouse
	}

	hmdDeg := rl.Vector3{
		X: float32(radToDeg(float64(hmd.X))),
		Y: float32(radToDeg(float64(hmd.Y))),
		Z: float32(radToDeg(float64(hmd.Z))),
	}
	if in.Mobile {
		return rl.Vector3{X: hmdDeg.X + pitch, Y: hmdDeg.Y + yaw, Z: hmdDeg.Z}, ModeMobileVR
	}
	return hmdDeg, ModeDesktopVR
}
