package look

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vrscene/internal/input"
)

const (
	// MouseSensitivity converts pixels of mouse movement to radians.
	MouseSensitivity = 0.002
	// TouchSensitivity scales a full-canvas-width swipe (one turn) down to
	// half a turn.
	TouchSensitivity = 0.5

	maxPitch = math.Pi / 2
)

// OrientationState is the drag accumulator, in radians.
type OrientationState struct {
	Yaw   float64
	Pitch float64
}

// Rotate adds to both axes and clamps pitch to ±π/2.
func (s *OrientationState) Rotate(dYaw, dPitch float64) {
	s.Yaw += dYaw
	s.Pitch = math.Max(-maxPitch, math.Min(maxPitch, s.Pitch+dPitch))
}

func (s *OrientationState) Reset() {
	s.Yaw, s.Pitch = 0, 0
}

// Degrees returns (pitch, yaw) in degrees.
func (s OrientationState) Degrees() (pitch, yaw float32) {
	return float32(radToDeg(s.Pitch)), float32(radToDeg(s.Yaw))
}

type dragSession struct {
	active  bool
	last    rl.Vector2
	hasLast bool
}

func (d *dragSession) open(at rl.Vector2, known bool) {
	d.active = true
	d.last = at
	d.hasLast = known
}

func (d *dragSession) close() {
	*d = dragSession{}
}

// MouseDrag turns mouse movement during a button press into yaw and pitch.
type MouseDrag struct {
	session dragSession
}

func (m *MouseDrag) Active() bool { return m.session.active }

func (m *MouseDrag) Down(e input.MouseEvent) {
	m.session.open(rl.Vector2{X: e.ScreenX, Y: e.ScreenY}, e.HasScreen)
}

// Move applies e to state and reports whether anything changed. Native
// movement deltas are preferred; without them the screen position is
// diffed against the previous event. With neither, the event is skipped.
func (m *MouseDrag) Move(e input.MouseEvent, state *OrientationState) bool {
	s := &m.session
	if !s.active {
		return false
	}

	var dx, dy float32
	applied := true
	switch {
	case e.HasMovement:
		dx, dy = e.MovementX, e.MovementY
	case e.HasScreen && s.hasLast:
		dx, dy = e.ScreenX-s.last.X, e.ScreenY-s.last.Y
	default:
		applied = false
	}
	if e.HasScreen {
		s.last = rl.Vector2{X: e.ScreenX, Y: e.ScreenY}
		s.hasLast = true
	}
	if !applied {
		return false
	}

	state.Rotate(-float64(dx)*MouseSensitivity, -float64(dy)*MouseSensitivity)
	return true
}

func (m *MouseDrag) Release() { m.session.close() }

// TouchDrag turns a single-finger horizontal swipe into yaw. Pitch is never
// touched so a phone held in VR keeps its horizon.
type TouchDrag struct {
	session dragSession
}

func (t *TouchDrag) Active() bool { return t.session.active }

// Start opens a session only for exactly one touch.
func (t *TouchDrag) Start(touches []input.Touch) {
	if len(touches) != 1 {
		return
	}
	t.session.open(rl.Vector2{X: touches[0].PageX, Y: touches[0].PageY}, true)
}

// Move rotates by 2π·dx/canvasWidth·TouchSensitivity and re-anchors.
func (t *TouchDrag) Move(touches []input.Touch, canvasWidth float32, state *OrientationState) bool {
	s := &t.session
	if !s.active || len(touches) == 0 || canvasWidth <= 0 {
		return false
	}
	dx := touches[0].PageX - s.last.X
	state.Rotate(-2*math.Pi*float64(dx)/float64(canvasWidth)*TouchSensitivity, 0)
	s.last = rl.Vector2{X: touches[0].PageX, Y: touches[0].PageY}
	return true
}

func (t *TouchDrag) End() { t.session.close() }

func radToDeg(r float64) float64 { return r * 180 / math.Pi }
