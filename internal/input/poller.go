package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Poller converts raylib's per-frame input state into canvas events. Call
// Poll once per frame after the window has processed input.
type Poller struct {
	canvas     *Canvas
	touch      bool
	onScreen   bool
	touchCount int
}

// NewPoller creates a poller for canvas. Desktop raylib reports the left
// mouse button as a touch point too, so touch polling is opt-in.
func NewPoller(canvas *Canvas, touch bool) *Poller {
	return &Poller{canvas: canvas, touch: touch, onScreen: true}
}

func (p *Poller) Poll() {
	c := p.canvas
	c.Width = float32(rl.GetScreenWidth())
	c.Height = float32(rl.GetScreenHeight())

	pos := rl.GetMousePosition()
	delta := rl.GetMouseDelta()
	mouse := MouseEvent{
		ScreenX:     pos.X,
		ScreenY:     pos.Y,
		MovementX:   delta.X,
		MovementY:   delta.Y,
		HasScreen:   true,
		HasMovement: true,
	}

	onScreen := rl.IsCursorOnScreen()
	if p.onScreen && !onScreen {
		c.Dispatch(Event{Type: MouseOut, Mouse: mouse})
	}
	p.onScreen = onScreen

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		c.Dispatch(Event{Type: MouseDown, Mouse: mouse})
	}
	if delta.X != 0 || delta.Y != 0 {
		c.Dispatch(Event{Type: MouseMove, Mouse: mouse})
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		c.Dispatch(Event{Type: MouseUp, Mouse: mouse})
	}

	if p.touch {
		p.pollTouches()
	}
}

func (p *Poller) pollTouches() {
	count := int(rl.GetTouchPointCount())
	touches := make([]Touch, 0, count)
	for i := 0; i < count; i++ {
		tp := rl.GetTouchPosition(int32(i))
		touches = append(touches, Touch{
			ID:    int(rl.GetTouchPointId(int32(i))),
			PageX: tp.X,
			PageY: tp.Y,
		})
	}

	switch {
	case count > p.touchCount:
		p.canvas.Dispatch(Event{Type: TouchStart, Touches: touches})
	case count < p.touchCount:
		p.canvas.Dispatch(Event{Type: TouchEnd, Touches: touches})
	case count > 0:
		p.canvas.Dispatch(Event{Type: TouchMove, Touches: touches})
	}
	p.touchCount = count
}
