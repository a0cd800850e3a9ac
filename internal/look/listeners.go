package look

import (
	"vrscene/internal/engine"
	"vrscene/internal/input"
)

type listenerState int

const (
	detached listenerState = iota
	// awaitingCanvas: subscribed to the scene's RenderTargetLoaded signal.
	awaitingCanvas
	listening
)

// listenerSet owns every canvas subscription look-controls makes, so that
// detach removes exactly what attach added.
type listenerSet struct {
	owner *LookControls
	state listenerState

	scene   *engine.Scene
	readyID engine.ListenerID
	canvas  *input.Canvas
	ids     []input.ListenerID
}

func (ls *listenerSet) attach() {
	if ls.state != detached {
		return
	}
	scene := ls.owner.Scene()
	if scene == nil {
		return
	}
	ls.scene = scene
	if canvas := scene.Canvas(); canvas != nil {
		ls.bind(canvas)
		return
	}
	ls.state = awaitingCanvas
	ls.readyID = scene.RenderTargetLoaded.AddListener(ls.onRenderTargetLoaded)
	ls.owner.logger.Debug("look-controls: canvas not ready, waiting for render target")
}

func (ls *listenerSet) onRenderTargetLoaded() {
	if ls.state != awaitingCanvas {
		return
	}
	canvas := ls.scene.Canvas()
	if canvas == nil {
		return
	}
	ls.scene.RenderTargetLoaded.RemoveListener(ls.readyID)
	ls.readyID = 0
	ls.bind(canvas)
}

func (ls *listenerSet) bind(canvas *input.Canvas) {
	lc := ls.owner
	ls.canvas = canvas
	ls.ids = append(ls.ids[:0],
		canvas.AddListener(input.MouseDown, lc.onMouseDown),
		canvas.AddListener(input.MouseMove, lc.onMouseMove),
		canvas.AddListener(input.MouseUp, lc.onMouseRelease),
		canvas.AddListener(input.MouseOut, lc.onMouseRelease),
		canvas.AddListener(input.TouchStart, lc.onTouchStart),
		canvas.AddListener(input.TouchMove, lc.onTouchMove),
		canvas.AddListener(input.TouchEnd, lc.onTouchEnd),
	)
	ls.state = listening
	lc.logger.Debug("look-controls: listening", "listeners", len(ls.ids))
}

func (ls *listenerSet) detach() {
	switch ls.state {
	case awaitingCanvas:
		ls.scene.RenderTargetLoaded.RemoveListener(ls.readyID)
		ls.readyID = 0
	case listening:
		for _, id := range ls.ids {
			ls.canvas.RemoveListener(id)
		}
		ls.ids = ls.ids[:0]
	}
	// The closing up/end event can no longer arrive.
	ls.owner.mouse.Release()
	ls.owner.touch.End()
	ls.state = detached
	ls.scene = nil
	ls.canvas = nil
}
