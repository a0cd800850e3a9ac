package input

import "testing"

func TestCanvasDispatchByType(t *testing.T) {
	c := NewCanvas(800, 600)
	var downs, moves int
	c.AddListener(MouseDown, func(Event) { downs++ })
	c.AddListener(MouseMove, func(Event) { moves++ })

	c.Dispatch(Event{Type: MouseDown})
	c.Dispatch(Event{Type: MouseMove})
	c.Dispatch(Event{Type: MouseMove})
	c.Dispatch(Event{Type: TouchEnd})

	if downs != 1 {
		t.Errorf("Expected 1 mousedown, got %d", downs)
	}
	if moves != 2 {
		t.Errorf("Expected 2 mousemove, got %d", moves)
	}
}

func TestCanvasRemoveListener(t *testing.T) {
	c := NewCanvas(800, 600)
	calls := 0
	id := c.AddListener(TouchStart, func(Event) { calls++ })

	if !c.RemoveListener(id) {
		t.Fatal("RemoveListener should report a removed listener")
	}
	if c.RemoveListener(id) {
		t.Error("Removing twice should report false")
	}

	c.Dispatch(Event{Type: TouchStart})
	if calls != 0 {
		t.Errorf("Expected no calls after removal, got %d", calls)
	}
	if c.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners, got %d", c.ListenerCount())
	}
}

func TestCanvasNilHandler(t *testing.T) {
	c := NewCanvas(1, 1)
	if id := c.AddListener(MouseUp, nil); id != 0 {
		t.Errorf("Expected ID 0 for nil handler, got %d", id)
	}
	if c.ListenerCount() != 0 {
		t.Error("nil handler should not be registered")
	}
}

func TestCanvasZeroValueUsable(t *testing.T) {
	var c Canvas
	c.AddListener(MouseOut, func(Event) {})
	if got := c.EventTypes(); len(got) != 1 || got[0] != MouseOut {
		t.Errorf("Expected [mouseout], got %v", got)
	}
}

func TestEventTypeString(t *testing.T) {
	if MouseDown.String() != "mousedown" {
		t.Errorf("Expected 'mousedown', got '%s'", MouseDown.String())
	}
	if EventType(99).String() != "unknown" {
		t.Errorf("Expected 'unknown', got '%s'", EventType(99).String())
	}
}
