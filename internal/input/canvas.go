// Package input models the render canvas as an event target. Window
// backends translate their native input into canvas events; components
// subscribe to the event types they care about.
package input

import "sort"

type EventType int

const (
	MouseDown EventType = iota
	MouseMove
	MouseUp
	MouseOut
	TouchStart
	TouchMove
	TouchEnd
)

var eventTypeNames = map[EventType]string{
	MouseDown:  "mousedown",
	MouseMove:  "mousemove",
	MouseUp:    "mouseup",
	MouseOut:   "mouseout",
	TouchStart: "touchstart",
	TouchMove:  "touchmove",
	TouchEnd:   "touchend",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// MouseEvent carries pointer coordinates. Movement is only meaningful when
// HasMovement is set; screen coordinates only when HasScreen is set.
type MouseEvent struct {
	ScreenX, ScreenY     float32
	MovementX, MovementY float32
	HasScreen            bool
	HasMovement          bool
}

// Touch is one active contact point in page coordinates.
type Touch struct {
	ID           int
	PageX, PageY float32
}

type Event struct {
	Type    EventType
	Mouse   MouseEvent
	Touches []Touch
}

type Handler func(Event)

// ListenerID identifies a registration on a Canvas. Zero is never issued.
type ListenerID uint64

type registration struct {
	id      ListenerID
	handler Handler
}

// Canvas is the event target and size source of the render surface.
type Canvas struct {
	Width  float32
	Height float32

	nextID    ListenerID
	listeners map[EventType][]registration
}

func NewCanvas(width, height float32) *Canvas {
	return &Canvas{
		Width:     width,
		Height:    height,
		listeners: make(map[EventType][]registration),
	}
}

// AddListener subscribes h to events of type t.
func (c *Canvas) AddListener(t EventType, h Handler) ListenerID {
	if h == nil {
		return 0
	}
	if c.listeners == nil {
		c.listeners = make(map[EventType][]registration)
	}
	c.nextID++
	c.listeners[t] = append(c.listeners[t], registration{id: c.nextID, handler: h})
	return c.nextID
}

// RemoveListener drops a subscription. Unknown IDs are ignored.
func (c *Canvas) RemoveListener(id ListenerID) bool {
	for t, regs := range c.listeners {
		for i, r := range regs {
			if r.id == id {
				c.listeners[t] = append(regs[:i], regs[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Dispatch delivers e to the handlers registered for e.Type, in
// registration order.
func (c *Canvas) Dispatch(e Event) {
	regs := c.listeners[e.Type]
	snapshot := make([]registration, len(regs))
	copy(snapshot, regs)
	for _, r := range snapshot {
		r.handler(e)
	}
}

// ListenerCount returns the number of handlers across all event types.
func (c *Canvas) ListenerCount() int {
	n := 0
	for _, regs := range c.listeners {
		n += len(regs)
	}
	return n
}

// EventTypes lists the types that currently have at least one listener.
func (c *Canvas) EventTypes() []EventType {
	var types []EventType
	for t, regs := range c.listeners {
		if len(regs) > 0 {
			types = append(types, t)
		}
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
