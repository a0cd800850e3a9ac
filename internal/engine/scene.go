package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"vrscene/internal/input"
)

type Scene struct {
	Name        string
	GameObjects []*GameObject
	Background  rl.Color

	uidMap map[uint64]*GameObject
	canvas *input.Canvas
	vrMode bool

	// RenderTargetLoaded fires once the canvas is attached.
	RenderTargetLoaded Event
	EnterVREvent       Event
	ExitVREvent        Event
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		Background:  rl.Black,
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject removes g and its children from the scene and tears
// their components down.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	delete(s.uidMap, g.UID)
	g.Destroy()
	g.Scene = nil
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Canvas returns the render target, or nil before SetCanvas.
func (s *Scene) Canvas() *input.Canvas {
	return s.canvas
}

// SetCanvas attaches the render target and fires RenderTargetLoaded.
func (s *Scene) SetCanvas(c *input.Canvas) {
	s.canvas = c
	if c != nil {
		s.RenderTargetLoaded.Invoke()
	}
}

// InVR reports whether an immersive session is active.
func (s *Scene) InVR() bool {
	return s.vrMode
}

func (s *Scene) EnterVR() {
	if s.vrMode {
		return
	}
	s.vrMode = true
	s.EnterVREvent.Invoke()
}

func (s *Scene) ExitVR() {
	if !s.vrMode {
		return
	}
	s.vrMode = false
	s.ExitVREvent.Invoke()
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Pause() {
	for _, g := range s.GameObjects {
		g.Pause()
	}
}

func (s *Scene) Play() {
	for _, g := range s.GameObjects {
		g.Play()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
