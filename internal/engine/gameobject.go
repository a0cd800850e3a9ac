package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
	playing    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

// AddComponent attaches c. If the object is already running, c is started
// and played immediately so late additions behave like initial ones.
func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
	if g.playing {
		if p, ok := c.(Pauser); ok {
			p.Play()
		}
	}
}

// RemoveComponent detaches c, pausing and removing it first.
func (g *GameObject) RemoveComponent(c Component) bool {
	for i, existing := range g.components {
		if existing != c {
			continue
		}
		if r, ok := c.(Remover); ok {
			r.Remove()
		} else if p, ok := c.(Pauser); ok && g.playing {
			p.Pause()
		}
		g.components = append(g.components[:i], g.components[i+1:]...)
		c.SetGameObject(nil)
		return true
	}
	return false
}

// GetComponent returns the first component of type T
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// FindComponent is GetComponent for interface types that need not embed
// Component, such as LookProvider.
func FindComponent[T any](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// Start runs Start on every component once, then plays the object.
func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
	g.Play()
}

// Play resumes all Pauser components. Calling Play on a playing object is a no-op.
func (g *GameObject) Play() {
	if g.playing {
		return
	}
	g.playing = true
	for _, c := range g.components {
		if p, ok := c.(Pauser); ok {
			p.Play()
		}
	}
}

// Pause suspends all Pauser components. Calling Pause on a paused object is a no-op.
func (g *GameObject) Pause() {
	if !g.playing {
		return
	}
	g.playing = false
	for _, c := range g.components {
		if p, ok := c.(Pauser); ok {
			p.Pause()
		}
	}
}

func (g *GameObject) Playing() bool {
	return g.playing
}

// Destroy removes every component, children first.
func (g *GameObject) Destroy() {
	for _, child := range g.Children {
		child.Destroy()
	}
	for len(g.components) > 0 {
		g.RemoveComponent(g.components[len(g.components)-1])
	}
	g.playing = false
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active || !g.playing {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentScale := g.Parent.WorldScale()

	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	rotated := rl.Vector3Transform(scaled, RotationMatrix(g.Parent.WorldRotation()))
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}
