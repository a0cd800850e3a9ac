package components

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vrscene/internal/engine"
)

const PageControlsName = "page-controls"

func init() {
	engine.RegisterComponent(PageControlsName,
		func(props map[string]any) engine.Component {
			p := NewPageControls()
			p.PageName = engine.PropString(props, "page", "")
			if f := engine.PropFloat(props, "friction", p.Friction); f >= minFriction {
				p.Friction = f
			}
			return p
		},
		func(c engine.Component) map[string]any {
			p, ok := c.(*PageControls)
			if !ok {
				return nil
			}
			name := p.PageName
			if page := p.Page.Get(p.Scene()); page != nil {
				name = page.Name
			}
			return map[string]any{"page": name, "friction": p.Friction}
		},
		nil,
	)
}

const (
	thumbstickAcceleration = 80
	velocitySnap           = 0.0001
	zoomSpeed              = 2.5
	zoomNear               = -1.0
	zoomFar                = -1.8

	// Below 1 the easing factor grows the velocity instead of damping it.
	minFriction     = 1.0
	defaultFriction = 2.0
)

// Page is one entry of the carousel: an identifier for the layer content
// and the scene background shown with it.
type Page struct {
	ID    string
	Color rl.Color
}

func DefaultPages() []Page {
	return []Page{
		{ID: "page1", Color: mustColor("#494949")},
		{ID: "page2", Color: mustColor("#d471aa")},
		{ID: "page3", Color: mustColor("#794782")},
		{ID: "page4", Color: mustColor("#7d0147")},
		{ID: "page5", Color: mustColor("#b06c85")},
	}
}

// PageControls pans a page node with a thumbstick, zooms it with held
// buttons and cycles pages on trigger.
type PageControls struct {
	engine.BaseComponent
	Page     engine.GameObjectRef
	PageName string
	Pages    []Page
	Friction float32

	// PageChanged fires after Trigger selects a new page.
	PageChanged engine.EventWithArg[Page]

	velocity     rl.Vector2
	acceleration rl.Vector2
	zoomIn       bool
	zoomOut      bool
	index        int
}

func NewPageControls() *PageControls {
	return &PageControls{
		Pages:    DefaultPages(),
		Friction: defaultFriction,
	}
}

// Start resolves PageName when no page node was set directly.
func (p *PageControls) Start() {
	if p.Page.IsValid() || p.PageName == "" {
		return
	}
	p.Page.SetByName(p.Scene(), p.PageName)
}

// Thumbstick sets acceleration from stick deflection in [-1, 1]. Stick up
// is negative y.
func (p *PageControls) Thumbstick(x, y float32) {
	p.acceleration.X = x * thumbstickAcceleration
	p.acceleration.Y = -y * thumbstickAcceleration
}

func (p *PageControls) SetZoomIn(held bool)  { p.zoomIn = held }
func (p *PageControls) SetZoomOut(held bool) { p.zoomOut = held }

func (p *PageControls) Velocity() rl.Vector2 { return p.velocity }

func (p *PageControls) Current() Page {
	if len(p.Pages) == 0 {
		return Page{}
	}
	return p.Pages[p.index]
}

// Trigger advances to the next page and recolors the scene background.
func (p *PageControls) Trigger() {
	if len(p.Pages) == 0 {
		return
	}
	p.index = (p.index + 1) % len(p.Pages)
	page := p.Pages[p.index]
	if s := p.Scene(); s != nil {
		s.Background = page.Color
	}
	p.PageChanged.Invoke(page)
}

func (p *PageControls) Update(deltaTime float32) {
	p.updateVelocity(deltaTime)
	page := p.Page.Get(p.Scene())
	if page == nil {
		return
	}
	pos := &page.Transform.Position
	pos.X += p.velocity.X * deltaTime
	pos.Y += p.velocity.Y * deltaTime

	if pos.Z < zoomNear && p.zoomIn {
		pos.Z += zoomSpeed * deltaTime
	}
	if pos.Z > zoomFar && p.zoomOut {
		pos.Z -= zoomSpeed * deltaTime
	}
}

func (p *PageControls) updateVelocity(dt float32) {
	p.velocity.X += p.acceleration.X * dt
	p.velocity.Y += p.acceleration.Y * dt

	// frame-rate independent easing, tuned at 60 fps
	friction := p.Friction
	if !(friction >= minFriction) {
		friction = defaultFriction
	}
	easing := float32(math.Pow(float64(1/friction), float64(dt*60)))
	p.velocity.X *= easing
	p.velocity.Y *= easing

	if abs32(p.velocity.X) < velocitySnap {
		p.velocity.X = 0
	}
	if abs32(p.velocity.Y) < velocitySnap {
		p.velocity.Y = 0
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
