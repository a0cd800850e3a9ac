package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"vrscene/internal/engine"
)

const CameraName = "camera"

func init() {
	engine.RegisterComponent(CameraName,
		func(props map[string]any) engine.Component {
			c := NewCamera()
			c.Deserialize(props)
			return c
		},
		func(c engine.Component) map[string]any {
			if cam, ok := c.(*Camera); ok {
				return cam.Serialize()
			}
			return nil
		},
		func(c engine.Component, name string, value any) bool {
			cam, ok := c.(*Camera)
			if !ok {
				return false
			}
			return cam.apply(name, value)
		},
	)
}

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	// UserHeight lifts the eye above the node outside VR mode. In VR the
	// head pose already carries the real height.
	UserHeight float32
	IsMain     bool
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        80.0,
		Near:       0.005,
		Far:        10000.0,
		Projection: rl.CameraPerspective,
		UserHeight: 1.6,
		IsMain:     true,
	}
}

// TypeName returns the registry name
func (c *Camera) TypeName() string {
	return CameraName
}

func (c *Camera) Serialize() map[string]any {
	return map[string]any{
		"fov":        c.FOV,
		"near":       c.Near,
		"far":        c.Far,
		"userHeight": c.UserHeight,
		"active":     c.IsMain,
	}
}

func (c *Camera) Deserialize(data map[string]any) {
	for k, v := range data {
		c.apply(k, v)
	}
}

func (c *Camera) apply(name string, value any) bool {
	if name == "active" {
		b, ok := value.(bool)
		if ok {
			c.IsMain = b
		}
		return ok
	}
	f, ok := engine.ToFloat(value)
	if !ok {
		return false
	}
	switch name {
	case "fov":
		c.FOV = f
	case "near":
		c.Near = f
	case "far":
		c.Far = f
	case "userHeight":
		c.UserHeight = f
	default:
		return false
	}
	return true
}

// GetRaylibCamera builds the render camera from the node's world transform.
// A LookProvider on the node or one of its parents overrides the aim.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	if g.Scene == nil || !g.Scene.InVR() {
		eyePos.Y += c.UserHeight
	}

	rot := g.WorldRotation()
	forward := engine.Forward(rot)
	for obj := g; obj != nil; obj = obj.Parent {
		if lp := engine.FindComponent[engine.LookProvider](obj); lp != nil {
			x, y, z := lp.GetLookDirection()
			forward = rl.Vector3{X: x, Y: y, Z: z}
			break
		}
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, forward),
		Up:         engine.Up(rot),
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}

// MainCamera returns the first active camera in the scene.
func MainCamera(s *engine.Scene) *Camera {
	for _, g := range s.GameObjects {
		if cam := engine.GetComponent[*Camera](g); cam != nil && cam.IsMain {
			return cam
		}
	}
	return nil
}
