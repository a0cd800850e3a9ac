package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"vrscene/internal/engine"
)

const GeometryName = "geometry"

func init() {
	engine.RegisterComponent(GeometryName,
		func(props map[string]any) engine.Component {
			g := NewGeometry(PrimitiveBox, rl.White, rl.Vector3{X: 1, Y: 1, Z: 1})
			engine.ApplyProperties(g, props)
			return g
		},
		func(c engine.Component) map[string]any {
			g, ok := c.(*Geometry)
			if !ok {
				return nil
			}
			return map[string]any{
				"primitive": g.Primitive.String(),
				"width":     g.Size.X,
				"height":    g.Size.Y,
				"depth":     g.Size.Z,
				"color":     FormatColor(g.Color),
			}
		},
		func(c engine.Component, name string, value any) bool {
			g, ok := c.(*Geometry)
			if !ok {
				return false
			}
			return g.apply(name, value)
		},
	)
}

type Primitive int

const (
	PrimitiveBox Primitive = iota
	PrimitiveSphere
	PrimitivePlane
)

var primitiveNames = []string{"box", "sphere", "plane"}

func (p Primitive) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return "box"
}

// Geometry draws a solid primitive at its node. Spheres use Size.X as radius;
// planes lie flat and use Size.X by Size.Z.
type Geometry struct {
	engine.BaseComponent
	Primitive Primitive
	Color     rl.Color
	Size      rl.Vector3
}

func NewGeometry(p Primitive, color rl.Color, size rl.Vector3) *Geometry {
	return &Geometry{Primitive: p, Color: color, Size: size}
}

func (g *Geometry) apply(name string, value any) bool {
	switch name {
	case "primitive":
		s, ok := value.(string)
		if !ok {
			return false
		}
		for i, n := range primitiveNames {
			if n == s {
				g.Primitive = Primitive(i)
				return true
			}
		}
		return false
	case "color":
		s, ok := value.(string)
		if !ok {
			return false
		}
		c, err := ParseColor(s)
		if err != nil {
			return false
		}
		g.Color = c
		return true
	}
	f, ok := engine.ToFloat(value)
	if !ok {
		return false
	}
	switch name {
	case "width", "radius":
		g.Size.X = f
	case "height":
		g.Size.Y = f
	case "depth":
		g.Size.Z = f
	default:
		return false
	}
	return true
}

// Draw must be called between BeginMode3D and EndMode3D.
func (g *Geometry) Draw() {
	obj := g.GetGameObject()
	if obj == nil || !obj.Active {
		return
	}

	pos := obj.WorldPosition()
	scale := obj.WorldScale()
	size := rl.Vector3{X: g.Size.X * scale.X, Y: g.Size.Y * scale.Y, Z: g.Size.Z * scale.Z}

	switch g.Primitive {
	case PrimitiveBox:
		rl.DrawCubeV(pos, size, g.Color)
		rl.DrawCubeWiresV(pos, size, rl.Fade(rl.Black, 0.3))
	case PrimitiveSphere:
		rl.DrawSphere(pos, size.X, g.Color)
	case PrimitivePlane:
		rl.DrawPlane(pos, rl.Vector2{X: size.X, Y: size.Z}, g.Color)
	}
}

// DrawScene draws every Geometry in s.
func DrawScene(s *engine.Scene) {
	for _, obj := range s.GameObjects {
		for _, c := range obj.Components() {
			if g, ok := c.(*Geometry); ok {
				g.Draw()
			}
		}
	}
}
