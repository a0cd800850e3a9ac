package world

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vrscene/internal/components"
	"vrscene/internal/engine"
	"vrscene/internal/look"
	"vrscene/internal/pose"
)

// RigName is the node that carries the camera and look-controls in the
// default scene.
const RigName = "Rig"

const FloorSize = 60.0

type World struct {
	Scene *engine.Scene
}

func New(scene *engine.Scene) *World {
	return &World{Scene: scene}
}

// Default builds the demo scene: a camera rig with look-controls, a floor,
// a ring of boxes and a page-controls panel in front of the viewer.
func Default() *World {
	w := New(engine.NewScene("Main"))
	w.Scene.Background = rl.NewColor(0x1b, 0x1f, 0x2a, 0xff)

	rig := engine.NewGameObject(RigName)
	rig.Tags = []string{"player"}
	rig.AddComponent(components.NewCamera())
	rig.AddComponent(look.New())
	w.Scene.AddGameObject(rig)

	floor := engine.NewGameObject("Floor")
	floor.AddComponent(components.NewGeometry(components.PrimitivePlane, rl.LightGray, rl.Vector3{X: FloorSize, Y: 0, Z: FloorSize}))
	w.Scene.AddGameObject(floor)

	w.createCubes()

	panel := engine.NewGameObject("Pages")
	panel.Transform.Position = rl.Vector3{X: 0, Y: 1.6, Z: -1.5}
	panel.AddComponent(components.NewGeometry(components.PrimitiveBox, rl.RayWhite, rl.Vector3{X: 1.2, Y: 0.8, Z: 0.02}))
	pages := components.NewPageControls()
	pages.Page.Set(panel)
	panel.AddComponent(pages)
	w.Scene.AddGameObject(panel)

	return w
}

func (w *World) createCubes() {
	numCubes := 15
	colors := []rl.Color{
		rl.Red, rl.Blue, rl.Green, rl.Purple, rl.Orange,
		rl.Yellow, rl.Pink, rl.SkyBlue, rl.Lime, rl.Magenta,
	}

	for i := range numCubes {
		angle := float64(i) * (2 * math.Pi / float64(numCubes))
		radius := 8 + 2*math.Sin(3*angle)

		cube := engine.NewGameObject(fmt.Sprintf("Cube_%d", i))
		cube.Tags = []string{"decor"}
		cube.Transform.Position = rl.Vector3{
			X: float32(math.Cos(angle) * radius),
			Y: float32(2 + math.Cos(2*angle)),
			Z: float32(math.Sin(angle) * radius),
		}
		cube.AddComponent(components.NewGeometry(components.PrimitiveBox, colors[i%len(colors)], rl.Vector3{X: 1.5, Y: 1.5, Z: 1.5}))
		w.Scene.AddGameObject(cube)
	}
}

// LookControls returns every look-controls component in the scene.
func (w *World) LookControls() []*look.LookControls {
	var result []*look.LookControls
	for _, g := range w.Scene.GameObjects {
		if lc := engine.GetComponent[*look.LookControls](g); lc != nil {
			result = append(result, lc)
		}
	}
	return result
}

// PageControls returns the first page-controls component, or nil.
func (w *World) PageControls() *components.PageControls {
	for _, g := range w.Scene.GameObjects {
		if pc := engine.GetComponent[*components.PageControls](g); pc != nil {
			return pc
		}
	}
	return nil
}

// SetPoseSource hands src to every look-controls component.
func (w *World) SetPoseSource(src pose.Source) {
	for _, lc := range w.LookControls() {
		lc.SetSource(src)
	}
}

// ApplyLookConfig pushes cfg to every look-controls component.
func (w *World) ApplyLookConfig(cfg look.Config) {
	for _, lc := range w.LookControls() {
		lc.SetConfig(cfg)
	}
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Draw renders the scene from the main camera. It must be called between
// BeginDrawing and EndDrawing.
func (w *World) Draw() {
	rl.ClearBackground(w.Scene.Background)

	cam := components.MainCamera(w.Scene)
	if cam == nil {
		return
	}

	rl.BeginMode3D(cam.GetRaylibCamera())
	rl.DrawGrid(int32(FloorSize), 1.0)
	components.DrawScene(w.Scene)
	rl.EndMode3D()
}
