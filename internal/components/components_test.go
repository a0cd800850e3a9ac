package components

import (
	"context"
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vrscene/internal/engine"
	"vrscene/internal/permission"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestCameraUserHeightOutsideVR(t *testing.T) {
	scene := engine.NewScene("Test")
	obj := engine.NewGameObject("Camera")
	obj.Transform.Position = rl.Vector3{X: 1, Y: 0, Z: 2}
	cam := NewCamera()
	obj.AddComponent(cam)
	scene.AddGameObject(obj)

	rc := cam.GetRaylibCamera()
	if !approx(rc.Position.Y, 1.6) {
		t.Errorf("Expected eye at 1.6 outside VR, got %f", rc.Position.Y)
	}
	if !approx(rc.Target.Z, 1) {
		t.Errorf("Expected target one unit down -Z, got %v", rc.Target)
	}

	scene.EnterVR()
	rc = cam.GetRaylibCamera()
	if !approx(rc.Position.Y, 0) {
		t.Errorf("Expected no user height in VR, got %f", rc.Position.Y)
	}
}

func TestCameraFollowsRotation(t *testing.T) {
	obj := engine.NewGameObject("Camera")
	obj.Transform.Rotation = rl.Vector3{Y: 90}
	cam := NewCamera()
	cam.UserHeight = 0
	obj.AddComponent(cam)

	rc := cam.GetRaylibCamera()
	if !approx(rc.Target.X, -1) || !approx(rc.Target.Z, 0) {
		t.Errorf("Yaw 90 should look down -X, got target %v", rc.Target)
	}
}

type fixedLook struct {
	engine.BaseComponent
}

func (fixedLook) GetLookDirection() (x, y, z float32) { return 0, 1, 0 }

func TestCameraUsesParentLookProvider(t *testing.T) {
	rigObj := engine.NewGameObject("Rig")
	rigObj.AddComponent(&fixedLook{})
	camObj := engine.NewGameObject("Camera")
	rigObj.AddChild(camObj)
	cam := NewCamera()
	cam.UserHeight = 0
	camObj.AddComponent(cam)

	rc := cam.GetRaylibCamera()
	if !approx(rc.Target.Y, 1) {
		t.Errorf("Expected LookProvider aim, got target %v", rc.Target)
	}
}

func TestCameraDetached(t *testing.T) {
	if NewCamera().GetRaylibCamera() != (rl.Camera3D{}) {
		t.Error("Detached camera should return a zero Camera3D")
	}
}

func TestCameraProps(t *testing.T) {
	c, err := engine.CreateComponent(CameraName, map[string]any{"fov": float64(60), "userHeight": float64(0), "active": false})
	if err != nil {
		t.Fatal(err)
	}
	cam := c.(*Camera)
	if cam.FOV != 60 || cam.UserHeight != 0 || cam.IsMain {
		t.Errorf("Props not applied: %+v", cam)
	}
	props := cam.Serialize()
	if props["fov"] != float32(60) {
		t.Errorf("Expected fov 60, got %v", props["fov"])
	}
}

func TestMainCamera(t *testing.T) {
	scene := engine.NewScene("Test")
	inactive := engine.NewGameObject("Spectator")
	off := NewCamera()
	off.IsMain = false
	inactive.AddComponent(off)
	main := engine.NewGameObject("Main")
	on := NewCamera()
	main.AddComponent(on)
	scene.AddGameObject(inactive)
	scene.AddGameObject(main)

	if MainCamera(scene) != on {
		t.Error("MainCamera should skip inactive cameras")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#d471aa")
	if err != nil {
		t.Fatal(err)
	}
	if c != rl.NewColor(0xd4, 0x71, 0xaa, 255) {
		t.Errorf("Unexpected color %v", c)
	}
	if FormatColor(c) != "#d471aa" {
		t.Errorf("Expected '#d471aa', got '%s'", FormatColor(c))
	}
	if c, _ := ParseColor("SkyBlue"); c != rl.SkyBlue {
		t.Error("Color names should be case-insensitive")
	}
	if _, err := ParseColor("#zzzzzz"); err == nil {
		t.Error("Expected error for bad hex")
	}
	if _, err := ParseColor("chartreuse-ish"); err == nil {
		t.Error("Expected error for unknown name")
	}
}

func TestGeometryProps(t *testing.T) {
	c, err := engine.CreateComponent(GeometryName, map[string]any{
		"primitive": "sphere",
		"radius":    float64(0.5),
		"color":     "#ff0000",
	})
	if err != nil {
		t.Fatal(err)
	}
	g := c.(*Geometry)
	if g.Primitive != PrimitiveSphere {
		t.Errorf("Expected sphere, got %s", g.Primitive)
	}
	if g.Size.X != 0.5 {
		t.Errorf("Expected radius 0.5, got %f", g.Size.X)
	}
	if g.Color != rl.NewColor(255, 0, 0, 255) {
		t.Errorf("Expected red, got %v", g.Color)
	}
	if g.apply("primitive", "torus") {
		t.Error("Unknown primitive should be rejected")
	}
}

func TestPageControlsVelocityEasing(t *testing.T) {
	p := NewPageControls()
	p.Thumbstick(1, 0)
	p.updateVelocity(1.0 / 60)

	// one 60 fps frame: v = a*dt, then halved by friction 2
	want := float32(80.0/60) / 2
	if !approx(p.Velocity().X, want) {
		t.Errorf("Expected velocity %f, got %f", want, p.Velocity().X)
	}

	p.Thumbstick(0, 0)
	for i := 0; i < 200; i++ {
		p.updateVelocity(1.0 / 60)
	}
	if p.Velocity().X != 0 {
		t.Errorf("Velocity should snap to 0, got %g", p.Velocity().X)
	}
}

func TestPageControlsMovesPage(t *testing.T) {
	scene := engine.NewScene("Test")
	page := engine.NewGameObject("Page")
	page.Transform.Position.Z = -1.5
	controller := engine.NewGameObject("Controller")
	p := NewPageControls()
	p.Page.Set(page)
	controller.AddComponent(p)
	scene.AddGameObject(page)
	scene.AddGameObject(controller)

	p.Thumbstick(0, -1)
	p.SetZoomIn(true)
	p.Update(0.1)

	if page.Transform.Position.Y <= 0 {
		t.Errorf("Stick up should move the page up, got y=%f", page.Transform.Position.Y)
	}
	if !approx(page.Transform.Position.Z, -1.25) {
		t.Errorf("Expected zoom in to z=-1.25, got %f", page.Transform.Position.Z)
	}

	p.SetZoomIn(false)
	p.SetZoomOut(true)
	page.Transform.Position.Z = -1.9
	p.Update(0.1)
	if !approx(page.Transform.Position.Z, -1.9) {
		t.Errorf("Zoom out stops past -1.8, got %f", page.Transform.Position.Z)
	}
}

func TestPageControlsTriggerCycles(t *testing.T) {
	scene := engine.NewScene("Test")
	obj := engine.NewGameObject("Controller")
	p := NewPageControls()
	obj.AddComponent(p)
	scene.AddGameObject(obj)

	var seen []string
	p.PageChanged.AddListener(func(pg Page) { seen = append(seen, pg.ID) })

	for i := 0; i < 5; i++ {
		p.Trigger()
	}

	if len(seen) != 5 || seen[0] != "page2" || seen[4] != "page1" {
		t.Errorf("Unexpected page sequence %v", seen)
	}
	if scene.Background != mustColor("#494949") {
		t.Errorf("Background should follow the current page, got %v", scene.Background)
	}
}

type fakePrompt struct {
	accept, cancel func()
	shown, hidden  int
}

func (f *fakePrompt) Show(accept, cancel func()) {
	f.shown++
	f.accept, f.cancel = accept, cancel
}

func (f *fakePrompt) Hide() { f.hidden++ }

type fakeRequester struct {
	prompt bool
	state  permission.State
}

func (f fakeRequester) NeedsPrompt() bool { return f.prompt }

func (f fakeRequester) Request(context.Context) (permission.State, error) { return f.state, nil }

func TestMotionPermissionAccept(t *testing.T) {
	prompt := &fakePrompt{}
	m := NewMotionPermission(fakeRequester{prompt: true, state: permission.Granted}, prompt)
	granted := 0
	m.OnGranted.AddListener(func() { granted++ })
	obj := engine.NewGameObject("Scene")
	obj.AddComponent(m)
	obj.Start()

	if prompt.shown != 1 || !m.Showing() {
		t.Fatal("Prompt should be shown when the platform gates motion access")
	}
	prompt.accept()

	if granted != 1 {
		t.Errorf("Expected OnGranted once, got %d", granted)
	}
	if m.Showing() || prompt.hidden != 1 {
		t.Error("Prompt should be hidden after accept")
	}
}

func TestMotionPermissionCancel(t *testing.T) {
	prompt := &fakePrompt{}
	m := NewMotionPermission(fakeRequester{prompt: true, state: permission.Granted}, prompt)
	granted := 0
	m.OnGranted.AddListener(func() { granted++ })
	m.Start()
	prompt.cancel()

	if granted != 0 {
		t.Error("Cancel must not grant")
	}
	if m.Showing() {
		t.Error("Prompt should be hidden after cancel")
	}
}

func TestMotionPermissionDenied(t *testing.T) {
	prompt := &fakePrompt{}
	m := NewMotionPermission(fakeRequester{prompt: true, state: permission.Denied}, prompt)
	m.OnGranted.AddListener(func() { t.Error("Denied permission must not fire OnGranted") })
	m.Start()
	prompt.accept()

	if m.State() != permission.Denied {
		t.Errorf("Expected denied, got %s", m.State())
	}
}

func TestMotionPermissionWithoutPrompt(t *testing.T) {
	m := NewMotionPermission(permission.Always{}, nil)
	granted := 0
	m.OnGranted.AddListener(func() { granted++ })
	m.Start()

	if granted != 1 {
		t.Errorf("Ungated platforms should grant at start, got %d", granted)
	}
}

func TestMotionPermissionRemoveHidesPrompt(t *testing.T) {
	prompt := &fakePrompt{}
	m := NewMotionPermission(fakeRequester{prompt: true}, prompt)
	obj := engine.NewGameObject("Scene")
	obj.AddComponent(m)
	obj.Start()
	obj.RemoveComponent(m)

	if prompt.hidden != 1 {
		t.Errorf("Expected prompt hidden on removal, got %d", prompt.hidden)
	}
}

func TestPageControlsRejectsLowFriction(t *testing.T) {
	for _, friction := range []float64{0, 0.5, -3} {
		c, err := engine.CreateComponent(PageControlsName, map[string]any{"friction": friction})
		if err != nil {
			t.Fatalf("CreateComponent failed: %v", err)
		}
		p := c.(*PageControls)
		if p.Friction != defaultFriction {
			t.Errorf("friction %g: expected fallback %g, got %g", friction, defaultFriction, p.Friction)
		}

		scene := engine.NewScene("Test")
		page := engine.NewGameObject("Page")
		obj := engine.NewGameObject("Controller")
		p.Page.Set(page)
		obj.AddComponent(p)
		scene.AddGameObject(page)
		scene.AddGameObject(obj)

		p.Thumbstick(1, 1)
		for i := 0; i < 120; i++ {
			p.Update(1.0 / 60)
		}
		v := p.Velocity()
		if math.IsNaN(float64(v.X)) || math.IsInf(float64(v.X), 0) || math.IsNaN(float64(v.Y)) {
			t.Errorf("friction %g: velocity should stay finite, got %v", friction, v)
		}
		if math.IsNaN(float64(page.Transform.Position.X)) {
			t.Errorf("friction %g: page position became NaN", friction)
		}
	}
}

func TestPageControlsZeroFrictionFieldFallsBack(t *testing.T) {
	p := NewPageControls()
	p.Friction = 0
	p.Thumbstick(1, 0)
	p.updateVelocity(1.0 / 60)

	want := float32(80.0/60) / defaultFriction
	if !approx(p.Velocity().X, want) {
		t.Errorf("Expected velocity %f, got %f", want, p.Velocity().X)
	}
}

func TestPageControlsResolvesPageByNameAtStart(t *testing.T) {
	scene := engine.NewScene("Test")
	page := engine.NewGameObject("Page")
	obj := engine.NewGameObject("Controller")
	c, err := engine.CreateComponent(PageControlsName, map[string]any{"page": "Page"})
	if err != nil {
		t.Fatalf("CreateComponent failed: %v", err)
	}
	p := c.(*PageControls)
	obj.AddComponent(p)
	scene.AddGameObject(obj)
	scene.AddGameObject(page)

	scene.Start()
	if p.Page.Get(scene) != page {
		t.Fatal("page-controls should resolve its page by name on Start")
	}

	scene.RemoveGameObject(page)
	if p.Page.Get(scene) != nil {
		t.Error("Reference should stop resolving once the page is removed")
	}

	// Nothing to move; must not panic.
	p.Thumbstick(1, 0)
	p.Update(1.0 / 60)
}
