package main

import (
	"context"
	"fmt"
	"log/slog"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"vrscene/internal/components"
	"vrscene/internal/config"
	"vrscene/internal/engine"
	"vrscene/internal/input"
	"vrscene/internal/permission"
	"vrscene/internal/platform"
	"vrscene/internal/pose"
	"vrscene/internal/world"
)

type demo struct {
	cfg        config.Config
	configPath string
	logger     *slog.Logger

	world   *world.World
	canvas  *input.Canvas
	poller  *input.Poller
	replay  *pose.Replay
	prompt  *messageBoxPrompt
	watcher *config.Watcher
}

func newDemo(cfg config.Config, configPath string, logger *slog.Logger) (*demo, error) {
	d := &demo{cfg: cfg, configPath: configPath, logger: logger}

	if cfg.Pose.Replay != "" {
		rec, err := pose.Load(cfg.Pose.Replay)
		if err != nil {
			return nil, err
		}
		if d.replay, err = pose.NewReplay(rec, cfg.Pose.Loop); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Pose.Replay, err)
		}
		logger.Info("pose replay loaded", "name", rec.Name, "samples", len(rec.Samples), "rate", rec.Rate)
	}
	return d, nil
}

func (d *demo) run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(d.cfg.Window.Width, d.cfg.Window.Height, d.cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(d.cfg.Window.TargetFPS)

	// Components read the platform class when they are created.
	d.cfg.Platform.Apply()
	mobile := platform.Detect()

	if err := d.loadWorld(); err != nil {
		return err
	}
	d.world.ApplyLookConfig(d.cfg.Look)
	d.installPermission(mobile)

	if d.configPath != "" {
		w, err := config.Watch(d.configPath, d.logger)
		if err != nil {
			d.logger.Warn("config hot reload unavailable", "error", err)
		} else {
			d.watcher = w
			defer w.Close()
		}
	}

	d.canvas = input.NewCanvas(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	d.poller = input.NewPoller(d.canvas, d.cfg.Window.Touch)

	scene := d.world.Scene
	scene.Start()
	// Look-controls wait for the render target before attaching listeners.
	scene.SetCanvas(d.canvas)

	d.logger.Info("look demo running", "mobile", mobile, "scene", scene.Name, "objects", len(scene.GameObjects))

	for !rl.WindowShouldClose() {
		d.applyReloads()
		d.poller.Poll()
		d.handleKeys()
		d.world.Update(rl.GetFrameTime())

		rl.BeginDrawing()
		d.world.Draw()
		d.drawHUD()
		d.prompt.Draw()
		rl.EndDrawing()
	}
	return nil
}

func (d *demo) loadWorld() error {
	if d.cfg.Scene == "" {
		d.world = world.Default()
		return nil
	}
	scene, err := world.LoadScene(d.cfg.Scene)
	if err != nil {
		return err
	}
	d.world = world.New(scene)
	if len(d.world.LookControls()) == 0 {
		d.logger.Warn("scene has no look-controls", "scene", d.cfg.Scene)
	}
	return nil
}

// installPermission gates the replay source behind the motion permission
// component. Mobile platforms show a prompt first.
func (d *demo) installPermission(mobile bool) {
	d.prompt = &messageBoxPrompt{}

	var mp *components.MotionPermission
	for _, g := range d.world.Scene.GameObjects {
		if mp = engine.GetComponent[*components.MotionPermission](g); mp != nil {
			break
		}
	}
	if mp == nil {
		rig := engine.NewGameObject("MotionPermission")
		mp = components.NewMotionPermission(nil, nil)
		rig.AddComponent(mp)
		d.world.Scene.AddGameObject(rig)
	}

	mp.Requester = demoRequester{prompt: mobile}
	mp.Prompt = d.prompt
	mp.Logger = d.logger
	mp.OnGranted.AddListener(func() {
		if d.replay == nil {
			return
		}
		d.logger.Info("device motion granted, replay attached")
		d.world.SetPoseSource(d.replay)
	})
}

func (d *demo) applyReloads() {
	if d.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-d.watcher.Configs:
		if ok {
			d.cfg.Look = cfg.Look
			d.world.ApplyLookConfig(cfg.Look)
		}
	case err, ok := <-d.watcher.Errors:
		if ok {
			d.logger.Warn("config watch error", "error", err)
		}
	default:
	}
}

func (d *demo) handleKeys() {
	scene := d.world.Scene

	if rl.IsKeyPressed(rl.KeyV) {
		if scene.InVR() {
			scene.ExitVR()
		} else {
			scene.EnterVR()
		}
	}
	if rl.IsKeyPressed(rl.KeyH) {
		d.setLook("hmdEnabled", !d.cfg.Look.HMDEnabled)
	}
	if rl.IsKeyPressed(rl.KeyE) {
		d.setLook("enabled", !d.cfg.Look.Enabled)
	}
	if rl.IsKeyPressed(rl.KeyR) && d.replay != nil {
		d.replay.Rewind()
	}

	pc := d.world.PageControls()
	if pc == nil {
		return
	}
	var x, y float32
	if rl.IsKeyDown(rl.KeyLeft) {
		x--
	}
	if rl.IsKeyDown(rl.KeyRight) {
		x++
	}
	if rl.IsKeyDown(rl.KeyUp) {
		y++
	}
	if rl.IsKeyDown(rl.KeyDown) {
		y--
	}
	pc.Thumbstick(x, y)
	pc.SetZoomIn(rl.IsKeyDown(rl.KeyZ))
	pc.SetZoomOut(rl.IsKeyDown(rl.KeyX))
	if rl.IsKeyPressed(rl.KeySpace) {
		pc.Trigger()
	}
}

// setLook changes one look-controls property on every rig through the
// component registry, the same path a scene file takes.
func (d *demo) setLook(name string, value bool) {
	for _, lc := range d.world.LookControls() {
		engine.ApplyProperty(lc, name, value)
	}
	if cfg, ok := d.cfg.Look.With(name, value); ok {
		d.cfg.Look = cfg
	}
}

func (d *demo) drawHUD() {
	scene := d.world.Scene

	rl.DrawRectangle(8, 8, 250, 190, rl.Fade(rl.Black, 0.5))
	rl.DrawFPS(16, 16)

	enabled := gui.CheckBox(rl.Rectangle{X: 16, Y: 44, Width: 16, Height: 16}, "Enabled (E)", d.cfg.Look.Enabled)
	if enabled != d.cfg.Look.Enabled {
		d.setLook("enabled", enabled)
	}
	hmd := gui.CheckBox(rl.Rectangle{X: 16, Y: 68, Width: 16, Height: 16}, "HMD enabled (H)", d.cfg.Look.HMDEnabled)
	if hmd != d.cfg.Look.HMDEnabled {
		d.setLook("hmdEnabled", hmd)
	}
	vr := gui.CheckBox(rl.Rectangle{X: 16, Y: 92, Width: 16, Height: 16}, "VR mode (V)", scene.InVR())
	if vr != scene.InVR() {
		if vr {
			scene.EnterVR()
		} else {
			scene.ExitVR()
		}
	}

	lcs := d.world.LookControls()
	if len(lcs) == 0 {
		return
	}
	lc := lcs[0]
	state := lc.State()
	pitch, yaw := state.Degrees()
	rl.DrawText(fmt.Sprintf("mode: %s", lc.Mode()), 16, 118, 16, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("drag yaw %.1f pitch %.1f", yaw, pitch), 16, 138, 16, rl.RayWhite)
	if g := lc.GetGameObject(); g != nil {
		p := g.Transform.Position
		rl.DrawText(fmt.Sprintf("pos %.2f %.2f %.2f", p.X, p.Y, p.Z), 16, 158, 16, rl.RayWhite)
	}
	if d.replay != nil {
		rl.DrawText(fmt.Sprintf("replay frame %d (R rewinds)", d.replay.Frame()), 16, 178, 16, rl.LightGray)
	}
}

// messageBoxPrompt shows the motion permission question as a raygui
// message box on top of the scene.
type messageBoxPrompt struct {
	visible bool
	accept  func()
	cancel  func()
}

func (p *messageBoxPrompt) Show(accept, cancel func()) {
	p.visible = true
	p.accept = accept
	p.cancel = cancel
}

func (p *messageBoxPrompt) Hide() {
	p.visible = false
	p.accept = nil
	p.cancel = nil
}

func (p *messageBoxPrompt) Draw() {
	if p == nil || !p.visible {
		return
	}
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	bounds := rl.Rectangle{X: w/2 - 180, Y: h/2 - 70, Width: 360, Height: 140}

	accept, cancel := p.accept, p.cancel
	switch gui.MessageBox(bounds, "Device motion", "Allow access to motion sensors?", "Allow;Cancel") {
	case 1:
		if accept != nil {
			accept()
		}
	case 0, 2:
		if cancel != nil {
			cancel()
		}
	}
}

// demoRequester grants access, after a prompt on mobile platforms.
type demoRequester struct {
	prompt bool
}

func (r demoRequester) NeedsPrompt() bool { return r.prompt }

func (r demoRequester) Request(context.Context) (permission.State, error) {
	return permission.Granted, nil
}

var _ permission.Prompt = (*messageBoxPrompt)(nil)
