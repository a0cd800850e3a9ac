// Package look implements look-controls: it fuses head pose, mouse drag and
// touch drag into the rotation and position of the node it is attached to.
//
// Every frame the pose source is pumped, the fusion policy picks a mode
// from the VR flag, the hmdEnabled setting, the platform class and whether
// the head pose carries any rotation, and the result is written to the
// node's Transform. Position follows the head by deltas only.
package look

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vrscene/internal/engine"
	"vrscene/internal/input"
	"vrscene/internal/platform"
	"vrscene/internal/pose"
)

// ComponentName is the registry name used in scene files.
const ComponentName = "look-controls"

func init() {
	engine.RegisterComponent(ComponentName,
		func(props map[string]any) engine.Component {
			return New(WithConfig(ConfigFromProps(props)))
		},
		func(c engine.Component) map[string]any {
			if lc, ok := c.(*LookControls); ok {
				return lc.config.Props()
			}
			return nil
		},
		func(c engine.Component, name string, value any) bool {
			lc, ok := c.(*LookControls)
			if !ok {
				return false
			}
			cfg, ok := lc.config.With(name, value)
			if !ok {
				return false
			}
			lc.SetConfig(cfg)
			return true
		},
	)
}

type LookControls struct {
	engine.BaseComponent

	config Config
	mobile bool
	source pose.Source
	logger *slog.Logger

	state   OrientationState
	mouse   MouseDrag
	touch   TouchDrag
	tracker PositionDeltaTracker

	mode      Mode
	listeners listenerSet
}

type Option func(*LookControls)

func WithConfig(cfg Config) Option {
	return func(lc *LookControls) { lc.config = cfg }
}

// WithMobile overrides platform detection.
func WithMobile(mobile bool) Option {
	return func(lc *LookControls) { lc.mobile = mobile }
}

func WithSource(src pose.Source) Option {
	return func(lc *LookControls) { lc.source = src }
}

func WithLogger(logger *slog.Logger) Option {
	return func(lc *LookControls) { lc.logger = logger }
}

// New creates look-controls with the default config. The platform class is
// detected here once and never re-evaluated.
func New(opts ...Option) *LookControls {
	lc := &LookControls{
		config: DefaultConfig(),
		mobile: platform.Detect(),
	}
	for _, opt := range opts {
		opt(lc)
	}
	if lc.logger == nil {
		lc.logger = slog.Default()
	}
	lc.listeners.owner = lc
	return lc
}

// SetSource swaps the pose source. A nil source reports no tracking.
func (lc *LookControls) SetSource(src pose.Source) { lc.source = src }

func (lc *LookControls) Config() Config          { return lc.config }
func (lc *LookControls) State() OrientationState { return lc.state }
func (lc *LookControls) Mode() Mode              { return lc.mode }
func (lc *LookControls) Mobile() bool            { return lc.mobile }

// PreviousHeadPosition is the head position last applied to the node.
func (lc *LookControls) PreviousHeadPosition() rl.Vector3 { return lc.tracker.Previous() }

// SetConfig applies a new config, diffing it against the old one. Turning
// hmdEnabled off clears the drag accumulators. A disabled component keeps
// the new config but does nothing else.
func (lc *LookControls) SetConfig(cfg Config) {
	old := lc.config
	lc.config = cfg
	if !cfg.Enabled {
		return
	}
	if !cfg.HMDEnabled && old.HMDEnabled {
		lc.state.Reset()
		lc.logger.Debug("look-controls: hmd fusion disabled, drag rotation reset")
	}
	lc.refresh()
}

// Update is the per-frame tick.
func (lc *LookControls) Update(deltaTime float32) {
	if !lc.config.Enabled {
		return
	}
	lc.refresh()
}

func (lc *LookControls) Play() {
	lc.listeners.attach()
}

func (lc *LookControls) Pause() {
	lc.listeners.detach()
}

func (lc *LookControls) Remove() {
	lc.Pause()
}

// Listening reports whether canvas listeners are currently attached.
func (lc *LookControls) Listening() bool {
	return lc.listeners.state == listening
}

func (lc *LookControls) refresh() {
	g := lc.GetGameObject()
	if g == nil {
		return
	}
	sample := lc.samplePose()
	vr := g.Scene != nil && g.Scene.InVR()

	rotation, mode := Fuse(FusionInput{
		VRMode:      vr,
		HMDEnabled:  lc.config.HMDEnabled,
		Mobile:      lc.mobile,
		Orientation: sample.Orientation,
		Drag:        lc.state,
	})
	if mode != lc.mode {
		lc.logger.Debug("look-controls: fusion mode changed", "from", lc.mode, "to", mode)
		lc.mode = mode
	}
	g.Transform.Rotation = rotation

	if pos, moved := lc.tracker.Apply(vr, sample.Position, g.Transform.Position); moved {
		g.Transform.Position = pos
	}
}

func (lc *LookControls) samplePose() pose.Sample {
	if lc.source == nil {
		return pose.NoTracking()
	}
	lc.source.SetStanding(lc.config.Standing)
	lc.source.Update()
	return lc.source.Pose()
}

// GetLookDirection returns the unit forward vector of the current rotation.
func (lc *LookControls) GetLookDirection() (x, y, z float32) {
	g := lc.GetGameObject()
	if g == nil {
		return 0, 0, -1
	}
	f := engine.Forward(g.Transform.Rotation)
	return f.X, f.Y, f.Z
}

func (lc *LookControls) onMouseDown(e input.Event) {
	lc.mouse.Down(e.Mouse)
}

func (lc *LookControls) onMouseMove(e input.Event) {
	if !lc.config.Enabled {
		return
	}
	lc.mouse.Move(e.Mouse, &lc.state)
}

func (lc *LookControls) onMouseRelease(input.Event) {
	lc.mouse.Release()
}

func (lc *LookControls) onTouchStart(e input.Event) {
	lc.touch.Start(e.Touches)
}

func (lc *LookControls) onTouchMove(e input.Event) {
	var width float32
	if c := lc.listeners.canvas; c != nil {
		width = c.Width
	}
	lc.touch.Move(e.Touches, width, &lc.state)
}

func (lc *LookControls) onTouchEnd(input.Event) {
	lc.touch.End()
}
