package components

import (
	"context"
	"log/slog"

	"vrscene/internal/engine"
	"vrscene/internal/permission"
)

const MotionPermissionName = "device-motion-permission-ui"

func init() {
	engine.RegisterComponent(MotionPermissionName,
		func(props map[string]any) engine.Component {
			m := NewMotionPermission(nil, nil)
			m.Enabled = engine.PropBool(props, "enabled", true)
			return m
		},
		func(c engine.Component) map[string]any {
			if m, ok := c.(*MotionPermission); ok {
				return map[string]any{"enabled": m.Enabled}
			}
			return nil
		},
		nil,
	)
}

// MotionPermission asks for device-motion access when the platform gates
// it behind a user prompt. OnGranted fires once access is granted, or at
// Start when no prompt is needed.
type MotionPermission struct {
	engine.BaseComponent
	Enabled   bool
	Requester permission.Requester
	Prompt    permission.Prompt
	Logger    *slog.Logger
	OnGranted engine.Event

	showing bool
	state   permission.State
}

func NewMotionPermission(r permission.Requester, p permission.Prompt) *MotionPermission {
	return &MotionPermission{Enabled: true, Requester: r, Prompt: p}
}

func (m *MotionPermission) State() permission.State { return m.state }

func (m *MotionPermission) Showing() bool { return m.showing }

func (m *MotionPermission) Start() {
	if !m.Enabled || m.Requester == nil {
		return
	}
	if !m.Requester.NeedsPrompt() {
		m.request()
		return
	}
	if m.Prompt == nil {
		return
	}
	m.showing = true
	m.Prompt.Show(m.accept, m.cancel)
}

func (m *MotionPermission) accept() {
	m.request()
	m.hide()
}

func (m *MotionPermission) cancel() {
	m.hide()
}

func (m *MotionPermission) request() {
	m.state = permission.Request(context.Background(), m.Requester, m.Logger, m.OnGranted.Invoke)
}

func (m *MotionPermission) hide() {
	if !m.showing {
		return
	}
	m.showing = false
	if m.Prompt != nil {
		m.Prompt.Hide()
	}
}

func (m *MotionPermission) Remove() {
	m.hide()
}
