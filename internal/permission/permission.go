// Package permission is the device-motion permission contract: ask once,
// run a callback on grant, log and do nothing otherwise.
package permission

import (
	"context"
	"log/slog"
)

type State int

const (
	Unavailable State = iota
	Denied
	Granted
)

func (s State) String() string {
	switch s {
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	}
	return "unavailable"
}

// Requester asks the platform for motion-sensor access.
type Requester interface {
	// NeedsPrompt reports whether the user must confirm before Request.
	NeedsPrompt() bool
	Request(ctx context.Context) (State, error)
}

// Prompt is the confirmation UI. Presentation is up to the window backend;
// it calls accept or cancel at most once per Show.
type Prompt interface {
	Show(accept, cancel func())
	Hide()
}

// Request asks r for permission and calls onGrant if it is granted. A
// denial or an error is logged and otherwise ignored. The resulting state
// is returned for callers that want to display it.
func Request(ctx context.Context, r Requester, logger *slog.Logger, onGrant func()) State {
	if logger == nil {
		logger = slog.Default()
	}
	if r == nil {
		return Unavailable
	}
	state, err := r.Request(ctx)
	if err != nil {
		logger.Error("device motion permission request failed", "error", err)
		return Unavailable
	}
	if state != Granted {
		logger.Info("device motion permission not granted", "state", state)
		return state
	}
	if onGrant != nil {
		onGrant()
	}
	return state
}

// Always is a Requester for platforms without a permission gate.
type Always struct{}

func (Always) NeedsPrompt() bool { return false }

func (Always) Request(context.Context) (State, error) { return Granted, nil }
