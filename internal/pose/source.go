// Package pose is the head-tracking contract: a Source is pumped once per
// frame and then read as an orientation quaternion plus a position.
package pose

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sample is one frame's head pose. Orientation is a unit quaternion,
// Position is in scene units.
type Sample struct {
	Orientation rl.Quaternion
	Position    rl.Vector3
}

// NoTracking is what a source reports when it has no data: the identity
// orientation at the origin.
func NoTracking() Sample {
	return Sample{Orientation: rl.Quaternion{W: 1}}
}

// Source is a pose-tracking subsystem. Update is expected once per frame
// before Pose is read.
type Source interface {
	// SetStanding switches between the seated and standing reference frame.
	SetStanding(standing bool)
	Update()
	Pose() Sample
}

// Static is a Source that reports whatever sample was last stored. Tests and
// desktop runs without a headset use it.
type Static struct {
	Sample   Sample
	Standing bool
	Updates  int
}

func NewStatic() *Static {
	return &Static{Sample: NoTracking(), Standing: true}
}

func (s *Static) SetStanding(standing bool) { s.Standing = standing }

func (s *Static) Update() { s.Updates++ }

func (s *Static) Pose() Sample { return s.Sample }

// Set replaces the reported sample.
func (s *Static) Set(orientation rl.Quaternion, position rl.Vector3) {
	s.Sample = Sample{Orientation: orientation, Position: position}
}
