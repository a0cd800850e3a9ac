package look

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// nullTolerance is the per-axis magnitude under which a pose delta counts
// as no movement. Because the reference position is not advanced for a
// null delta, slow drift below the tolerance still accumulates and is
// applied once it crosses it.
const nullTolerance = 1e-6

// PositionDeltaTracker moves a node by the change in head position rather
// than to the absolute head position.
type PositionDeltaTracker struct {
	previous rl.Vector3
}

func (t *PositionDeltaTracker) Previous() rl.Vector3 { return t.previous }

// Reset forgets the reference so the next sample is measured from origin.
func (t *PositionDeltaTracker) Reset() { t.previous = rl.Vector3{} }

// Apply returns current moved by sample-previous. Outside VR mode or for a
// null delta it returns current unchanged, false and leaves the reference
// alone.
func (t *PositionDeltaTracker) Apply(vrMode bool, sample, current rl.Vector3) (rl.Vector3, bool) {
	delta := rl.Vector3Subtract(sample, t.previous)
	if !vrMode || isNullDelta(delta) {
		return current, false
	}
	t.previous = sample
	return rl.Vector3Add(current, delta), true
}

func isNullDelta(d rl.Vector3) bool {
	return math.Abs(float64(d.X)) < nullTolerance &&
		math.Abs(float64(d.Y)) < nullTolerance &&
		math.Abs(float64(d.Z)) < nullTolerance
}
