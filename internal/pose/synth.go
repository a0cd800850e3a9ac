package pose

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SwayParams describes a synthetic head motion: a slow yaw sweep, a
// smaller pitch nod and a vertical bob, all sinusoidal.
type SwayParams struct {
	Seconds        float64
	Rate           float64 // samples per second
	YawAmplitude   float64 // radians
	PitchAmplitude float64 // radians
	BobAmplitude   float64 // scene units
	Period         float64 // seconds per full sweep
	StandingHeight float32
}

func DefaultSway() SwayParams {
	return SwayParams{
		Seconds:        10,
		Rate:           60,
		YawAmplitude:   math.Pi / 4,
		PitchAmplitude: math.Pi / 12,
		BobAmplitude:   0.02,
		Period:         4,
		StandingHeight: 1.6,
	}
}

// Sway generates a Recording from p.
func Sway(name string, p SwayParams) *Recording {
	n := int(p.Seconds * p.Rate)
	rec := &Recording{
		Name:           name,
		Rate:           float32(p.Rate),
		StandingHeight: p.StandingHeight,
		Samples:        make([]RecordedSample, 0, n),
	}
	for i := 0; i < n; i++ {
		t := float64(i) / p.Rate
		phase := 2 * math.Pi * t / p.Period
		yaw := p.YawAmplitude * math.Sin(phase)
		pitch := p.PitchAmplitude * math.Sin(2*phase)
		rec.Append(Sample{
			Orientation: QuaternionYXZ(pitch, yaw, 0),
			Position:    rl.Vector3{Y: float32(p.BobAmplitude * math.Sin(4*phase))},
		})
	}
	return rec
}
