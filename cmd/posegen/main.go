// posegen writes a synthetic head-sway pose recording for lookdemo --replay.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/pflag"

	"vrscene/internal/pose"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	p := pose.DefaultSway()
	var out, name string
	var yawDeg, pitchDeg float64

	flagSet := pflag.NewFlagSet("posegen", pflag.ContinueOnError)
	flagSet.StringVarP(&out, "out", "o", "sway.cbor", "output file")
	flagSet.StringVar(&name, "name", "sway", "recording name")
	flagSet.Float64Var(&p.Seconds, "seconds", p.Seconds, "duration in seconds")
	flagSet.Float64Var(&p.Rate, "rate", p.Rate, "samples per second")
	flagSet.Float64Var(&p.Period, "period", p.Period, "seconds per sweep")
	flagSet.Float64Var(&yawDeg, "yaw", 45, "yaw amplitude in degrees")
	flagSet.Float64Var(&pitchDeg, "pitch", 15, "pitch amplitude in degrees")
	flagSet.Float64Var(&p.BobAmplitude, "bob", p.BobAmplitude, "vertical bob amplitude in scene units")
	flagSet.Float32Var(&p.StandingHeight, "height", p.StandingHeight, "standing eye height added in standing mode")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if p.Rate <= 0 || p.Seconds <= 0 || p.Period <= 0 {
		return fmt.Errorf("--rate, --seconds and --period must be positive")
	}
	p.YawAmplitude = yawDeg * degToRad
	p.PitchAmplitude = pitchDeg * degToRad

	rec := pose.Sway(name, p)
	if err := pose.Save(out, rec); err != nil {
		return err
	}
	slog.Info("recording written", "path", out, "samples", len(rec.Samples), "rate", rec.Rate)
	return nil
}

const degToRad = math.Pi / 180
