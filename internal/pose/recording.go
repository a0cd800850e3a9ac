package pose

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrEmptyRecording is returned when a recording has no samples to replay.
var ErrEmptyRecording = errors.New("pose: recording has no samples")

// Recording is a captured head-tracking session, stored as CBOR.
type Recording struct {
	Name string `cbor:"name"`
	// Rate is the capture rate in samples per second. Replay advances one
	// sample per frame regardless; Rate is informational.
	Rate float32 `cbor:"rate"`
	// StandingHeight is added to Y when replaying in standing mode.
	StandingHeight float32          `cbor:"standingHeight"`
	Samples        []RecordedSample `cbor:"samples"`
}

// RecordedSample is the wire form of a Sample.
type RecordedSample struct {
	Orientation [4]float32 `cbor:"q"`
	Position    [3]float32 `cbor:"p"`
}

func Record(s Sample) RecordedSample {
	q, p := s.Orientation, s.Position
	return RecordedSample{
		Orientation: [4]float32{q.X, q.Y, q.Z, q.W},
		Position:    [3]float32{p.X, p.Y, p.Z},
	}
}

func (r RecordedSample) Sample() Sample {
	q, p := r.Orientation, r.Position
	return Sample{
		Orientation: rl.Quaternion{X: q[0], Y: q[1], Z: q[2], W: q[3]},
		Position:    rl.Vector3{X: p[0], Y: p[1], Z: p[2]},
	}
}

// Append adds a live sample to the recording.
func (r *Recording) Append(s Sample) {
	r.Samples = append(r.Samples, Record(s))
}

var encMode cbor.EncMode

func init() {
	var err error
	// Core deterministic encoding: the same recording always produces the
	// same bytes, which keeps fixtures diffable.
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("pose: CBOR encoder initialization failed: " + err.Error())
	}
}

func Encode(w io.Writer, r *Recording) error {
	if err := encMode.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("encode recording %q: %w", r.Name, err)
	}
	return nil
}

func Decode(rd io.Reader) (*Recording, error) {
	var r Recording
	if err := cbor.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode recording: %w", err)
	}
	return &r, nil
}

// Load reads a recording from a CBOR file.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording: %w", err)
	}
	defer f.Close()
	r, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Save writes r to path, replacing any existing file.
func Save(path string, r *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create recording: %w", err)
	}
	if err := Encode(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
