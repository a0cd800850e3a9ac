package pose

// Replay plays a Recording back one sample per Update. Before the first
// Update it reports NoTracking. A finished non-looping replay holds its
// last sample.
type Replay struct {
	rec      *Recording
	loop     bool
	standing bool
	index    int
}

func NewReplay(rec *Recording, loop bool) (*Replay, error) {
	if rec == nil || len(rec.Samples) == 0 {
		return nil, ErrEmptyRecording
	}
	return &Replay{rec: rec, loop: loop, standing: true, index: -1}, nil
}

func (r *Replay) SetStanding(standing bool) { r.standing = standing }

func (r *Replay) Update() {
	next := r.index + 1
	if next >= len(r.rec.Samples) {
		if !r.loop {
			return
		}
		next = 0
	}
	r.index = next
}

func (r *Replay) Pose() Sample {
	if r.index < 0 {
		return NoTracking()
	}
	s := r.rec.Samples[r.index].Sample()
	if r.standing {
		s.Position.Y += r.rec.StandingHeight
	}
	return s
}

// Frame returns the index of the current sample, -1 before the first Update.
func (r *Replay) Frame() int { return r.index }

// Rewind restarts playback from the beginning.
func (r *Replay) Rewind() { r.index = -1 }
