package look

import "vrscene/internal/engine"

// Config is the look-controls attribute schema.
type Config struct {
	// Enabled is the master switch. A disabled component neither ticks nor
	// accepts drag input.
	Enabled bool `yaml:"enabled" json:"enabled"`
	// HMDEnabled permits head-pose fusion. Turning it off resets the drag
	// accumulators.
	HMDEnabled bool `yaml:"hmdEnabled" json:"hmdEnabled"`
	// Standing is passed through to the pose source's reference frame.
	Standing bool `yaml:"standing" json:"standing"`
}

func DefaultConfig() Config {
	return Config{Enabled: true, HMDEnabled: true, Standing: true}
}

// ConfigFromProps overlays props onto the defaults.
func ConfigFromProps(props map[string]any) Config {
	d := DefaultConfig()
	return Config{
		Enabled:    engine.PropBool(props, "enabled", d.Enabled),
		HMDEnabled: engine.PropBool(props, "hmdEnabled", d.HMDEnabled),
		Standing:   engine.PropBool(props, "standing", d.Standing),
	}
}

func (c Config) Props() map[string]any {
	return map[string]any{
		"enabled":    c.Enabled,
		"hmdEnabled": c.HMDEnabled,
		"standing":   c.Standing,
	}
}

// With returns c with one named property replaced. ok is false for unknown
// names or non-bool values.
func (c Config) With(name string, value any) (Config, bool) {
	v, isBool := value.(bool)
	if !isBool {
		return c, false
	}
	switch name {
	case "enabled":
		c.Enabled = v
	case "hmdEnabled":
		c.HMDEnabled = v
	case "standing":
		c.Standing = v
	default:
		return c, false
	}
	return c, true
}
