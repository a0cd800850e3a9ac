// Package config loads the application config for the look demo.
//
// The file is YAML. Defaults are applied before decoding, so a file only
// needs the keys it changes:
//
//	look:
//	  hmdEnabled: false
//	platform:
//	  mobile: auto
//	pose:
//	  replay: recordings/sway.cbor
//	  loop: true
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vrscene/internal/look"
	"vrscene/internal/platform"
)

// ErrUnknownMobileMode is returned for a platform.mobile value other than
// auto, on or off.
var ErrUnknownMobileMode = errors.New("config: unknown mobile mode")

// MobileMode selects how the platform class is decided.
type MobileMode string

const (
	// MobileAuto classifies platform.userAgent if set, else the OS.
	MobileAuto MobileMode = "auto"
	MobileOn   MobileMode = "on"
	MobileOff  MobileMode = "off"
)

type Config struct {
	Look     look.Config    `yaml:"look"`
	Platform PlatformConfig `yaml:"platform"`
	Pose     PoseConfig     `yaml:"pose"`
	Window   WindowConfig   `yaml:"window"`

	// Scene is a JSON scene file. Empty means the built-in demo scene.
	Scene string `yaml:"scene"`
}

type PlatformConfig struct {
	Mobile    MobileMode `yaml:"mobile"`
	UserAgent string     `yaml:"userAgent"`
}

// PoseConfig selects the head pose source. With no replay file the camera
// has no tracking and only drag input moves it.
type PoseConfig struct {
	Replay string `yaml:"replay"`
	Loop   bool   `yaml:"loop"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"targetFps"`
	// Touch enables touch polling. Desktop raylib reports the mouse as a
	// touch point, so leave this off unless the device has a touch screen.
	Touch bool `yaml:"touch"`
}

func Default() Config {
	return Config{
		Look:     look.DefaultConfig(),
		Platform: PlatformConfig{Mobile: MobileAuto},
		Pose:     PoseConfig{Loop: true},
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "vrscene",
			TargetFPS: 60,
		},
	}
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Platform.Mobile {
	case MobileAuto, MobileOn, MobileOff:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMobileMode, c.Platform.Mobile)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// Forced returns the forced platform class, or nil when detection should
// decide.
func (p PlatformConfig) Forced() *bool {
	var mobile bool
	switch p.Mobile {
	case MobileOn:
		mobile = true
	case MobileOff:
		mobile = false
	default:
		if p.UserAgent == "" {
			return nil
		}
		mobile = platform.IsMobile(p.UserAgent)
	}
	return &mobile
}

// Apply pins platform detection to this config. Components read the
// platform class once when created, so call Apply before building a scene.
func (p PlatformConfig) Apply() {
	platform.Force(p.Forced())
}
