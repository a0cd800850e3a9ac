// lookdemo opens a raylib window on a scene with look-controls. Drag with
// the mouse (or one finger with --touch) to look around. A pose recording
// given with --replay stands in for a headset once motion access is
// granted; press V to toggle VR mode and watch the fusion mode change.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"vrscene/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath, scenePath, replayPath, mobile, logLevel string
	var touch, noLoop bool

	flagSet := pflag.NewFlagSet("lookdemo", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "YAML config file, reloaded on change")
	flagSet.StringVar(&scenePath, "scene", "", "JSON scene file (default: built-in demo scene)")
	flagSet.StringVar(&replayPath, "replay", "", "CBOR pose recording used as the head pose source")
	flagSet.BoolVar(&noLoop, "no-loop", false, "stop the replay at its last sample")
	flagSet.StringVar(&mobile, "mobile", "", "platform class: auto, on or off")
	flagSet.BoolVar(&touch, "touch", false, "poll touch input")
	flagSet.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if configPath != "" {
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	// Flags override the file.
	if flagSet.Changed("scene") {
		cfg.Scene = scenePath
	}
	if flagSet.Changed("replay") {
		cfg.Pose.Replay = replayPath
	}
	if flagSet.Changed("no-loop") {
		cfg.Pose.Loop = !noLoop
	}
	if flagSet.Changed("mobile") {
		cfg.Platform.Mobile = config.MobileMode(mobile)
	}
	if flagSet.Changed("touch") {
		cfg.Window.Touch = touch
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	d, err := newDemo(cfg, configPath, logger)
	if err != nil {
		return err
	}
	return d.run()
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}
	return level, nil
}
