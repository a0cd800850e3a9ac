package components

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var colorByName = map[string]rl.Color{
	"red":       rl.Red,
	"blue":      rl.Blue,
	"green":     rl.Green,
	"purple":    rl.Purple,
	"orange":    rl.Orange,
	"yellow":    rl.Yellow,
	"pink":      rl.Pink,
	"skyblue":   rl.SkyBlue,
	"lime":      rl.Lime,
	"magenta":   rl.Magenta,
	"white":     rl.White,
	"lightgray": rl.LightGray,
	"gray":      rl.Gray,
	"darkgray":  rl.DarkGray,
	"black":     rl.Black,
	"brown":     rl.Brown,
	"beige":     rl.Beige,
	"maroon":    rl.Maroon,
	"gold":      rl.Gold,
}

// ParseColor accepts a raylib color name (case-insensitive) or "#rrggbb".
func ParseColor(s string) (rl.Color, error) {
	if c, ok := colorByName[strings.ToLower(s)]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return rl.Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255), nil
	}
	return rl.Color{}, fmt.Errorf("unknown color %q", s)
}

// FormatColor is the inverse of ParseColor for opaque colors.
func FormatColor(c rl.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func mustColor(s string) rl.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
