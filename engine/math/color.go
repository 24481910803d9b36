package math

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB colour with components in [0, 1].
type Color = colorful.Color

var (
	White  = Color{R: 1, G: 1, B: 1}
	Black  = Color{R: 0, G: 0, B: 0}
	Red    = Color{R: 1, G: 0, B: 0}
	Green  = Color{R: 0, G: 1, B: 0}
	Blue   = Color{R: 0, G: 0, B: 1}
	Yellow = Color{R: 1, G: 1, B: 0}
)

// NewColor builds a colour from components in [0, 1].
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHex parses "#rrggbb" or "#rgb".
func ParseHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return c, nil
}

// LerpColor blends a towards b in RGB space.
func LerpColor(a, b Color, t float64) Color {
	return a.BlendRgb(b, t)
}
