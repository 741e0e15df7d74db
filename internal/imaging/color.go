package imaging

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/cinescope/internal/scope"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorDescription presents an 8-bit color the way a colorist reads it off a
// picker: hex code and HSL alongside the raw components.
type ColorDescription struct {
	Hex string    `json:"hex"` // "#RRGGBB"
	RGB scope.RGB `json:"rgb"`
	HSL HSLColor  `json:"hsl"`
}

// DescribeColor converts an 8-bit RGB triple into hex and HSL notation.
// HSL components are truncated to whole degrees and percentages.
func DescribeColor(c scope.RGB) ColorDescription {
	col := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	h, s, l := col.Hsl()

	return ColorDescription{
		Hex: strings.ToUpper(col.Hex()),
		RGB: c,
		HSL: HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}
}

// ParseHexColor parses "#RRGGBB" (or the short "#RGB" form) into an 8-bit
// triple.
func ParseHexColor(s string) (scope.RGB, error) {
	col, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return scope.RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return scope.RGB{R: r, G: g, B: b}, nil
}
