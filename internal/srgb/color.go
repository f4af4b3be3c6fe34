package srgb

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an sRGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex is a parsed color together with the textual convention it was read in.
type Hex struct {
	Color
	Prefixed bool // input started with '#'
}

// Parse reads an sRGB color in hex notation.
//
// Parameters:
//   - text: "#RRGGBB", "#RGB", "RRGGBB" or "RGB" with hex digits in any case.
//
// Returns:
//   - Hex: The color and whether text carried a leading '#'.
//   - error: Non-nil if text has the wrong length or contains a non-hex digit.
func Parse(text string) (Hex, error) {
	digits, prefixed := strings.CutPrefix(text, "#")
	if len(digits) != 3 && len(digits) != 6 {
		return Hex{}, fmt.Errorf("invalid hex color %q: expected 3 or 6 hex digits, got %d", text, len(digits))
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return Hex{}, fmt.Errorf("invalid hex color %q: %w", text, err)
	}

	return Hex{Color: FromFloat(c), Prefixed: prefixed}, nil
}

// Float converts the color to floating point sRGB, each channel divided by 255.
func (c Color) Float() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromFloat converts a floating point sRGB color to 8 bits.
//
// Channels outside [0,1] saturate to 0 or 255, NaN channels become 0, and
// in-range values are rounded to the nearest step.
func FromFloat(c colorful.Color) Color {
	r, g, b := colorful.Color{R: finite(c.R), G: finite(c.G), B: finite(c.B)}.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Hex formats the color as lowercase "rrggbb", with a leading '#' if prefixed.
func (c Color) Hex(prefixed bool) string {
	if prefixed {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// String formats h in the convention it was parsed in.
func (h Hex) String() string {
	return h.Color.Hex(h.Prefixed)
}

// finite maps NaN to 0 so that clamping yields a defined channel.
func finite(v float64) float64 {
	if v != v {
		return 0
	}
	return v
}
