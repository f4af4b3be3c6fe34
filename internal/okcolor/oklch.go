package okcolor

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Oklch is a color in the Oklch model, the polar form of Oklab.
type Oklch struct {
	L float64 // Lightness, 0 (black) to 1 (white)
	C float64 // Chroma, 0 (gray) to about 0.32 for the most vivid sRGB blue
	H float64 // Hue in degrees
}

// OklchFromRGB converts an sRGB color to Oklch.
//
// The Oklab step goes straight from linear sRGB rather than through XYZ, so
// grays come out with zero chroma and white with lightness 1.
func OklchFromRGB(c colorful.Color) Oklch {
	l, ch, h := colorful.OkLabToOkLch(linearToOklab(c.LinearRgb()))
	if ch < achromatic {
		return Oklch{L: l, C: 0, H: 0}
	}
	return Oklch{L: l, C: ch, H: NormalizeHue(h)}
}

// RGB converts c back to sRGB. Colors outside the sRGB gamut produce
// channels outside [0,1].
func (c Oklch) RGB() colorful.Color {
	return colorful.LinearRgb(oklabToLinear(colorful.OkLchToOkLab(c.L, c.C, c.H)))
}

func (c Oklch) String() string {
	return fmt.Sprintf("oklch(%.4f, %.4f, %.2f)", c.L, c.C, c.H)
}
