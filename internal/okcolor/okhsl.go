package okcolor

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Okhsl is a color in the Okhsl model.
type Okhsl struct {
	H float64 // Hue in degrees
	S float64 // Saturation, 0 (gray) to 1 (edge of the sRGB gamut)
	L float64 // Lightness, 0 (black) to 1 (white)
}

// achromatic is the Oklab chroma below which a color is treated as gray.
// The hue of such a color is numerically meaningless.
const achromatic = 1e-6

// Okhsl saturation reaches Cmid at this value.
const (
	okhslMid    = 0.8
	okhslMidInv = 1.25
)

// OkhslFromRGB converts an sRGB color to Okhsl.
//
// Gray inputs (including black and white) get hue 0 and saturation 0.
//
// The gamut boundary is an approximation, so saturation can land slightly
// above 1 for colors on the sRGB edge: about 1e-10 for pure red and up to
// about 1.004 for dark saturated blues such as 000328.
func OkhslFromRGB(c colorful.Color) Okhsl {
	L, A, B := linearToOklab(c.LinearRgb())

	C := math.Hypot(A, B)
	l := toe(L)
	if C < achromatic || L <= 0 || L >= 1 {
		return Okhsl{H: 0, S: 0, L: l}
	}

	a, b := A/C, B/C
	cs := chromaScaleFor(L, a, b)

	var s float64
	if C < cs.Cmid {
		k1 := okhslMid * cs.C0
		k2 := 1 - k1/cs.Cmid
		t := C / (k1 + k2*C)
		s = t * okhslMid
	} else {
		k0 := cs.Cmid
		k1 := (1 - okhslMid) * cs.Cmid * cs.Cmid * okhslMidInv * okhslMidInv / cs.C0
		k2 := 1 - k1/(cs.Cmax-cs.Cmid)
		t := (C - k0) / (k1 + k2*(C-k0))
		s = okhslMid + (1-okhslMid)*t
	}

	return Okhsl{H: hueOf(a, b), S: s, L: l}
}

// RGB converts c back to sRGB.
//
// For S and L inside [0,1] the result is inside the gamut up to rounding
// error. Lightness at or past either end gives black or white; saturation
// outside [0,1] is extrapolated and the result is not clamped.
func (c Okhsl) RGB() colorful.Color {
	if c.L >= 1 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	if c.L <= 0 {
		return colorful.Color{}
	}

	rad := c.H * math.Pi / 180
	a, b := math.Cos(rad), math.Sin(rad)
	L := toeInv(c.L)

	cs := chromaScaleFor(L, a, b)

	var C float64
	if c.S < okhslMid {
		t := okhslMidInv * c.S
		k1 := okhslMid * cs.C0
		k2 := 1 - k1/cs.Cmid
		C = t * k1 / (1 - k2*t)
	} else {
		t := (c.S - okhslMid) / (1 - okhslMid)
		k0 := cs.Cmid
		k1 := (1 - okhslMid) * cs.Cmid * cs.Cmid * okhslMidInv * okhslMidInv / cs.C0
		k2 := 1 - k1/(cs.Cmax-cs.Cmid)
		C = k0 + t*k1/(1-k2*t)
	}

	return colorful.LinearRgb(oklabToLinear(L, C*a, C*b))
}

func (c Okhsl) String() string {
	return fmt.Sprintf("okhsl(%.2f, %.4f, %.4f)", c.H, c.S, c.L)
}
