package okcolor

import "math"

// linearToOklab converts linear sRGB to Oklab.
func linearToOklab(r, g, b float64) (L, A, B float64) {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	L = 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	A = 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	B = 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp
	return
}

// oklabToLinear converts Oklab to linear sRGB. The result is not clamped.
func oklabToLinear(L, A, B float64) (r, g, b float64) {
	lp := L + 0.3963377774*A + 0.2158037573*B
	mp := L - 0.1055613458*A - 0.0638541728*B
	sp := L - 0.0894841775*A - 1.2914855480*B

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	r = +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return
}

const (
	toeK1 = 0.206
	toeK2 = 0.03
	toeK3 = (1 + toeK1) / (1 + toeK2)
)

// toe maps Oklab lightness to the Okhsl lightness estimate.
func toe(x float64) float64 {
	y := toeK3*x - toeK1
	return 0.5 * (y + math.Sqrt(y*y+4*toeK2*toeK3*x))
}

// toeInv is the exact inverse of toe.
func toeInv(x float64) float64 {
	return (x*x + toeK1*x) / (toeK3 * (x + toeK2))
}

// NormalizeHue wraps a hue in degrees into [0,360).
func NormalizeHue(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	// -1e-15 + 360 rounds to 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// hueOf returns the hue angle of an Oklab (a, b) pair in degrees.
func hueOf(a, b float64) float64 {
	return NormalizeHue(math.Atan2(b, a) * 180 / math.Pi)
}
