package okcolor

import "math"

// maxSaturation returns the largest S = C/L that stays inside the sRGB gamut
// for the normalized hue direction (a, b), where a² + b² = 1.
func maxSaturation(a, b float64) float64 {
	var k0, k1, k2, k3, k4, wl, wm, ws float64

	// Pick the channel that clips first and use its polynomial fit.
	switch {
	case -1.88170328*a-0.80936493*b > 1:
		k0, k1, k2, k3, k4 = +1.19086277, +1.76576728, +0.59662641, +0.75515197, +0.56771245
		wl, wm, ws = +4.0767416621, -3.3077115913, +0.2309699292
	case 1.81444104*a-1.19445276*b > 1:
		k0, k1, k2, k3, k4 = +0.73956515, -0.45954404, +0.08285427, +0.12541070, +0.14503204
		wl, wm, ws = -1.2684380046, +2.6097574011, -0.3413193965
	default:
		k0, k1, k2, k3, k4 = +1.35733652, -0.00915799, -1.15130210, -0.50559606, +0.00692167
		wl, wm, ws = -0.0041960863, -0.7034186147, +1.7076147010
	}

	S := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	kl := +0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	// One Halley step refines the approximation.
	lp := 1 + S*kl
	mp := 1 + S*km
	sp := 1 + S*ks

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	ldS := 3 * kl * lp * lp
	mdS := 3 * km * mp * mp
	sdS := 3 * ks * sp * sp

	ldS2 := 6 * kl * kl * lp
	mdS2 := 6 * km * km * mp
	sdS2 := 6 * ks * ks * sp

	f := wl*l + wm*m + ws*s
	f1 := wl*ldS + wm*mdS + ws*sdS
	f2 := wl*ldS2 + wm*mdS2 + ws*sdS2

	return S - f*f1/(f1*f1-0.5*f*f2)
}

// cusp is the point of maximum chroma on the gamut boundary for one hue.
type cusp struct {
	L, C float64
}

func findCusp(a, b float64) cusp {
	S := maxSaturation(a, b)
	r, g, bl := oklabToLinear(1, S*a, S*b)
	L := math.Cbrt(1 / math.Max(math.Max(r, g), bl))
	return cusp{L: L, C: L * S}
}

// gamutIntersection finds t such that the line from (L0, 0) towards
// (L1, C1) leaves the sRGB gamut at (L0*(1-t) + t*L1, t*C1).
func gamutIntersection(a, b, L1, C1, L0 float64, cu cusp) float64 {
	if (L1-L0)*cu.C-(cu.L-L0)*C1 <= 0 {
		// Lower half: the triangle edge is exact.
		return cu.C * L0 / (C1*cu.L + cu.C*(L0-L1))
	}

	// Upper half: start from the triangle edge, then one Halley step
	// against each channel reaching 1.
	t := cu.C * (L0 - 1) / (C1*(cu.L-1) + cu.C*(L0-L1))

	dL := L1 - L0
	dC := C1

	kl := +0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	ldt := dL + dC*kl
	mdt := dL + dC*km
	sdt := dL + dC*ks

	L := L0*(1-t) + t*L1
	C := t * C1

	lp := L + C*kl
	mp := L + C*km
	sp := L + C*ks

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	dl := 3 * ldt * lp * lp
	dm := 3 * mdt * mp * mp
	ds := 3 * sdt * sp * sp

	dl2 := 6 * ldt * ldt * lp
	dm2 := 6 * mdt * mdt * mp
	ds2 := 6 * sdt * sdt * sp

	step := func(wl, wm, ws float64) float64 {
		v := wl*l + wm*m + ws*s - 1
		v1 := wl*dl + wm*dm + ws*ds
		v2 := wl*dl2 + wm*dm2 + ws*ds2
		u := v1 / (v1*v1 - 0.5*v*v2)
		if u < 0 {
			return math.MaxFloat64
		}
		return -v * u
	}

	tr := step(4.0767416621, -3.3077115913, 0.2309699292)
	tg := step(-1.2684380046, 2.6097574011, -0.3413193965)
	tb := step(-0.0041960863, -0.7034186147, 1.7076147010)

	return t + math.Min(tr, math.Min(tg, tb))
}

// stMid approximates the S and T slopes of a smoothed gamut triangle.
func stMid(a, b float64) (S, T float64) {
	S = 0.11516993 + 1/(+7.44778970+4.15901240*b+
		a*(-2.19557347+1.75198401*b+
			a*(-2.13704948-10.02301043*b+
				a*(-4.24894561+5.38770819*b+4.69891013*a))))

	T = 0.11239642 + 1/(+1.61320320-0.68124379*b+
		a*(+0.40370612+0.90148123*b+
			a*(-0.27087943+0.61223990*b+
				a*(+0.00299215-0.45399568*b-0.14661872*a))))
	return
}

// chromaScale holds the three reference chromas Okhsl saturation is
// interpolated through: C0 at s=0+, Cmid at s=0.8 and Cmax at s=1.
type chromaScale struct {
	C0, Cmid, Cmax float64
}

func chromaScaleFor(L, a, b float64) chromaScale {
	cu := findCusp(a, b)

	Cmax := gamutIntersection(a, b, L, 1, L, cu)
	stS, stT := cu.C/cu.L, cu.C/(1-cu.L)

	// Compensates for the curved upper edge of the gamut.
	k := Cmax / math.Min(L*stS, (1-L)*stT)

	midS, midT := stMid(a, b)
	ca := L * midS
	cb := (1 - L) * midT
	Cmid := 0.9 * k * math.Sqrt(math.Sqrt(1/(1/(ca*ca*ca*ca)+1/(cb*cb*cb*cb))))

	// C0 uses hue independent slopes.
	ca = L * 0.4
	cb = (1 - L) * 0.8
	C0 := math.Sqrt(1 / (1/(ca*ca) + 1/(cb*cb)))

	return chromaScale{C0: C0, Cmid: Cmid, Cmax: Cmax}
}
