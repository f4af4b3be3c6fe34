package adjust

import (
	"fmt"
	"math"

	"github.com/ironsheep/okshift/internal/okcolor"
)

// boundsTolerance absorbs floating point error from the forward transforms,
// e.g. pure sRGB red has an Okhsl saturation of 1 + 1e-10. It does not cover
// the larger overshoot of the Okhsl gamut approximation on some dark blues
// (see okcolor.OkhslFromRGB); those are clamped or rejected like any other
// out-of-range value.
const boundsTolerance = 1e-6

// Range is the canonical interval of a component. Both ends are included.
type Range struct {
	Min, Max float64
	Cyclic   bool // wraps instead of clamping (hue)
}

// Contains reports whether v lies inside r. Cyclic ranges contain every
// finite value.
func (r Range) Contains(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if r.Cyclic {
		return true
	}
	return v >= r.Min-boundsTolerance && v <= r.Max+boundsTolerance
}

// Clamp forces v to the nearest bound. Cyclic ranges wrap v instead.
func (r Range) Clamp(v float64) float64 {
	if r.Cyclic {
		return okcolor.NormalizeHue(v)
	}
	return math.Max(r.Min, math.Min(v, r.Max))
}

func (r Range) String() string {
	if r.Cyclic {
		return fmt.Sprintf("[%g, %g)", r.Min, r.Max)
	}
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}
