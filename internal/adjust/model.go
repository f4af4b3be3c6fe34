package adjust

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/okshift/internal/okcolor"
)

// Model selects the perceptual color model adjustments are made in.
type Model int

const (
	// Okhsl is hue/saturation/lightness fitted to the sRGB gamut.
	Okhsl Model = iota
	// Oklch is lightness/chroma/hue, the polar form of Oklab.
	Oklch
)

var modelNames = map[Model]string{
	Okhsl: "okhsl",
	Oklch: "oklch",
}

func (m Model) String() string {
	if name, ok := modelNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

func (m Model) valid() bool {
	_, ok := modelNames[m]
	return ok
}

// Components returns the model's components in their conventional order.
func (m Model) Components() []Component {
	switch m {
	case Okhsl:
		return []Component{Hue, Saturation, Lightness}
	case Oklch:
		return []Component{Lightness, Chroma, Hue}
	}
	return nil
}

// Has reports whether c is one of the model's components.
func (m Model) Has(c Component) bool {
	return m.index(c) >= 0
}

func (m Model) index(c Component) int {
	for i, mc := range m.Components() {
		if mc == c {
			return i
		}
	}
	return -1
}

// Range returns the canonical range of component c.
func (m Model) Range(c Component) Range {
	switch c {
	case Hue:
		return Range{Min: 0, Max: 360, Cyclic: true}
	case Chroma:
		return Range{Min: 0, Max: MaxChroma}
	default:
		return Range{Min: 0, Max: 1}
	}
}

// MaxChroma is the upper bound of Oklch chroma. Every sRGB color has a
// chroma below it.
const MaxChroma = 0.4

// Point is a color expressed in a Model. Values follow the order of
// Model.Components.
type Point struct {
	Model  Model
	Values [3]float64
}

// FromRGB converts a floating point sRGB color into the model.
func (m Model) FromRGB(c colorful.Color) Point {
	if m == Oklch {
		v := okcolor.OklchFromRGB(c)
		return Point{Model: m, Values: [3]float64{v.L, v.C, v.H}}
	}
	v := okcolor.OkhslFromRGB(c)
	return Point{Model: m, Values: [3]float64{v.H, v.S, v.L}}
}

// RGB converts p back to floating point sRGB. The result is not clamped.
func (p Point) RGB() colorful.Color {
	if p.Model == Oklch {
		return okcolor.Oklch{L: p.Values[0], C: p.Values[1], H: p.Values[2]}.RGB()
	}
	return okcolor.Okhsl{H: p.Values[0], S: p.Values[1], L: p.Values[2]}.RGB()
}

// Get returns the value of component c, or 0 if the model lacks it.
func (p Point) Get(c Component) float64 {
	if i := p.Model.index(c); i >= 0 {
		return p.Values[i]
	}
	return 0
}

// With returns a copy of p with component c set to v.
func (p Point) With(c Component, v float64) Point {
	if i := p.Model.index(c); i >= 0 {
		p.Values[i] = v
	}
	return p
}

func (p Point) String() string {
	if p.Model == Oklch {
		return okcolor.Oklch{L: p.Values[0], C: p.Values[1], H: p.Values[2]}.String()
	}
	return okcolor.Okhsl{H: p.Values[0], S: p.Values[1], L: p.Values[2]}.String()
}
