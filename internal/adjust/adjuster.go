package adjust

import (
	"fmt"
	"math"

	"github.com/ironsheep/okshift/internal/okcolor"
	"github.com/ironsheep/okshift/internal/srgb"
)

// Config is an adjustment applied identically to every color.
type Config struct {
	Model     Model
	Component Component
	Operation Operation
	Value     float64 // degrees for Hue, a plain number otherwise
	NoClamp   bool    // reject out-of-range results instead of clamping
}

// Validate checks that c can be applied.
func (c Config) Validate() error {
	if !c.Model.valid() {
		return &ConfigError{Field: "model", Reason: fmt.Sprintf("unknown model %d", int(c.Model))}
	}
	if !c.Model.Has(c.Component) {
		return &ConfigError{Field: "component", Reason: fmt.Sprintf("%s has no %s component", c.Model, c.Component)}
	}
	if c.Operation < Set || c.Operation > Decrease {
		return &ConfigError{Field: "adjustment", Reason: fmt.Sprintf("unknown operation %d", int(c.Operation))}
	}
	if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
		return &ConfigError{Field: "value", Reason: fmt.Sprintf("%v is not a finite number", c.Value)}
	}
	return nil
}

func (c Config) String() string {
	s := fmt.Sprintf("%s %s %s %g", c.Model, c.Component.Short(), c.Operation.Symbol(), c.Value)
	if c.NoClamp {
		s += " (no clamp)"
	}
	return s
}

// Adjuster applies one Config to colors.
type Adjuster struct {
	cfg Config
}

// New validates cfg and returns an Adjuster for it.
func New(cfg Config) (*Adjuster, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Adjuster{cfg: cfg}, nil
}

// Config returns the configuration a was built with.
func (a *Adjuster) Config() Config {
	return a.cfg
}

// Adjust parses input as an sRGB hex color, applies the adjustment and
// formats the result in the same convention (with or without '#').
//
// Returns:
//   - string: The adjusted color, e.g. "#c04060".
//   - error: *ParseError if input is not a hex color, *OutOfBoundsError if
//     clamping is disabled and the result leaves its range.
func (a *Adjuster) Adjust(input string) (string, error) {
	hex, err := srgb.Parse(input)
	if err != nil {
		return "", &ParseError{Input: input, Err: err}
	}

	out, err := a.AdjustColor(hex.Color)
	if err != nil {
		return "", err
	}

	return out.Hex(hex.Prefixed), nil
}

// AdjustColor applies the adjustment to an 8-bit color.
func (a *Adjuster) AdjustColor(c srgb.Color) (srgb.Color, error) {
	p, err := a.AdjustPoint(a.cfg.Model.FromRGB(c.Float()))
	if err != nil {
		return srgb.Color{}, err
	}
	return srgb.FromFloat(p.RGB()), nil
}

// AdjustPoint applies the operation to p and resolves out-of-range
// components according to the clamp policy.
func (a *Adjuster) AdjustPoint(p Point) (Point, error) {
	comp := a.cfg.Component
	v := a.cfg.Operation.Apply(p.Get(comp), a.cfg.Value)
	if comp == Hue {
		v = okcolor.NormalizeHue(v)
	}
	p = p.With(comp, v)

	for i, c := range p.Model.Components() {
		r := p.Model.Range(c)
		if r.Cyclic {
			continue
		}
		if a.cfg.NoClamp {
			if !r.Contains(p.Values[i]) {
				return Point{}, &OutOfBoundsError{Component: c, Value: p.Values[i], Range: r}
			}
			continue
		}
		p.Values[i] = r.Clamp(p.Values[i])
	}

	return p, nil
}
