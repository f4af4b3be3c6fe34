package adjust

import (
	"fmt"
	"strings"
)

// Component is one coordinate of a perceptual color.
type Component int

const (
	Hue Component = iota
	Saturation
	Lightness
	Chroma
)

var componentNames = [...]struct{ short, long string }{
	Hue:        {"h", "hue"},
	Saturation: {"s", "saturation"},
	Lightness:  {"l", "lightness"},
	Chroma:     {"c", "chroma"},
}

func (c Component) String() string {
	if c >= 0 && int(c) < len(componentNames) {
		return componentNames[c].long
	}
	return fmt.Sprintf("Component(%d)", int(c))
}

// Short returns the one letter name used on the command line.
func (c Component) Short() string {
	if c >= 0 && int(c) < len(componentNames) {
		return componentNames[c].short
	}
	return "?"
}

// ParseComponent resolves a short ("h") or long ("hue") component name
// within model m. Names are case-insensitive.
func ParseComponent(m Model, s string) (Component, error) {
	for _, c := range m.Components() {
		if strings.EqualFold(s, c.Short()) || strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}

	valid := make([]string, 0, 3)
	for _, c := range m.Components() {
		valid = append(valid, c.Short())
	}
	return 0, fmt.Errorf("unknown %s component %q (want one of %s)", m, s, strings.Join(valid, ", "))
}
