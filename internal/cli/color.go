package cli

import (
	"errors"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
)

var _ pflag.Value = (*colorMode)(nil)

// colorMode is the value of the --color flag.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func (m *colorMode) String() string {
	return string(*m)
}

func (m *colorMode) Set(s string) error {
	switch mode := colorMode(strings.ToLower(s)); mode {
	case colorAuto, colorAlways, colorNever:
		*m = mode
		return nil
	}
	return errors.New("must be one of auto, always, never")
}

func (m *colorMode) Type() string {
	return "mode"
}

// profile returns the fixed profile for the mode, or false when the
// profile should be detected from the output.
func (m colorMode) profile() (termenv.Profile, bool) {
	switch m {
	case colorAlways:
		return termenv.TrueColor, true
	case colorNever:
		return termenv.Ascii, true
	}
	return termenv.Ascii, false
}
