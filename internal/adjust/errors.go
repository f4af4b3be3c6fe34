package adjust

import "fmt"

// ParseError reports input text that is not an sRGB hex color.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q into sRGB color: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// OutOfBoundsError reports a component that left its canonical range while
// clamping was disabled.
type OutOfBoundsError struct {
	Component Component
	Value     float64
	Range     Range
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("value out of bounds: %s %g not in %s", e.Component, e.Value, e.Range)
}

// ConfigError reports an adjustment that cannot be applied with the chosen
// model.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
