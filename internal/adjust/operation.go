package adjust

import (
	"fmt"
	"strings"
)

// Operation is how the configured value is combined with a component.
type Operation int

const (
	// Set replaces the component with the value.
	Set Operation = iota
	// Increase adds the value to the component.
	Increase
	// Decrease subtracts the value from the component.
	Decrease
)

var operationNames = [...]struct{ symbol, name string }{
	Set:      {"=", "set"},
	Increase: {"+", "increase"},
	Decrease: {"-", "decrease"},
}

func (o Operation) String() string {
	if o >= 0 && int(o) < len(operationNames) {
		return operationNames[o].name
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// Symbol returns "=", "+" or "-".
func (o Operation) Symbol() string {
	if o >= 0 && int(o) < len(operationNames) {
		return operationNames[o].symbol
	}
	return "?"
}

// ParseOperation accepts a symbol ("=", "+", "-") or a name ("set",
// "increase", "decrease").
func ParseOperation(s string) (Operation, error) {
	for i, n := range operationNames {
		if s == n.symbol || strings.EqualFold(s, n.name) {
			return Operation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown adjustment %q (want =, + or -)", s)
}

// Apply combines current with value.
func (o Operation) Apply(current, value float64) float64 {
	switch o {
	case Increase:
		return current + value
	case Decrease:
		return current - value
	default:
		return value
	}
}
