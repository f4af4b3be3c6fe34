package adjust

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"chroma on okhsl", Config{Model: Okhsl, Component: Chroma}, "component"},
		{"saturation on oklch", Config{Model: Oklch, Component: Saturation}, "component"},
		{"unknown model", Config{Model: Model(7), Component: Hue}, "model"},
		{"unknown component", Config{Model: Okhsl, Component: Component(9)}, "component"},
		{"unknown operation", Config{Model: Okhsl, Component: Hue, Operation: Operation(5)}, "adjustment"},
		{"nan value", Config{Model: Okhsl, Component: Hue, Value: math.NaN()}, "value"},
		{"infinite value", Config{Model: Oklch, Component: Lightness, Value: math.Inf(1)}, "value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.cfg)
			assert.Nil(t, a)

			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr), "want *ConfigError, got %T: %v", err, err)
			assert.Equal(t, tt.field, cerr.Field)
		})
	}
}

func TestParseComponent(t *testing.T) {
	tests := []struct {
		model Model
		in    string
		want  Component
	}{
		{Okhsl, "h", Hue},
		{Okhsl, "s", Saturation},
		{Okhsl, "l", Lightness},
		{Okhsl, "Hue", Hue},
		{Okhsl, "SATURATION", Saturation},
		{Oklch, "l", Lightness},
		{Oklch, "c", Chroma},
		{Oklch, "h", Hue},
		{Oklch, "chroma", Chroma},
	}

	for _, tt := range tests {
		t.Run(tt.model.String()+"/"+tt.in, func(t *testing.T) {
			got, err := ParseComponent(tt.model, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseComponent(Okhsl, "c")
	assert.ErrorContains(t, err, "h, s, l")
	_, err = ParseComponent(Oklch, "s")
	assert.ErrorContains(t, err, "l, c, h")
	_, err = ParseComponent(Oklch, "")
	assert.Error(t, err)
}

func TestParseOperation(t *testing.T) {
	tests := []struct {
		in   string
		want Operation
	}{
		{"=", Set},
		{"+", Increase},
		{"-", Decrease},
		{"set", Set},
		{"Increase", Increase},
		{"decrease", Decrease},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOperation(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "*", "++", "add"} {
		_, err := ParseOperation(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestOperationApply(t *testing.T) {
	assert.Equal(t, 0.3, Set.Apply(0.9, 0.3))
	assert.InDelta(t, 1.2, Increase.Apply(0.9, 0.3), 1e-12)
	assert.InDelta(t, 0.6, Decrease.Apply(0.9, 0.3), 1e-12)
	assert.InDelta(t, -0.1, Decrease.Apply(0.2, 0.3), 1e-12)
}

func TestModelComponents(t *testing.T) {
	assert.Equal(t, []Component{Hue, Saturation, Lightness}, Okhsl.Components())
	assert.Equal(t, []Component{Lightness, Chroma, Hue}, Oklch.Components())
	assert.True(t, Oklch.Has(Chroma))
	assert.False(t, Okhsl.Has(Chroma))
	assert.Nil(t, Model(3).Components())
}

func TestRange(t *testing.T) {
	r := Okhsl.Range(Lightness)
	assert.True(t, r.Contains(0))
	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(1+1e-9))
	assert.False(t, r.Contains(1.0001))
	assert.False(t, r.Contains(-0.0001))
	assert.False(t, r.Contains(math.NaN()))
	assert.Equal(t, 1.0, r.Clamp(7))
	assert.Equal(t, 0.0, r.Clamp(-7))
	assert.Equal(t, 0.25, r.Clamp(0.25))

	h := Oklch.Range(Hue)
	assert.True(t, h.Contains(-720))
	assert.InDelta(t, 350, h.Clamp(-10), 1e-9)

	assert.Equal(t, MaxChroma, Oklch.Range(Chroma).Max)
	assert.Equal(t, "[0, 0.4]", Oklch.Range(Chroma).String())
	assert.Equal(t, "[0, 360)", Okhsl.Range(Hue).String())
}

func TestConfigString(t *testing.T) {
	cfg := Config{Model: Oklch, Component: Chroma, Operation: Decrease, Value: 0.05, NoClamp: true}
	assert.Equal(t, "oklch c - 0.05 (no clamp)", cfg.String())
	assert.Equal(t, "okhsl h = 120", Config{Model: Okhsl, Component: Hue, Value: 120}.String())
}
