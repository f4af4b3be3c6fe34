package srgb

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		want         Color
		wantPrefixed bool
	}{
		{"long with prefix", "#ff8040", Color{255, 128, 64}, true},
		{"long without prefix", "ff8040", Color{255, 128, 64}, false},
		{"upper case", "#FF8040", Color{255, 128, 64}, true},
		{"mixed case", "Ff80a0", Color{255, 128, 160}, false},
		{"short with prefix", "#f80", Color{255, 136, 0}, true},
		{"short without prefix", "fff", Color{255, 255, 255}, false},
		{"black", "#000000", Color{0, 0, 0}, true},
		{"short black", "000", Color{0, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Color)
			assert.Equal(t, tt.wantPrefixed, got.Prefixed)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"lone hash", "#"},
		{"bad digits", "zzz"},
		{"too short", "#12"},
		{"four digits", "#1234"},
		{"five digits", "12345"},
		{"with alpha", "#ff000080"},
		{"double hash", "##fff"},
		{"leading space", " #fff"},
		{"trailing space", "#fff "},
		{"bad digit in long form", "#12345g"},
		{"sign", "+ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestFloat(t *testing.T) {
	c := Color{255, 128, 0}.Float()
	assert.Equal(t, 1.0, c.R)
	assert.InDelta(t, 128.0/255.0, c.G, 1e-12)
	assert.Equal(t, 0.0, c.B)
}

func TestFloatRoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		c := Color{uint8(v), uint8(255 - v), uint8(v / 2)}
		assert.Equal(t, c, FromFloat(c.Float()), "channel value %d", v)
	}
}

func TestFromFloat_Saturates(t *testing.T) {
	tests := []struct {
		name string
		in   colorful.Color
		want Color
	}{
		{"in range", colorful.Color{R: 0.5, G: 0.25, B: 1}, Color{128, 64, 255}},
		{"slightly above one", colorful.Color{R: 1.0000001, G: 1, B: 1}, Color{255, 255, 255}},
		{"slightly below zero", colorful.Color{R: -0.0000001, G: 0, B: 0}, Color{0, 0, 0}},
		{"far out of gamut", colorful.Color{R: 3, G: -2, B: 0.5}, Color{255, 0, 128}},
		{"not a number", colorful.Color{R: math.NaN(), G: 1, B: 0}, Color{0, 255, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromFloat(tt.in))
		})
	}
}

func TestHexString(t *testing.T) {
	assert.Equal(t, "#ff8040", Color{255, 128, 64}.Hex(true))
	assert.Equal(t, "ff8040", Color{255, 128, 64}.Hex(false))
	assert.Equal(t, "#0a0b0c", Color{10, 11, 12}.Hex(true))

	// Shorthand input is written back in long form.
	for in, want := range map[string]string{"#FFF": "#ffffff", "f80": "ff8800"} {
		h, err := Parse(in)
		require.NoError(t, err)
		assert.Equal(t, want, h.String())
	}
}
