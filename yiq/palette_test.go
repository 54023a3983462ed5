package yiq

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexPalette(t *testing.T, hexes ...string) []YIQ {
	palette := make([]YIQ, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		require.NoErrorf(t, err, "Could not parse %s: %v", h, err)
		palette = append(palette, FromColor(c))
	}
	return palette
}

func TestClosest(t *testing.T) {
	palette := hexPalette(t, "#000000", "#ffffff", "#ff4500", "#00a368", "#2450a4", "#ffd635")

	tests := []struct {
		name string
		rgb  [3]uint8
		want int
	}{
		{"near black", [3]uint8{10, 12, 8}, 0},
		{"near white", [3]uint8{240, 250, 245}, 1},
		{"orange red", [3]uint8{250, 80, 10}, 2},
		{"green", [3]uint8{10, 150, 100}, 3},
		{"blue", [3]uint8{40, 70, 170}, 4},
		{"yellow", [3]uint8{255, 220, 60}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Closest(FromRGB(tt.rgb), palette))
		})
	}
}

func TestClosestExactMatch(t *testing.T) {
	palette := hexPalette(t, "#123456", "#654321")
	assert.Equal(t, 1, Closest(palette[1], palette))
}

func TestClosestTieGoesToFirst(t *testing.T) {
	c := YIQ{Y: 10}
	palette := []YIQ{{Y: 5}, {Y: 15}, {Y: 5}}
	assert.Equal(t, 0, Closest(c, palette))
}

func TestClosestEmpty(t *testing.T) {
	assert.Equal(t, -1, Closest(YIQ{}, nil))
}
