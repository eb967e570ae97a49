package proj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		line   string
		kind   Kind
		refLon float64
		refLat float64
	}{
		{"CylEqDist 0.5 0.25", CylEqDist, 0.5, 0.25},
		{"CylEqArea -1", CylEqArea, -1, 0},
		{"Mercator 2", Mercator, 2, 0},
		{"LambertConfConic -1.7 0.6", LambertConfConic, -1.7, 0.6},
		{"LambertConfConic 1 0", Mercator, 1, 0},
		{"LambertEqArea 0.1 -0.2", LambertEqArea, 0.1, -0.2},
		{"Orthographic 0 1.5", Orthographic, 0, 1.5},
		{"Stereographic 3 -1", Stereographic, 3, -1},
		{"  Mercator   0.5  trailing words", Mercator, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			p, ok := FromString(tt.line, unitEarth)
			require.True(t, ok)
			assert.Equal(t, tt.kind, p.Kind())

			lon, lat := p.Reference()
			assert.InDelta(t, tt.refLon, lon, 1e-12)
			assert.InDelta(t, tt.refLat, lat, 1e-12)
		})
	}
}

func TestFromStringRejects(t *testing.T) {
	for _, line := range []string{
		"",
		"Robinson 1 2",
		"CylEqDist 1",
		"Orthographic one two",
		"mercator 1",
		"Mercator",
	} {
		_, ok := FromString(line)
		assert.False(t, ok, line)
	}
}

func TestFromStringScaled(t *testing.T) {
	p, ok := FromStringScaled("Stereographic 90 45", math.Pi/180, unitEarth)
	require.True(t, ok)

	lon, lat := p.Reference()
	assert.InDelta(t, math.Pi/2, lon, 1e-12)
	assert.InDelta(t, math.Pi/4, lat, 1e-12)
}

func TestStringRoundTrip(t *testing.T) {
	for _, p := range allKinds(0.4, -0.3, unitEarth) {
		got, ok := FromString(p.String(), unitEarth)
		require.True(t, ok, p.String())
		assert.Equal(t, p, got)
	}
}
