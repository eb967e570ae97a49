package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLonToRefWindow(t *testing.T) {
	for _, ref := range []float64{0, 1, -2.5, math.Pi, -math.Pi, 10} {
		for lon := -20.0; lon <= 20.0; lon += 0.37 {
			got := LonToRef(lon, ref)
			assert.GreaterOrEqual(t, got, ref-math.Pi, "lon=%v ref=%v", lon, ref)
			assert.Less(t, got, ref+math.Pi, "lon=%v ref=%v", lon, ref)

			// same residue class
			turns := (got - lon) / TwoPi
			assert.InDelta(t, math.Round(turns), turns, 1e-9)

			assert.InDelta(t, got, LonToRef(lon+TwoPi, ref), 1e-9)
		}
	}
}

func TestLonToRefUpperBoundIsExclusive(t *testing.T) {
	assert.Equal(t, -math.Pi, LonToRef(math.Pi, 0))
	assert.InDelta(t, -math.Pi, LonToRef(3*math.Pi, 0), 1e-12)
	assert.InDelta(t, math.Pi/2, LonToRef(-3*math.Pi/2, 0), 1e-12)
}

func TestLonToRefNegativeZero(t *testing.T) {
	got := LonToRef(math.Copysign(0, -1), 0)
	assert.False(t, math.Signbit(got))

	got = LonToRef(-TwoPi, 0)
	assert.False(t, math.Signbit(got))
	assert.Equal(t, 0.0, got)
}

func TestLatN(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		want float64
	}{
		{"equator", 0, 0},
		{"north", 0.5, 0.5},
		{"south", -0.5, -0.5},
		{"north pole", math.Pi / 2, math.Pi / 2},
		{"south pole", -math.Pi / 2, -math.Pi / 2},
		{"past north pole", math.Pi/2 + 0.1, math.Pi/2 - 0.1},
		{"past south pole", -math.Pi/2 - 0.1, -math.Pi/2 + 0.1},
		{"antipodal equator", math.Pi, 0},
		{"three quarter turn", 3 * math.Pi / 2, -math.Pi / 2},
		{"beyond three quarters", 3*math.Pi/2 + 0.2, -math.Pi/2 + 0.2},
		{"full turn plus", TwoPi + 0.3, 0.3},
		{"negative full turn", -TwoPi - 0.3, -0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LatN(tt.lat), 1e-12)
		})
	}
}

func TestLatNReflectsInsteadOfClamping(t *testing.T) {
	eps := 0.25
	got := LatN(math.Pi/2 + eps)
	assert.InDelta(t, math.Pi/2-eps, got, 1e-12)
	assert.NotEqual(t, math.Pi/2, got)
}

func TestLatNRange(t *testing.T) {
	for lat := -15.0; lat <= 15.0; lat += 0.013 {
		got := LatN(lat)
		assert.GreaterOrEqual(t, got, -math.Pi/2, "lat=%v", lat)
		assert.LessOrEqual(t, got, math.Pi/2, "lat=%v", lat)
		// same point on the meridian circle
		assert.InDelta(t, math.Sin(lat), math.Sin(got), 1e-9, "lat=%v", lat)
	}
}

func TestDegreeConversion(t *testing.T) {
	assert.InDelta(t, math.Pi, DegToRad(180), 1e-15)
	assert.InDelta(t, 90.0, RadToDeg(math.Pi/2), 1e-12)
}
