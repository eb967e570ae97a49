package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for in, want := range map[string]Angle{
		"":         Degrees,
		"deg":      Degrees,
		" Degrees": Degrees,
		"rad":      Radians,
		"RADIANS":  Radians,
	} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Parse("grads")
	assert.Error(t, err)
}

func TestConversion(t *testing.T) {
	assert.InDelta(t, math.Pi/2, Degrees.ToRadians(90), 1e-15)
	assert.InDelta(t, 180.0, Degrees.FromRadians(math.Pi), 1e-12)
	assert.Equal(t, 1.5, Radians.ToRadians(1.5))
	assert.Equal(t, 1.5, Radians.FromRadians(1.5))
}
