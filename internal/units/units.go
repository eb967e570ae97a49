// Package units converts angles between the unit a user works in and the
// radians used everywhere inside.
package units

import (
	"fmt"
	"math"
	"strings"
)

// Angle is an angular unit.
type Angle string

// Supported units.
const (
	Degrees Angle = "degrees"
	Radians Angle = "radians"
)

// Parse accepts "degrees", "radians" and their common abbreviations.
func Parse(s string) (Angle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "d", "deg", "degree", "degrees":
		return Degrees, nil
	case "r", "rad", "radian", "radians":
		return Radians, nil
	}
	return "", fmt.Errorf("unknown angle unit %q", s)
}

// Scale returns the factor that converts a in this unit to radians.
func (a Angle) Scale() float64 {
	if a == Radians {
		return 1.0
	}
	return math.Pi / 180.0
}

// ToRadians converts v from this unit.
func (a Angle) ToRadians(v float64) float64 {
	return v * a.Scale()
}

// FromRadians converts v to this unit.
func (a Angle) FromRadians(v float64) float64 {
	return v / a.Scale()
}
