package geo

import "math"

const (
	// TwoPi is one full turn in radians.
	TwoPi = 2.0 * math.Pi

	threeHalfPi = 1.5 * math.Pi
)

// LonToRef returns the member of the 2π residue class of lon that lies in
// the half-open interval [ref - π, ref + π).
//
// The result is found with a single floating remainder and at most one
// shift, which is one full turn whenever ref is in [-π, π]. Negative zero
// is returned as positive zero.
func LonToRef(lon, ref float64) float64 {
	lon = math.Mod(lon, TwoPi)

	// fmod keeps the sign of lon, so the residue may sit outside the window
	// on either side
	if lon < ref-math.Pi || lon >= ref+math.Pi {
		lon -= TwoPi * math.Floor((lon-ref+math.Pi)/TwoPi)
	}

	if lon == 0 {
		return 0
	}

	return lon
}

// LatN folds lat into [-π/2, π/2].
//
// Angles between π/2 and 3π/2 (mod 2π) are past a pole and are reflected
// back as π - lat, so travelling over the north pole comes down the other
// side. Angles beyond 3π/2 are negative latitudes.
func LatN(lat float64) float64 {
	lat = math.Mod(lat, TwoPi)

	if lat < -math.Pi/2 {
		lat += TwoPi
	}

	switch {
	case lat > threeHalfPi:
		lat -= TwoPi
	case lat > math.Pi/2:
		lat = math.Pi - lat
	}

	if lat == 0 {
		return 0
	}

	return lat
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}
