package geo

import "math"

// Distance returns the great circle distance in radians between two points
// on a unit sphere, in [0, π]. It uses the haversine formula.
func Distance(lon1, lat1, lon2, lat2 float64) float64 {
	sinDLat2 := math.Sin(0.5 * (lat2 - lat1))
	sinDLon2 := math.Sin(0.5 * (lon2 - lon1))

	a := math.Sqrt(sinDLat2*sinDLat2 + math.Cos(lat1)*math.Cos(lat2)*sinDLon2*sinDLon2)

	// rounding can push a past 1 for antipodal points
	if a > 1.0 {
		return math.Pi
	}

	return 2.0 * math.Asin(a)
}

// Azimuth returns the initial bearing in radians, clockwise from north,
// from point 1 toward point 2. The result is in (-π, π].
func Azimuth(lon1, lat1, lon2, lat2 float64) float64 {
	sinLat1, cosLat1 := math.Sincos(lat1)
	sinLat2, cosLat2 := math.Sincos(lat2)
	sinDLon, cosDLon := math.Sincos(lon2 - lon1)

	return math.Atan2(sinDLon*cosLat2, cosLat1*sinLat2-sinLat1*cosLat2*cosDLon)
}

// Step solves the direct problem on a unit sphere. Starting at (lon0, lat0)
// and travelling dist radians with initial bearing dirn, it returns the
// destination. The longitude is normalised relative to 0.
//
// Nothing is divided by sin(dirn) or cos(lat0), so due north or south
// travel and departures from a pole stay well defined.
func Step(lon0, lat0, dirn, dist float64) (lon, lat float64) {
	sinLat0, cosLat0 := math.Sincos(lat0)
	sinDist, cosDist := math.Sincos(dist)
	sinDirn, cosDirn := math.Sincos(dirn)

	// sin(lat) = sin(lat0)cos(dist) + cos(lat0)sin(dist)cos(dirn), written
	// as the average of the angle sum and difference sines
	sinLat := 0.5 * (math.Sin(lat0+dist)*(1.0+cosDirn) + math.Sin(lat0-dist)*(1.0-cosDirn))
	if sinLat > 1.0 {
		sinLat = 1.0
	} else if sinLat < -1.0 {
		sinLat = -1.0
	}
	lat = math.Asin(sinLat)

	// east and north components of the destination in the frame of the
	// starting meridian, both free of the cos(lat0) factor
	east := sinDist * sinDirn
	north := cosLat0*cosDist - sinLat0*sinDist*cosDirn
	lon = LonToRef(lon0+math.Atan2(east, north), 0.0)

	return lon, lat
}
