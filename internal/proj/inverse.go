package proj

import (
	"math"

	"github.com/woozymasta/geog/internal/geo"
)

// XYToLonLat returns the geographic point whose image is (x, y). ok is false
// when the map point lies outside the projected region. Longitudes are
// placed relative to the reference longitude.
func (p Projection) XYToLonLat(x, y float64) (lon, lat float64, ok bool) {
	if p.rotation != 0 {
		x, y = x*p.cosr-y*p.sinr, x*p.sinr+y*p.cosr
	}

	r0 := p.earth.Radius

	switch p.kind {
	case CylEqDist:
		lon = geo.LonToRef(x/p.refPt.cosLat/r0, p.refPt.lon)
		lat = y / r0
		return lon, lat, true

	case CylEqArea:
		r := y / r0
		if math.Abs(r) > 1.0 {
			return 0, 0, false
		}
		return geo.LonToRef(x/r0, p.refLon), math.Asin(r), true

	case Mercator:
		lon = geo.LonToRef(x/r0, p.refLon)
		lat = 2.0 * (math.Atan(math.Exp(y/r0)) - math.Pi/4)
		return lon, lat, true

	case LambertConfConic:
		return p.lcc.inverse(x, y)

	case LambertEqArea:
		rho := math.Hypot(x, y)
		if rho == 0.0 {
			return p.refPt.lon, p.refPt.lat, true
		}
		if rho > 2.0*r0 {
			return 0, 0, false
		}
		return p.refPt.azimuthalInverse(x, y, rho, 2.0*math.Asin(rho/(2.0*r0)))

	case Orthographic:
		r := math.Hypot(x, y)
		if r == 0.0 {
			return p.refPt.lon, p.refPt.lat, true
		}
		if r/r0 > 1.0 {
			return 0, 0, false
		}
		return p.refPt.azimuthalInverse(x, y, r, math.Asin(r/r0))

	case Stereographic:
		rho := math.Hypot(x, y)
		if rho == 0.0 {
			return p.refPt.lon, p.refPt.lat, true
		}
		return p.refPt.azimuthalInverse(x, y, rho, 2.0*math.Atan2(rho, 2.0*r0))
	}

	return 0, 0, false
}

// azimuthalInverse finishes the inverse of an azimuthal projection given the
// polar radius rho of (x, y) and the angular distance c from the center.
func (rp refPoint) azimuthalInverse(x, y, rho, c float64) (lon, lat float64, ok bool) {
	sinC, cosC := math.Sincos(c)

	ord := cosC*rp.sinLat + y*sinC*rp.cosLat/rho
	if math.Abs(ord) > 1.0 {
		return 0, 0, false
	}

	lon = rp.lon + math.Atan2(x*sinC, rho*rp.cosLat*cosC-y*rp.sinLat*sinC)
	return geo.LonToRef(lon, rp.lon), math.Asin(ord), true
}

func (c conic) inverse(x, y float64) (lon, lat float64, ok bool) {
	// for a southern cone every term flips sign, Snyder p. 107
	dx, dy := x, c.rho0-y
	if c.n < 0.0 {
		dx, dy = -dx, -dy
	}

	rho := math.Hypot(dx, dy)
	if rho == 0.0 {
		// apex of the cone
		return c.refLon, math.Copysign(math.Pi/2, c.n), true
	}
	if c.n < 0.0 {
		rho = -rho
	}

	theta := math.Atan2(dx, dy)
	lon = geo.LonToRef(c.refLon+theta/c.n, c.refLon)
	lat = 2.0*math.Atan(math.Pow(c.rf/rho, 1.0/c.n)) - math.Pi/2

	return lon, lat, true
}
