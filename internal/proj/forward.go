package proj

import (
	"math"

	"github.com/woozymasta/geog/internal/geo"
)

// MercatorLimit is the largest absolute latitude Mercator will project,
// 80 degrees.
const MercatorLimit = math.Pi / 2 * 8.0 / 9.0

// LonLatToXY projects a geographic point to the map plane. The result is in
// the linear unit of the projection's earth radius. ok is false when the
// point has no image, e.g. it lies on the far hemisphere of an azimuthal
// projection or beyond the Mercator limit.
func (p Projection) LonLatToXY(lon, lat float64) (x, y float64, ok bool) {
	r0 := p.earth.Radius

	switch p.kind {
	case CylEqDist:
		lon = geo.LonToRef(lon, p.refPt.lon)
		x = lon * p.refPt.cosLat * r0
		y = lat * r0

	case CylEqArea:
		lon = geo.LonToRef(lon, p.refLon)
		x = r0 * lon
		y = r0 * math.Sin(lat)

	case Mercator:
		if math.Abs(lat) > MercatorLimit {
			return 0, 0, false
		}
		lon = geo.LonToRef(lon, p.refLon)
		x = r0 * lon
		y = r0 * math.Log(math.Tan(math.Pi/4+0.5*lat))

	case LambertConfConic:
		c := p.lcc
		var rho float64

		lon = geo.LonToRef(lon, c.refLon)
		switch lat {
		case math.Pi / 2:
			// the apex of a southern cone is the south pole
			if c.refLat < 0.0 {
				return 0, 0, false
			}
			rho = 0.0
		case -math.Pi / 2:
			if c.refLat > 0.0 {
				return 0, 0, false
			}
			rho = 0.0
		default:
			rho = c.rf / math.Pow(math.Tan(math.Pi/4+0.5*lat), c.n)
		}

		sinTheta, cosTheta := math.Sincos(c.n * (lon - c.refLon))
		x = rho * sinTheta
		y = c.rho0 - rho*cosTheta

	case LambertEqArea:
		rp := p.refPt
		if geo.Distance(rp.lon, rp.lat, lon, lat) > math.Pi/2 {
			return 0, 0, false
		}
		sinLat, cosLat := math.Sincos(lat)
		sinDLon, cosDLon := math.Sincos(lon - rp.lon)

		k := math.Sqrt(2.0 / (1.0 + rp.sinLat*sinLat + rp.cosLat*cosLat*cosDLon))
		x = r0 * k * cosLat * sinDLon
		y = r0 * k * (rp.cosLat*sinLat - rp.sinLat*cosLat*cosDLon)

	case Orthographic:
		rp := p.refPt
		if geo.Distance(rp.lon, rp.lat, lon, lat) > math.Pi/2 {
			return 0, 0, false
		}
		sinLat, cosLat := math.Sincos(lat)
		sinDLon, cosDLon := math.Sincos(lon - rp.lon)

		x = r0 * cosLat * sinDLon
		y = r0 * (rp.cosLat*sinLat - rp.sinLat*cosLat*cosDLon)

	case Stereographic:
		rp := p.refPt
		// only the near hemisphere, by convention
		if geo.Distance(rp.lon, rp.lat, lon, lat) > math.Pi/2 {
			return 0, 0, false
		}
		sinLat, cosLat := math.Sincos(lat)
		sinDLon, cosDLon := math.Sincos(lon - rp.lon)

		k := 2.0 / (1.0 + rp.sinLat*sinLat + rp.cosLat*cosLat*cosDLon)
		x = r0 * k * cosLat * sinDLon
		y = r0 * k * (rp.cosLat*sinLat - rp.sinLat*cosLat*cosDLon)

	default:
		return 0, 0, false
	}

	if p.rotation != 0 {
		x, y = x*p.cosr+y*p.sinr, y*p.cosr-x*p.sinr
	}

	return x, y, true
}
