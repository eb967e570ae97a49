package geo

import (
	"math"
	"sync/atomic"
)

// DefaultEarthRadius is the radius, in meters, of a sphere with the same
// surface area as the earth.
const DefaultEarthRadius = 6366707.01896486

var earthRadiusBits atomic.Uint64

func init() {
	earthRadiusBits.Store(math.Float64bits(DefaultEarthRadius))
}

// REarth returns the process-wide earth radius.
func REarth() float64 {
	return math.Float64frombits(earthRadiusBits.Load())
}

// SetREarth replaces the process-wide earth radius. The value is not
// checked; zero or negative radii propagate into degenerate results.
func SetREarth(r float64) {
	earthRadiusBits.Store(math.Float64bits(r))
}

// Earth is a spherical earth model. Code that must not depend on the shared
// radius carries one of these instead.
type Earth struct {
	Radius float64 `yaml:"radius" json:"radius"`
}

// DefaultEarth snapshots the process-wide radius.
func DefaultEarth() Earth {
	return Earth{Radius: REarth()}
}

// Distance returns the great circle distance between two points in the
// radius' linear unit.
func (e Earth) Distance(lon1, lat1, lon2, lat2 float64) float64 {
	return Distance(lon1, lat1, lon2, lat2) * e.Radius
}

// Step moves dist linear units from (lon0, lat0) along bearing dirn.
func (e Earth) Step(lon0, lat0, dirn, dist float64) (lon, lat float64) {
	return Step(lon0, lat0, dirn, dist/e.Radius)
}

// ToRadians converts a surface length to an angle at the center.
func (e Earth) ToRadians(length float64) float64 {
	return length / e.Radius
}
