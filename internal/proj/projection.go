// Package proj converts between geographic coordinates and map plane
// coordinates for a spherical earth.
//
// Formulas follow Snyder, Map Projections Used by the U.S. Geological
// Survey (Geological Survey Bulletin 1532), 1982.
package proj

import (
	"math"

	"github.com/woozymasta/geog/internal/geo"
)

// Kind identifies one of the supported projections.
type Kind int

// Projection kinds.
const (
	CylEqDist Kind = iota
	CylEqArea
	Mercator
	LambertConfConic
	LambertEqArea
	Orthographic
	Stereographic
)

var kindNames = [...]string{
	CylEqDist:        "CylEqDist",
	CylEqArea:        "CylEqArea",
	Mercator:         "Mercator",
	LambertConfConic: "LambertConfConic",
	LambertEqArea:    "LambertEqArea",
	Orthographic:     "Orthographic",
	Stereographic:    "Stereographic",
}

// Kinds lists every projection kind in keyword matching order.
var Kinds = []Kind{
	CylEqDist, CylEqArea, Mercator, LambertConfConic,
	LambertEqArea, Stereographic, Orthographic,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// ParseKind returns the kind with the given keyword.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// refPoint holds parameters for projections centered on a point.
type refPoint struct {
	lon, lat       float64
	cosLat, sinLat float64
}

// conic holds Lambert conformal conic parameters, Snyder p. 105.
type conic struct {
	refLat, refLon float64
	n              float64 // cone constant
	rf             float64 // R * F
	rho0           float64 // polar distance of the reference parallel
}

// Projection is a map projection with its precomputed parameters and a
// rotation of the map plane. Parameters are fixed at construction; only
// the rotation may change afterwards.
type Projection struct {
	earth geo.Earth
	kind  Kind

	// exactly one of these is meaningful, selected by kind
	refPt  refPoint
	refLon float64
	lcc    conic

	rotation   float64
	cosr, sinr float64
}

// Option adjusts projection construction.
type Option func(*settings)

type settings struct {
	earth geo.Earth
}

// WithEarth builds the projection for the given earth model instead of the
// process-wide radius.
func WithEarth(e geo.Earth) Option {
	return func(s *settings) {
		s.earth = e
	}
}

func newSettings(opts []Option) settings {
	s := settings{earth: geo.DefaultEarth()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func base(kind Kind, s settings) Projection {
	return Projection{
		kind:  kind,
		earth: s.earth,
		cosr:  1.0,
		sinr:  0.0,
	}
}

func withRefPoint(kind Kind, refLon, refLat float64, opts []Option) Projection {
	p := base(kind, newSettings(opts))

	refLat = geo.LatN(refLat)
	p.refPt = refPoint{
		lon:    geo.LonToRef(refLon, 0.0),
		lat:    refLat,
		cosLat: math.Cos(refLat),
		sinLat: math.Sin(refLat),
	}

	return p
}

func withRefLon(kind Kind, refLon float64, opts []Option) Projection {
	p := base(kind, newSettings(opts))
	p.refLon = geo.LonToRef(refLon, 0.0)
	return p
}

// NewCylEqDist returns a cylindrical equidistant projection. refLat is the
// standard parallel.
func NewCylEqDist(refLon, refLat float64, opts ...Option) Projection {
	return withRefPoint(CylEqDist, refLon, refLat, opts)
}

// NewCylEqArea returns a cylindrical equal area projection.
func NewCylEqArea(refLon float64, opts ...Option) Projection {
	return withRefLon(CylEqArea, refLon, opts)
}

// NewMercator returns a Mercator projection.
func NewMercator(refLon float64, opts ...Option) Projection {
	return withRefLon(Mercator, refLon, opts)
}

// NewLambertConfConic returns a Lambert conformal conic projection with one
// standard parallel at refLat. A cone tangent at the equator is a cylinder,
// so refLat 0 yields NewMercator(refLon).
func NewLambertConfConic(refLon, refLat float64, opts ...Option) Projection {
	refLat = geo.LatN(refLat)
	n := math.Sin(refLat)
	if n == 0.0 {
		return NewMercator(refLon, opts...)
	}

	p := base(LambertConfConic, newSettings(opts))
	r0 := p.earth.Radius
	tanN := math.Pow(math.Tan(math.Pi/4+0.5*refLat), n)

	p.lcc = conic{
		refLat: refLat,
		refLon: geo.LonToRef(refLon, 0.0),
		n:      n,
		rf:     r0 * math.Cos(refLat) * tanN / n,
		rho0:   r0 / math.Tan(refLat),
	}

	return p
}

// NewLambertEqArea returns a Lambert azimuthal equal area projection
// centered on (refLon, refLat).
func NewLambertEqArea(refLon, refLat float64, opts ...Option) Projection {
	return withRefPoint(LambertEqArea, refLon, refLat, opts)
}

// NewOrthographic returns an orthographic projection centered on
// (refLon, refLat).
func NewOrthographic(refLon, refLat float64, opts ...Option) Projection {
	return withRefPoint(Orthographic, refLon, refLat, opts)
}

// NewStereographic returns a stereographic projection centered on
// (refLon, refLat).
func NewStereographic(refLon, refLat float64, opts ...Option) Projection {
	return withRefPoint(Stereographic, refLon, refLat, opts)
}

// New dispatches to the constructor for kind. refLat is ignored by the
// kinds that only take a reference longitude.
func New(kind Kind, refLon, refLat float64, opts ...Option) (Projection, bool) {
	switch kind {
	case CylEqDist:
		return NewCylEqDist(refLon, refLat, opts...), true
	case CylEqArea:
		return NewCylEqArea(refLon, opts...), true
	case Mercator:
		return NewMercator(refLon, opts...), true
	case LambertConfConic:
		return NewLambertConfConic(refLon, refLat, opts...), true
	case LambertEqArea:
		return NewLambertEqArea(refLon, refLat, opts...), true
	case Orthographic:
		return NewOrthographic(refLon, refLat, opts...), true
	case Stereographic:
		return NewStereographic(refLon, refLat, opts...), true
	}
	return Projection{}, false
}

// SetRotation sets the clockwise angle, in radians, from geographic north
// to up on the map.
func (p *Projection) SetRotation(angle float64) {
	p.rotation = angle
	p.sinr, p.cosr = math.Sincos(angle)
}

// Rotation returns the map rotation in radians.
func (p Projection) Rotation() float64 {
	return p.rotation
}

// Kind returns the projection kind.
func (p Projection) Kind() Kind {
	return p.kind
}

// Earth returns the earth model the projection scales by.
func (p Projection) Earth() geo.Earth {
	return p.earth
}

// Reference returns the reference longitude and latitude. Kinds without a
// reference latitude report 0.
func (p Projection) Reference() (lon, lat float64) {
	switch p.kind {
	case CylEqArea, Mercator:
		return p.refLon, 0.0
	case LambertConfConic:
		return p.lcc.refLon, p.lcc.refLat
	default:
		return p.refPt.lon, p.refPt.lat
	}
}
