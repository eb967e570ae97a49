// Package pip tests whether geographic points lie inside polygons.
//
// Containment is decided on the sphere, so edges are great circle arcs and
// polygons may cross the antimeridian or enclose a pole.
package pip

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/woozymasta/geog/internal/geo"
	"github.com/woozymasta/geog/internal/proj"
)

// Contains reports whether pt is inside the ring of vertices. The ring may
// repeat its first vertex at the end. The inside is the smaller of the two
// regions the ring bounds. Rings with fewer than three distinct vertices
// contain nothing.
func Contains(pt geo.Point, ring []geo.Point) bool {
	l := newLoop(ring)
	if l == nil {
		return false
	}
	return l.ContainsPoint(toS2(pt))
}

// Polygon is an outer ring with optional holes.
type Polygon struct {
	Outer []geo.Point
	Holes [][]geo.Point

	outer *s2.Loop
	holes []*s2.Loop
}

// NewPolygon builds a polygon and prepares its loops for repeated queries.
func NewPolygon(outer []geo.Point, holes ...[]geo.Point) Polygon {
	p := Polygon{Outer: outer, Holes: holes, outer: newLoop(outer)}
	for _, h := range holes {
		if l := newLoop(h); l != nil {
			p.holes = append(p.holes, l)
		}
	}
	return p
}

// Contains reports whether pt is inside the outer ring and outside every
// hole.
func (p Polygon) Contains(pt geo.Point) bool {
	if p.outer == nil {
		// zero value or built without NewPolygon
		if len(p.Outer) == 0 {
			return false
		}
		p = NewPolygon(p.Outer, p.Holes...)
		if p.outer == nil {
			return false
		}
	}

	sp := toS2(pt)
	if !p.outer.ContainsPoint(sp) {
		return false
	}
	for _, h := range p.holes {
		if h.ContainsPoint(sp) {
			return false
		}
	}
	return true
}

// ContainsProjected tests containment in the map plane of pr instead of on
// the sphere, so edges are straight map lines. It is false when the point or
// any vertex has no image under pr.
func (p Polygon) ContainsProjected(pr proj.Projection, pt geo.Point) bool {
	x, y, ok := pr.LonLatToXY(pt.Lon, pt.Lat)
	if !ok {
		return false
	}

	poly := make(orb.Polygon, 0, 1+len(p.Holes))
	for _, ring := range append([][]geo.Point{p.Outer}, p.Holes...) {
		r, ok := projectRing(pr, ring)
		if !ok {
			return false
		}
		poly = append(poly, r)
	}

	return planar.PolygonContains(poly, orb.Point{x, y})
}

// Set is a collection of polygons treated as one region.
type Set []Polygon

// Contains reports whether any polygon in the set contains pt.
func (s Set) Contains(pt geo.Point) bool {
	for _, p := range s {
		if p.Contains(pt) {
			return true
		}
	}
	return false
}

// ContainsProjected is Contains in the map plane of pr.
func (s Set) ContainsProjected(pr proj.Projection, pt geo.Point) bool {
	for _, p := range s {
		if p.ContainsProjected(pr, pt) {
			return true
		}
	}
	return false
}

func toS2(pt geo.Point) s2.Point {
	return s2.PointFromLatLng(s2.LatLng{Lat: s1.Angle(pt.Lat), Lng: s1.Angle(pt.Lon)})
}

// newLoop converts a ring to an s2 loop, dropping the closing vertex and
// repeated vertices. It returns nil for degenerate rings.
func newLoop(ring []geo.Point) *s2.Loop {
	pts := make([]s2.Point, 0, len(ring))
	for _, v := range ring {
		sp := toS2(v)
		if len(pts) > 0 && pts[len(pts)-1].ApproxEqual(sp) {
			continue
		}
		pts = append(pts, sp)
	}
	for len(pts) > 1 && pts[len(pts)-1].ApproxEqual(pts[0]) {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil
	}

	l := s2.LoopFromPoints(pts)
	l.Normalize()
	return l
}

func projectRing(pr proj.Projection, ring []geo.Point) (orb.Ring, bool) {
	r := make(orb.Ring, 0, len(ring)+1)
	for _, v := range ring {
		x, y, ok := pr.LonLatToXY(v.Lon, v.Lat)
		if !ok {
			return nil, false
		}
		r = append(r, orb.Point{x, y})
	}
	if len(r) > 0 && !r.Closed() {
		r = append(r, r[0])
	}
	return r, true
}
