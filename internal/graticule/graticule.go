// Package graticule draws lines of constant longitude and latitude through a
// projection.
package graticule

import (
	"math"

	"github.com/woozymasta/geog/internal/geo"
	"github.com/woozymasta/geog/internal/proj"
)

// Line kinds.
const (
	Meridian = "meridian"
	Parallel = "parallel"
)

// edge keeps samples on the near side of the reference meridian's antipode.
const edge = 1e-9

// Line is one projected graticule run. A meridian or parallel that leaves
// the projection's domain is split into several runs.
type Line struct {
	Kind   string       // Meridian or Parallel
	Angle  float64      // longitude or latitude of the line, radians
	Points [][2]float64 // map plane x, y
}

// Build samples meridians and parallels every step radians, each line at
// intervals of resolution radians, and projects them with p. Samples with no
// image break the line.
func Build(p proj.Projection, step, resolution float64) []Line {
	if step <= 0 || resolution <= 0 {
		return nil
	}

	refLon, _ := p.Reference()
	lo, hi := refLon-math.Pi, refLon+math.Pi-edge

	// meridians stop at the last parallel short of the poles, where conic
	// and cylindrical images run off to infinity
	maxLat := math.Floor((math.Pi/2-edge)/step) * step
	if maxLat <= 0 {
		maxLat = math.Pi / 2 * 8.0 / 9.0
	}

	var lines []Line

	first := math.Ceil(lo/step) * step
	for lon := first; lon <= hi; lon += step {
		lines = appendRuns(lines, Meridian, lon, sample(-maxLat, maxLat, resolution), func(lat float64) (float64, float64, bool) {
			return p.LonLatToXY(lon, lat)
		})
	}

	first = math.Ceil(-math.Pi/2/step) * step
	for lat := first; lat <= math.Pi/2; lat += step {
		// parallels at the poles are points
		if math.Abs(math.Abs(lat)-math.Pi/2) < edge {
			continue
		}
		lines = appendRuns(lines, Parallel, lat, sample(lo, hi, resolution), func(lon float64) (float64, float64, bool) {
			return p.LonLatToXY(lon, lat)
		})
	}

	return lines
}

// sample returns points from a to b inclusive at most res apart.
func sample(a, b, res float64) []float64 {
	n := int(math.Ceil((b - a) / res))
	if n < 1 {
		n = 1
	}

	out := make([]float64, n+1)
	for i := range out {
		out[i] = a + (b-a)*float64(i)/float64(n)
	}
	return out
}

func appendRuns(lines []Line, kind string, angle float64, at []float64, project func(float64) (float64, float64, bool)) []Line {
	var run [][2]float64

	flush := func() {
		if len(run) > 1 {
			lines = append(lines, Line{Kind: kind, Angle: angle, Points: run})
		}
		run = nil
	}

	for _, v := range at {
		x, y, ok := project(v)
		if !ok || math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			flush()
			continue
		}
		run = append(run, [2]float64{x, y})
	}
	flush()

	return lines
}

// Bounds returns the extent of all line points. ok is false when there are
// none.
func Bounds(lines []Line) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	for _, l := range lines {
		for _, pt := range l.Points {
			minX = math.Min(minX, pt[0])
			maxX = math.Max(maxX, pt[0])
			minY = math.Min(minY, pt[1])
			maxY = math.Max(maxY, pt[1])
			ok = true
		}
	}

	return minX, minY, maxX, maxY, ok
}

// Degrees returns the line's angle in degrees, rounded to drop sampling
// noise.
func (l Line) Degrees() float64 {
	return math.Round(geo.RadToDeg(l.Angle)*1e6) / 1e6
}
