// Package geo handles spherical earth geodesy: angle normalization, great
// circle distance, azimuth and the direct problem, and the earth radius.
//
// All angles are radians unless a name says otherwise.
package geo

// Point is a geographic position in radians.
type Point struct {
	Lon float64 `json:"lon" yaml:"lon"`
	Lat float64 `json:"lat" yaml:"lat"`
}

// Normalized returns p with latitude folded into [-π/2, π/2] and longitude
// placed relative to ref.
func (p Point) Normalized(ref float64) Point {
	return Point{Lon: LonToRef(p.Lon, ref), Lat: LatN(p.Lat)}
}

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry is a LineString geometry. Coordinates are map plane
// [x, y] pairs when written by the graticule renderer.
type GeoJSONGeometry struct {
	Type        string      `json:"type" yaml:"type"`
	Coordinates [][]float64 `json:"coordinates" yaml:"coordinates"`
}

// NewFeatureCollection returns an empty collection ready for appends.
func NewFeatureCollection(capacity int) GeoJSONFeatureCollection {
	return GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]GeoJSONFeature, 0, capacity),
	}
}
