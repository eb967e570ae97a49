package pip

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/geog/internal/geo"
)

// ErrNoPolygons is returned when a document holds no polygon geometry.
var ErrNoPolygons = errors.New("no polygons found")

// Load reads polygons from a GeoJSON file. See Parse.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("polygons", len(set)).
		Msg("Polygons loaded")

	return set, nil
}

// Parse extracts every Polygon and MultiPolygon from a GeoJSON
// FeatureCollection, Feature or bare geometry. Coordinates are read as
// degrees, as GeoJSON requires.
func Parse(data []byte) (Set, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	var geoms []orb.Geometry
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		for _, f := range fc.Features {
			geoms = append(geoms, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		geoms = append(geoms, f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}
		geoms = append(geoms, g.Geometry())
	}

	var set Set
	for _, g := range geoms {
		set = appendGeometry(set, g)
	}
	if len(set) == 0 {
		return nil, ErrNoPolygons
	}

	return set, nil
}

func appendGeometry(set Set, g orb.Geometry) Set {
	switch g := g.(type) {
	case orb.Polygon:
		set = append(set, fromOrb(g))
	case orb.MultiPolygon:
		for _, p := range g {
			set = append(set, fromOrb(p))
		}
	case orb.Collection:
		for _, c := range g {
			set = appendGeometry(set, c)
		}
	case nil:
	default:
		log.Trace().Str("type", g.GeoJSONType()).Msg("Skipping non-polygon geometry")
	}
	return set
}

func fromOrb(p orb.Polygon) Polygon {
	if len(p) == 0 {
		return Polygon{}
	}

	rings := make([][]geo.Point, len(p))
	for i, r := range p {
		ring := make([]geo.Point, len(r))
		for j, v := range r {
			ring[j] = geo.Point{Lon: geo.DegToRad(v.Lon()), Lat: geo.DegToRad(v.Lat())}
		}
		rings[i] = ring
	}

	return NewPolygon(rings[0], rings[1:]...)
}
