// Package config handles configuration loading and shared settings.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/woozymasta/geog/internal/geo"
	"github.com/woozymasta/geog/internal/proj"
	"github.com/woozymasta/geog/internal/units"

	"gopkg.in/yaml.v3"
)

// ErrBadProjection is returned when the projection line cannot be parsed.
var ErrBadProjection = errors.New("unrecognized projection")

// Config represents the root configuration file structure.
type Config struct {
	Units       string    `yaml:"units,omitempty" json:"units,omitempty"`
	Projection  string    `yaml:"projection,omitempty" json:"projection,omitempty"` // e.g. "Mercator -90"
	Graticule   Graticule `yaml:"graticule,omitempty" json:"graticule,omitempty"`
	EarthRadius float64   `yaml:"earth_radius,omitempty" json:"earth_radius,omitempty"`
	Rotation    float64   `yaml:"rotation,omitempty" json:"rotation,omitempty"`
}

// Graticule holds defaults for graticule rendering.
type Graticule struct {
	Step       float64 `yaml:"step,omitempty" json:"step,omitempty"`             // spacing between lines, in Units
	Resolution float64 `yaml:"resolution,omitempty" json:"resolution,omitempty"` // sampling along lines, in Units
	Width      int     `yaml:"width,omitempty" json:"width,omitempty"`
	Height     int     `yaml:"height,omitempty" json:"height,omitempty"`
	Stroke     float64 `yaml:"stroke,omitempty" json:"stroke,omitempty"`
	Color      string  `yaml:"color,omitempty" json:"color,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Units:       string(units.Degrees),
		EarthRadius: geo.DefaultEarthRadius,
		Graticule: Graticule{
			Step:       15,
			Resolution: 1,
			Width:      1024,
			Height:     1024,
			Stroke:     1,
			Color:      "#1f4e79",
		},
	}
}

// Load reads and parses the YAML configuration file from the specified path.
// Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if _, err := units.Parse(cfg.Units); err != nil {
		return nil, err
	}

	return cfg, nil
}

// AngleUnits returns the configured unit, falling back to degrees.
func (c *Config) AngleUnits() units.Angle {
	a, err := units.Parse(c.Units)
	if err != nil {
		return units.Degrees
	}
	return a
}

// Earth returns the configured earth model.
func (c *Config) Earth() geo.Earth {
	if c.EarthRadius == 0 {
		return geo.Earth{Radius: geo.DefaultEarthRadius}
	}
	return geo.Earth{Radius: c.EarthRadius}
}

// BuildProjection parses the projection line, reading its angles in the
// configured units, and applies the rotation.
func (c *Config) BuildProjection() (proj.Projection, error) {
	a := c.AngleUnits()

	p, ok := proj.FromStringScaled(c.Projection, a.Scale(), proj.WithEarth(c.Earth()))
	if !ok {
		return proj.Projection{}, fmt.Errorf("%w: %q", ErrBadProjection, c.Projection)
	}
	p.SetRotation(a.ToRadians(c.Rotation))

	return p, nil
}
