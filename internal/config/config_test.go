package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/geog/internal/geo"
	"github.com/woozymasta/geog/internal/proj"
	"github.com/woozymasta/geog/internal/units"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
units: radians
earth_radius: 6371000
projection: LambertConfConic -1.5 0.7
rotation: 0.1
graticule:
  step: 0.25
  width: 512
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, units.Radians, cfg.AngleUnits())
	assert.Equal(t, geo.Earth{Radius: 6371000}, cfg.Earth())
	assert.Equal(t, 0.25, cfg.Graticule.Step)
	assert.Equal(t, 512, cfg.Graticule.Width)
	// untouched defaults survive
	assert.Equal(t, 1024, cfg.Graticule.Height)
	assert.Equal(t, "#1f4e79", cfg.Graticule.Color)

	p, err := cfg.BuildProjection()
	require.NoError(t, err)
	assert.Equal(t, proj.LambertConfConic, p.Kind())
	assert.Equal(t, 0.1, p.Rotation())
	assert.Equal(t, 6371000.0, p.Earth().Radius)

	lon, lat := p.Reference()
	assert.InDelta(t, -1.5, lon, 1e-12)
	assert.InDelta(t, 0.7, lat, 1e-12)
}

func TestBuildProjectionDegrees(t *testing.T) {
	cfg := Default()
	cfg.Projection = "Orthographic -90 45"
	cfg.Rotation = 90

	p, err := cfg.BuildProjection()
	require.NoError(t, err)

	lon, lat := p.Reference()
	assert.InDelta(t, -math.Pi/2, lon, 1e-12)
	assert.InDelta(t, math.Pi/4, lat, 1e-12)
	assert.InDelta(t, math.Pi/2, p.Rotation(), 1e-12)
}

func TestBuildProjectionInvalid(t *testing.T) {
	cfg := Default()
	cfg.Projection = "Robinson 0"

	_, err := cfg.BuildProjection()
	assert.ErrorIs(t, err, ErrBadProjection)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "units: grads\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "units: [\n"))
	assert.Error(t, err)
}
