package graticule

import (
	"bytes"
	"encoding/json"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/geog/internal/geo"
	"github.com/woozymasta/geog/internal/proj"
)

var (
	unitEarth = proj.WithEarth(geo.Earth{Radius: 1})
	step30    = geo.DegToRad(30)
	res5      = geo.DegToRad(5)
	style     = Style{Color: "#ff0000", Width: 64, Height: 48, Stroke: 1, Margin: 2}
)

func count(lines []Line, kind string) int {
	n := 0
	for _, l := range lines {
		if l.Kind == kind {
			n++
		}
	}
	return n
}

func TestBuildCylindrical(t *testing.T) {
	lines := Build(proj.NewCylEqDist(0, 0, unitEarth), step30, res5)

	// 12 meridians from -180 to 150, 5 parallels from -60 to 60
	assert.Equal(t, 12, count(lines, Meridian))
	assert.Equal(t, 5, count(lines, Parallel))

	for _, l := range lines {
		require.Greater(t, len(l.Points), 1)
		if l.Kind == Parallel {
			// constant latitude maps to constant y
			for _, pt := range l.Points {
				assert.InDelta(t, l.Angle, pt[1], 1e-9)
			}
		}
	}

	minX, minY, maxX, maxY, ok := Bounds(lines)
	require.True(t, ok)
	assert.InDelta(t, -math.Pi, minX, 1e-9)
	assert.InDelta(t, math.Pi, maxX, 1e-6)
	assert.InDelta(t, -geo.DegToRad(60), minY, 1e-9)
	assert.InDelta(t, geo.DegToRad(60), maxY, 1e-9)
}

func TestBuildOrthographicClipsFarSide(t *testing.T) {
	lines := Build(proj.NewOrthographic(0, 0, unitEarth), step30, res5)
	require.NotEmpty(t, lines)

	for _, l := range lines {
		for _, pt := range l.Points {
			assert.LessOrEqual(t, math.Hypot(pt[0], pt[1]), 1.0+1e-9)
		}
	}
}

func TestBuildMercatorStaysFinite(t *testing.T) {
	lines := Build(proj.NewMercator(0, unitEarth), geo.DegToRad(10), res5)
	_, minY, _, maxY, ok := Bounds(lines)
	require.True(t, ok)
	assert.Less(t, maxY, 3.0)
	assert.Greater(t, minY, -3.0)
}

func TestBuildInvalidStep(t *testing.T) {
	assert.Nil(t, Build(proj.NewMercator(0), 0, res5))
	assert.Nil(t, Build(proj.NewMercator(0), step30, -1))
}

func TestBoundsEmpty(t *testing.T) {
	_, _, _, _, ok := Bounds(nil)
	assert.False(t, ok)
}

func TestWriteGeoJSON(t *testing.T) {
	lines := Build(proj.NewCylEqArea(0, unitEarth), step30, res5)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatGeoJSON, lines, style))

	var fc geo.GeoJSONFeatureCollection
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Len(t, fc.Features, len(lines))
	assert.Equal(t, "LineString", fc.Features[0].Geometry.Type)
	assert.Equal(t, Meridian, fc.Features[0].Properties["kind"])
	assert.Equal(t, -180.0, fc.Features[0].Properties["degrees"])
}

func TestWriteYAML(t *testing.T) {
	lines := Build(proj.NewCylEqArea(0, unitEarth), step30, res5)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, lines, style))

	var fc geo.GeoJSONFeatureCollection
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fc))
	assert.Len(t, fc.Features, len(lines))
}

func TestWriteSVG(t *testing.T) {
	lines := Build(proj.NewStereographic(0, math.Pi/2, unitEarth), step30, res5)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatSVG, lines, style))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, "<path")
	assert.Contains(t, out, "parallel")
}

func TestRasterize(t *testing.T) {
	lines := Build(proj.NewCylEqDist(0, 0, unitEarth), step30, res5)

	img, err := Rasterize(lines, style)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())

	// the corner is background, some pixel carries line color
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(0, 0))

	found := false
	for y := 0; y < img.Bounds().Dy() && !found; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			c := img.RGBAAt(x, y)
			if c.R > 200 && c.G < 150 && c.B < 150 {
				found = true
				break
			}
		}
	}
	assert.True(t, found)
}

func TestWriteWebP(t *testing.T) {
	lines := Build(proj.NewCylEqDist(0, 0, unitEarth), step30, res5)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatWebP, lines, style))
	require.Greater(t, buf.Len(), 12)
	assert.Equal(t, "RIFF", buf.String()[:4])
	assert.Equal(t, "WEBP", buf.String()[8:12])
}

func TestWriteErrors(t *testing.T) {
	var buf bytes.Buffer

	err := Write(&buf, "pdf", nil, style)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	err = Write(&buf, FormatSVG, nil, style)
	assert.ErrorIs(t, err, ErrNoLines)

	lines := Build(proj.NewCylEqDist(0, 0, unitEarth), step30, res5)
	bad := style
	bad.Color = "red"
	_, err = Rasterize(lines, bad)
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#1f4e79")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x1f, G: 0x4e, B: 0x79, A: 0xff}, c)
}
