package graticule

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/woozymasta/geog/internal/geo"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatGeoJSON = "geojson"
	FormatYAML    = "yaml"
	FormatSVG     = "svg"
	FormatWebP    = "webp"
)

var (
	// ErrUnknownFormat is returned for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrNoLines is returned when there is nothing to draw.
	ErrNoLines = errors.New("graticule is empty")
)

// supersample is the oversampling factor for raster output.
const supersample = 2

// Style controls image output.
type Style struct {
	Color  string // #rrggbb
	Width  int
	Height int
	Stroke float64 // line width in pixels
	Margin int
}

// Write renders lines in the named format.
func Write(w io.Writer, format string, lines []Line, st Style) error {
	switch format {
	case FormatGeoJSON:
		return WriteGeoJSON(w, lines)
	case FormatYAML:
		return WriteYAML(w, lines)
	case FormatSVG:
		return WriteSVG(w, lines, st)
	case FormatWebP:
		return WriteWebP(w, lines, st)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// FeatureCollection converts lines to LineString features in map plane
// coordinates.
func FeatureCollection(lines []Line) geo.GeoJSONFeatureCollection {
	fc := geo.NewFeatureCollection(len(lines))

	for _, l := range lines {
		coords := make([][]float64, len(l.Points))
		for i, pt := range l.Points {
			coords[i] = []float64{pt[0], pt[1]}
		}

		fc.Features = append(fc.Features, geo.GeoJSONFeature{
			Type: "Feature",
			Geometry: geo.GeoJSONGeometry{
				Type:        "LineString",
				Coordinates: coords,
			},
			Properties: map[string]interface{}{
				"kind":    l.Kind,
				"degrees": l.Degrees(),
			},
		})
	}

	return fc
}

// WriteGeoJSON writes lines as a GeoJSON feature collection.
func WriteGeoJSON(w io.Writer, lines []Line) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(FeatureCollection(lines))
}

// WriteYAML writes the GeoJSON structure as YAML.
func WriteYAML(w io.Writer, lines []Line) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(FeatureCollection(lines)); err != nil {
		return err
	}
	return enc.Close()
}

// viewport maps the map plane onto an image with y pointing down.
type viewport struct {
	minX, minY float64
	scale      float64
	offX, offY float64
	height     float64
}

func newViewport(lines []Line, width, height, margin int) (viewport, error) {
	minX, minY, maxX, maxY, ok := Bounds(lines)
	if !ok {
		return viewport{}, ErrNoLines
	}

	w := float64(width - 2*margin)
	h := float64(height - 2*margin)
	if w <= 0 || h <= 0 {
		return viewport{}, fmt.Errorf("image %dx%d too small for margin %d", width, height, margin)
	}

	spanX := math.Max(maxX-minX, math.SmallestNonzeroFloat64)
	spanY := math.Max(maxY-minY, math.SmallestNonzeroFloat64)
	scale := math.Min(w/spanX, h/spanY)

	return viewport{
		minX:   minX,
		minY:   minY,
		scale:  scale,
		offX:   float64(margin) + (w-spanX*scale)/2,
		offY:   float64(margin) + (h-spanY*scale)/2,
		height: float64(height),
	}, nil
}

func (v viewport) pixel(pt [2]float64) (float64, float64) {
	x := v.offX + (pt[0]-v.minX)*v.scale
	y := v.height - v.offY - (pt[1]-v.minY)*v.scale
	return x, y
}

// WriteSVG writes a minified SVG drawing of lines.
func WriteSVG(w io.Writer, lines []Line, st Style) error {
	vp, err := newViewport(lines, st.Width, st.Height, st.Margin)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		st.Width, st.Height, st.Width, st.Height)
	fmt.Fprintf(&b, `<g fill="none" stroke="%s" stroke-width="%s" stroke-linejoin="round">`,
		st.Color, strconv.FormatFloat(st.Stroke, 'f', -1, 64))

	for _, l := range lines {
		fmt.Fprintf(&b, `<path class="%s" d="`, l.Kind)
		for i, pt := range l.Points {
			x, y := vp.pixel(pt)
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&b, "%s%.2f %.2f ", cmd, x, y)
		}
		b.WriteString(`"/>`)
	}
	b.WriteString(`</g></svg>`)

	m := minify.New()
	m.AddFunc("image/svg+xml", svg.Minify)

	out, err := m.String("image/svg+xml", b.String())
	if err != nil {
		return fmt.Errorf("minify svg: %w", err)
	}

	log.Debug().
		Int("lines", len(lines)).
		Int("raw_bytes", b.Len()).
		Int("min_bytes", len(out)).
		Msg("SVG rendered")

	_, err = io.WriteString(w, out)
	return err
}

// Rasterize draws lines onto a white image of the style's size. Lines are
// drawn at twice the resolution and scaled down for smooth edges.
func Rasterize(lines []Line, st Style) (*image.RGBA, error) {
	col, err := parseColor(st.Color)
	if err != nil {
		return nil, err
	}

	bigW, bigH := st.Width*supersample, st.Height*supersample
	vp, err := newViewport(lines, bigW, bigH, st.Margin*supersample)
	if err != nil {
		return nil, err
	}

	big := image.NewRGBA(image.Rect(0, 0, bigW, bigH))
	draw.Draw(big, big.Bounds(), image.White, image.Point{}, draw.Src)

	half := float32(math.Max(st.Stroke, 0.5) * supersample / 2)
	z := vector.NewRasterizer(bigW, bigH)
	for _, l := range lines {
		for i := 1; i < len(l.Points); i++ {
			x0, y0 := vp.pixel(l.Points[i-1])
			x1, y1 := vp.pixel(l.Points[i])
			addSegment(z, float32(x0), float32(y0), float32(x1), float32(y1), half)
		}
	}
	z.Draw(big, big.Bounds(), image.NewUniform(col), image.Point{})

	dst := image.NewRGBA(image.Rect(0, 0, st.Width, st.Height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), big, big.Bounds(), draw.Src, nil)

	return dst, nil
}

// addSegment adds a segment as a filled quad of half width h.
func addSegment(z *vector.Rasterizer, x0, y0, x1, y1, h float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}

	nx, ny := -dy/length*h, dx/length*h
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

// WriteWebP rasterizes lines and encodes them as WebP.
func WriteWebP(w io.Writer, lines []Line, st Style) error {
	img, err := Rasterize(lines, st)
	if err != nil {
		return err
	}

	if err := webp.Encode(w, img, &webp.Options{Lossless: false, Quality: 90}); err != nil {
		return fmt.Errorf("encode webp: %w", err)
	}

	log.Debug().
		Int("lines", len(lines)).
		Int("width", st.Width).
		Int("height", st.Height).
		Msg("WebP rendered")

	return nil
}

func parseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
