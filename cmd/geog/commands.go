package main

import (
	"io"
	"os"

	"github.com/woozymasta/geog/internal/geo"
	"github.com/woozymasta/geog/internal/graticule"
	"github.com/woozymasta/geog/internal/pip"
	"github.com/woozymasta/geog/internal/proj"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

// stdin and stdout are swapped out by tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

func addCommands(parser *flags.Parser) {
	commands := []struct {
		name, short, long string
		data              any
	}{
		{"lonr", "Longitude in a reference window",
			"Print LON shifted by whole turns into [REFLON-180, REFLON+180).", &lonrCommand{}},
		{"plat", "Normalized latitude",
			"Print LAT folded into [-90, 90] by reflecting over the poles.", &platCommand{}},
		{"gcdist", "Great circle distance",
			"Print the great circle distance between two points, as an angle or with --meters as a length.", &gcdistCommand{}},
		{"az", "Initial azimuth",
			"Print the direction from the first point to the second, clockwise from north.", &azCommand{}},
		{"step", "Travel along a great circle",
			"Print the point reached by moving DIST from LON LAT in direction DIRN.", &stepCommand{}},
		{"lonlat2xy", "Project points",
			"Read \"lon lat\" lines from stdin and print map coordinates, or \"nan nan\" for points outside the projection.", &lonlat2xyCommand{}},
		{"xy2lonlat", "Unproject map coordinates",
			"Read \"x y\" lines from stdin and print geographic coordinates, or \"nan nan\" where no point exists.", &xy2lonlatCommand{}},
		{"contains", "Point in polygon test",
			"Read \"lon lat\" lines from stdin and print 1 or 0 for each, depending on whether a polygon of the GeoJSON file holds it.", &containsCommand{}},
		{"graticule", "Draw a graticule",
			"Project meridians and parallels and write them as GeoJSON, YAML, SVG or WebP.", &graticuleCommand{}},
	}

	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			log.Fatal().Err(err).Str("command", c.name).Msg("Failed to register command")
		}
	}
}

// printValues writes values with the configured verb on one line.
func printValues(values ...float64) error {
	return printTo(stdout, values...)
}

// ProjectionOptions selects the projection for commands that need one.
type ProjectionOptions struct {
	Projection string  `short:"p" long:"projection" description:"Projection line such as \"Mercator 0\", overriding the configuration"`
	Rotation   float64 `long:"rotation"            description:"Map plane rotation, overriding the configuration when nonzero"`
}

// build returns the projection from the options, falling back to the
// configuration for anything left unset.
func (o ProjectionOptions) build() (proj.Projection, error) {
	c := *cfg
	if o.Projection != "" {
		c.Projection = o.Projection
	}
	if o.Rotation != 0 {
		c.Rotation = o.Rotation
	}
	return c.BuildProjection()
}

type lonrCommand struct {
	Args struct {
		Lon    float64 `positional-arg-name:"LON"`
		RefLon float64 `positional-arg-name:"REFLON"`
	} `positional-args:"yes" required:"yes"`
}

func (c *lonrCommand) Execute([]string) error {
	lon := geo.LonToRef(unit.ToRadians(c.Args.Lon), unit.ToRadians(c.Args.RefLon))
	return printValues(unit.FromRadians(lon))
}

type platCommand struct {
	Args struct {
		Lat float64 `positional-arg-name:"LAT"`
	} `positional-args:"yes" required:"yes"`
}

func (c *platCommand) Execute([]string) error {
	return printValues(unit.FromRadians(geo.LatN(unit.ToRadians(c.Args.Lat))))
}

// pairArgs takes latitude first.
type pairArgs struct {
	Lat1 float64 `positional-arg-name:"LAT1"`
	Lon1 float64 `positional-arg-name:"LON1"`
	Lat2 float64 `positional-arg-name:"LAT2"`
	Lon2 float64 `positional-arg-name:"LON2"`
}

func (a pairArgs) radians() (lon1, lat1, lon2, lat2 float64) {
	return unit.ToRadians(a.Lon1), unit.ToRadians(a.Lat1), unit.ToRadians(a.Lon2), unit.ToRadians(a.Lat2)
}

type gcdistCommand struct {
	Meters bool     `short:"m" long:"meters" description:"Report a length on the configured earth instead of an angle"`
	Args   pairArgs `positional-args:"yes" required:"yes"`
}

func (c *gcdistCommand) Execute([]string) error {
	lon1, lat1, lon2, lat2 := c.Args.radians()
	if c.Meters {
		return printValues(geo.DefaultEarth().Distance(lon1, lat1, lon2, lat2))
	}
	return printValues(unit.FromRadians(geo.Distance(lon1, lat1, lon2, lat2)))
}

type azCommand struct {
	Args pairArgs `positional-args:"yes" required:"yes"`
}

func (c *azCommand) Execute([]string) error {
	return printValues(unit.FromRadians(geo.Azimuth(c.Args.radians())))
}

type stepCommand struct {
	Meters bool `short:"m" long:"meters" description:"DIST is a length on the configured earth instead of an angle"`
	Args   struct {
		Lat  float64 `positional-arg-name:"LAT"`
		Lon  float64 `positional-arg-name:"LON"`
		Dirn float64 `positional-arg-name:"DIRN"`
		Dist float64 `positional-arg-name:"DIST"`
	} `positional-args:"yes" required:"yes"`
}

func (c *stepCommand) Execute([]string) error {
	lon0, lat0, dirn := unit.ToRadians(c.Args.Lon), unit.ToRadians(c.Args.Lat), unit.ToRadians(c.Args.Dirn)

	var lon, lat float64
	if c.Meters {
		lon, lat = geo.DefaultEarth().Step(lon0, lat0, dirn, c.Args.Dist)
	} else {
		lon, lat = geo.Step(lon0, lat0, dirn, unit.ToRadians(c.Args.Dist))
	}
	return printValues(unit.FromRadians(lon), unit.FromRadians(lat))
}

type lonlat2xyCommand struct {
	ProjectionOptions
}

func (c *lonlat2xyCommand) Execute([]string) error {
	p, err := c.build()
	if err != nil {
		return err
	}

	log.Debug().Str("projection", p.String()).Msg("Projecting points")

	return batch(stdin, stdout, func(a, b float64) ([]float64, bool) {
		x, y, ok := p.LonLatToXY(unit.ToRadians(a), unit.ToRadians(b))
		return []float64{x, y}, ok
	})
}

type xy2lonlatCommand struct {
	ProjectionOptions
}

func (c *xy2lonlatCommand) Execute([]string) error {
	p, err := c.build()
	if err != nil {
		return err
	}

	log.Debug().Str("projection", p.String()).Msg("Unprojecting points")

	return batch(stdin, stdout, func(a, b float64) ([]float64, bool) {
		lon, lat, ok := p.XYToLonLat(a, b)
		return []float64{unit.FromRadians(lon), unit.FromRadians(lat)}, ok
	})
}

type containsCommand struct {
	ProjectionOptions

	Polygons string `short:"g" long:"polygons" description:"GeoJSON file with Polygon or MultiPolygon geometries" required:"yes"`
	Planar   bool   `short:"P" long:"planar"   description:"Test in the plane of the projection instead of on the sphere"`
}

func (c *containsCommand) Execute([]string) error {
	set, err := pip.Load(c.Polygons)
	if err != nil {
		return err
	}

	test := set.Contains
	if c.Planar {
		p, err := c.build()
		if err != nil {
			return err
		}
		test = func(pt geo.Point) bool { return set.ContainsProjected(p, pt) }
	}

	return batchFlags(stdin, stdout, func(a, b float64) bool {
		return test(geo.Point{Lon: unit.ToRadians(a), Lat: unit.ToRadians(b)})
	})
}

type graticuleCommand struct {
	ProjectionOptions

	Type       string  `short:"t" long:"type" description:"Output format" choice:"geojson" choice:"yaml" choice:"svg" choice:"webp" default:"geojson"`
	Output     string  `short:"o" long:"output" description:"Output file, standard output when empty"`
	Step       float64 `short:"s" long:"step" description:"Spacing between lines, overriding the configuration"`
	Resolution float64 `long:"resolution" description:"Sampling interval along lines, overriding the configuration"`
	Width      int     `long:"width" description:"Image width in pixels"`
	Height     int     `long:"height" description:"Image height in pixels"`
}

func (c *graticuleCommand) Execute([]string) error {
	p, err := c.build()
	if err != nil {
		return err
	}

	g := cfg.Graticule
	if c.Step > 0 {
		g.Step = c.Step
	}
	if c.Resolution > 0 {
		g.Resolution = c.Resolution
	}
	if c.Width > 0 {
		g.Width = c.Width
	}
	if c.Height > 0 {
		g.Height = c.Height
	}

	lines := graticule.Build(p, unit.ToRadians(g.Step), unit.ToRadians(g.Resolution))
	if len(lines) == 0 {
		return graticule.ErrNoLines
	}

	style := graticule.Style{
		Color:  g.Color,
		Width:  g.Width,
		Height: g.Height,
		Stroke: g.Stroke,
		Margin: int(g.Stroke) + 2,
	}

	w := stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := graticule.Write(w, c.Type, lines, style); err != nil {
		return err
	}

	log.Info().
		Str("projection", p.String()).
		Str("type", c.Type).
		Int("lines", len(lines)).
		Str("output", c.Output).
		Msg("Graticule written")

	return nil
}
