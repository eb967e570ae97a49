package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/woozymasta/geog/internal/config"
	"github.com/woozymasta/geog/internal/geo"
	"github.com/woozymasta/geog/internal/logger"
	"github.com/woozymasta/geog/internal/units"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string  `short:"c" long:"config" env:"GEOG_CONFIG"       description:"Path to configuration file"`
	Units      string  `short:"u" long:"units"  env:"GEOG_UNITS"        description:"Angle units for input and output (degrees, radians)"`
	Radius     float64 `short:"r" long:"radius" env:"GEOG_EARTH_RADIUS" description:"Earth radius, in the unit distances are reported in"`
	Format     string  `short:"f" long:"format"                         description:"printf verb for each printed value" default:"%g"`
}

var (
	opts Options

	// set up by prepare before any command runs
	cfg  *config.Config
	unit units.Angle
)

// boolFlags take no value, so a negative number after one is positional.
var boolFlags = map[string]bool{
	"-m": true, "--meters": true,
	"-P": true, "--planar": true,
	"--log-no-color": true,
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)

	// command errors go to the logger instead of the parser's plain output
	var cmdErr error
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmdErr = prepare(); cmdErr == nil {
			cmdErr = cmd.Execute(args)
		}
		return nil
	}

	addCommands(parser)

	if _, err := parser.ParseArgs(protectNegatives(os.Args[1:])); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if cmdErr != nil {
		log.Fatal().Err(cmdErr).Str("command", commandName(parser)).Msg("Command failed")
	}
}

// prepare sets up logging, loads the configuration and applies flag
// overrides.
func prepare() error {
	opts.Logger.Setup()

	cfg = config.Default()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if opts.Units != "" {
		cfg.Units = opts.Units
	}
	if opts.Radius != 0 {
		cfg.EarthRadius = opts.Radius
	}

	var err error
	if unit, err = units.Parse(cfg.Units); err != nil {
		return err
	}

	// distances and projections built without an explicit earth model
	// follow the configured radius
	geo.SetREarth(cfg.Earth().Radius)

	log.Debug().
		Str("units", string(unit)).
		Float64("earth_radius", geo.REarth()).
		Str("config", opts.ConfigFile).
		Msg("Configuration ready")

	return nil
}

// protectNegatives inserts "--" before the first negative number that is
// not an option value, so coordinates like -105.3 reach the command as
// arguments instead of being read as short flags.
func protectNegatives(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}
		if _, err := strconv.ParseFloat(arg, 64); err != nil {
			continue
		}
		if i > 0 {
			prev := args[i-1]
			if strings.HasPrefix(prev, "-") && !strings.Contains(prev, "=") && !boolFlags[prev] && !isNumber(prev) {
				// value of the previous option
				continue
			}
		}

		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		return append(out, args[i:]...)
	}
	return args
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func commandName(parser *flags.Parser) string {
	if parser.Active != nil {
		return parser.Active.Name
	}
	return ""
}
