package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"lifewall/internal/render"
	"lifewall/internal/rule"
	"lifewall/internal/sims/life"

	"github.com/pkg/errors"
)

// ErrInvalidConfig reports a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("invalid config")

// Seeding patterns accepted by -pattern.
const (
	PatternGliders = "gliders"
	PatternRandom  = "random"
	PatternEmpty   = "empty"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rule    string       `json:"rule"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Pixels  int          `json:"pixels"`
	FPS     float64      `json:"fps"`
	Live    render.Color `json:"live"`
	Dead    render.Color `json:"dead"`
	Pattern string       `json:"pattern"`
	Seed    int64        `json:"seed"`
	Workers int          `json:"workers"`
	GPU     bool         `json:"gpu"`

	ConfigPath string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rule:    "B3/S23",
		Width:   256,
		Height:  256,
		Pixels:  3,
		FPS:     30,
		Live:    render.White,
		Dead:    render.Black,
		Pattern: PatternGliders,
		Workers: 1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule string (B3/S23) or preset name")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Pixels, "pixels", c.Pixels, "screen pixels per cell")
	fs.Float64Var(&c.FPS, "fps", c.FPS, "generations per second, may be fractional")
	fs.Var(&c.Live, "live", "live cell color #RRGGBB")
	fs.Var(&c.Dead, "dead", "dead cell color #RRGGBB")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: gliders, random or empty")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern, 0 uses the clock")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands evaluated in parallel")
	fs.BoolVar(&c.GPU, "gpu", c.GPU, "step the grid with a shader (GUI build only)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON config file; flags override its values")
}

// LoadFile overlays the JSON object in path onto c. Keys absent from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] opening %s", path)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return errors.Wrapf(err, "[LoadFile] decoding %s", path)
	}
	return nil
}

// Parse binds c to fs, parses args, and applies the -config file if one was
// given. Flags set on the command line take precedence over the file.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.ConfigPath == "" {
		return c.Validate()
	}

	set := map[string]string{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
	if err := c.LoadFile(c.ConfigPath); err != nil {
		return err
	}
	for name, value := range set {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "[Parse] reapplying -%s", name)
		}
	}
	return c.Validate()
}

// Validate checks ranges and that the rule compiles.
func (c *Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid %dx%d", c.Width, c.Height)
	case c.Pixels < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] pixels %d", c.Pixels)
	case c.FPS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] fps %v", c.FPS)
	case c.Workers < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers %d", c.Workers)
	}
	switch c.Pattern {
	case PatternGliders, PatternRandom, PatternEmpty:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] pattern %q", c.Pattern)
	}
	if _, err := rule.Resolve(c.Rule); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	return nil
}

// NewLife builds and seeds the stepper described by c.
func (c *Config) NewLife() (*life.Life, error) {
	l, err := life.NewWithConfig(life.Config{
		Width:   c.Width,
		Height:  c.Height,
		Rule:    c.Rule,
		Workers: c.Workers,
	})
	if err != nil {
		return nil, err
	}
	switch c.Pattern {
	case PatternRandom:
		l.Randomize(c.RandomSeed())
	case PatternEmpty:
		l.Clear()
	default:
		l.SeedGliders()
	}
	return l, nil
}

// RandomSeed returns the configured seed, or a clock-derived one when unset.
func (c *Config) RandomSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
