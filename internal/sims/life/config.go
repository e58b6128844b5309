package life

import (
	"strconv"

	"lifewall/internal/core"
	"lifewall/internal/rule"

	"github.com/pkg/errors"
)

// Config holds parameters for a Life simulation.
type Config struct {
	Width   int
	Height  int
	Rule    string
	Workers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: "B3/S23", Workers: 1}
}

// FromMap populates a Config from a string map. Malformed dimensions fall back
// to defaults; the rule string is kept verbatim and checked by NewWithConfig.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		c.Rule = v
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}

// NewWithConfig compiles the configured rule and allocates the grid. A rule
// that does not compile is an error; it is never replaced by a default.
func NewWithConfig(cfg Config) (*Life, error) {
	r, err := rule.Resolve(cfg.Rule)
	if err != nil {
		return nil, errors.Wrap(err, "[NewWithConfig] failed to compile rule")
	}
	return New(cfg.Width, cfg.Height, r, cfg.Workers), nil
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		l, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
