package app

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"lifewall/internal/render"
	"lifewall/internal/rule"
	"lifewall/internal/sims/life"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ca.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseDefaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Parse(newFlagSet(), nil); err != nil {
		t.Fatal(err)
	}
	if cfg.Rule != "B3/S23" || cfg.Width != 256 || cfg.Pattern != PatternGliders || cfg.Live != render.White {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestParseFlags(t *testing.T) {
	cfg := NewConfig()
	err := cfg.Parse(newFlagSet(), []string{
		"-rule", "highlife", "-width", "40", "-height", "30", "-fps", "0.5",
		"-live", "#00FF00", "-pattern", "random", "-seed", "7", "-workers", "4",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rule != "highlife" || cfg.Width != 40 || cfg.Height != 30 || cfg.FPS != 0.5 {
		t.Fatalf("flags = %+v", cfg)
	}
	if cfg.Live != (render.Color{G: 0xff}) || cfg.Seed != 7 || cfg.Workers != 4 {
		t.Fatalf("flags = %+v", cfg)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `{"rule": "seeds", "width": 64, "height": 48, "dead": "#101010"}`)
	cfg := NewConfig()
	if err := cfg.Parse(newFlagSet(), []string{"-config", path, "-width", "32"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 32 {
		t.Fatalf("width = %d, flag should win", cfg.Width)
	}
	if cfg.Height != 48 || cfg.Rule != "seeds" || cfg.Dead != (render.Color{R: 16, G: 16, B: 16}) {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Pixels != 3 {
		t.Fatalf("absent keys should keep defaults, pixels = %d", cfg.Pixels)
	}
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
	if err := cfg.LoadFile(writeConfig(t, `{"colour": "#000000"}`)); err == nil {
		t.Fatal("unknown keys should be rejected")
	}
	if err := cfg.LoadFile(writeConfig(t, `{"live": "red"}`)); !errors.Is(err, render.ErrColorFormat) {
		t.Fatalf("bad color err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"width", func(c *Config) { c.Width = 0 }, ErrInvalidConfig},
		{"pixels", func(c *Config) { c.Pixels = 0 }, ErrInvalidConfig},
		{"fps", func(c *Config) { c.FPS = 0 }, ErrInvalidConfig},
		{"workers", func(c *Config) { c.Workers = 0 }, ErrInvalidConfig},
		{"pattern", func(c *Config) { c.Pattern = "spiral" }, ErrInvalidConfig},
		{"rule", func(c *Config) { c.Rule = "B3S23" }, rule.ErrInvalidRuleFormat},
		{"digit", func(c *Config) { c.Rule = "B39/S23" }, rule.ErrInvalidRuleDigit},
	}
	for _, tc := range cases {
		cfg := NewConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestNewLifePatterns(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 10, 10

	l, err := cfg.NewLife()
	if err != nil {
		t.Fatal(err)
	}
	if l.Population() != 20 || l.State() != life.Seeded {
		t.Fatalf("gliders: population %d state %v", l.Population(), l.State())
	}

	cfg.Pattern, cfg.Seed = PatternRandom, 3
	a, _ := cfg.NewLife()
	b, _ := cfg.NewLife()
	if a.Buffer().Digest() != b.Buffer().Digest() || a.Population() == 0 {
		t.Fatal("random pattern should be reproducible from a fixed seed")
	}

	cfg.Pattern = PatternEmpty
	e, _ := cfg.NewLife()
	if e.Population() != 0 {
		t.Fatal("empty pattern should have no live cells")
	}

	cfg.Rule = "B/S/S"
	if _, err := cfg.NewLife(); !errors.Is(err, rule.ErrInvalidRuleDigit) {
		t.Fatalf("bad rule err = %v", err)
	}
}

func TestClickMapping(t *testing.T) {
	cases := []struct {
		b           Button
		ctrl, shift bool
		kind        ActionKind
		value       uint8
	}{
		{ButtonLeft, false, false, ActionPaint, 0},
		{ButtonLeft, false, true, ActionPaint, 0},
		{ButtonLeft, true, false, ActionRandomize, 0},
		{ButtonLeft, true, true, ActionClear, 0},
		{ButtonRight, false, false, ActionPaint, 1},
		{ButtonRight, true, true, ActionPaint, 1},
	}
	for _, tc := range cases {
		a := Click(tc.b, tc.ctrl, tc.shift, 4, 5)
		if a.Kind != tc.kind {
			t.Fatalf("button %d ctrl=%v shift=%v: kind %d, want %d", tc.b, tc.ctrl, tc.shift, a.Kind, tc.kind)
		}
		if a.Kind == ActionPaint && (a.X != 4 || a.Y != 5 || a.W != 1 || a.H != 1 || a.Values[0] != tc.value) {
			t.Fatalf("button %d: paint %+v", tc.b, a)
		}
	}
	if Click(Button(9), false, false, 0, 0).Kind != ActionNone {
		t.Fatal("unknown button should do nothing")
	}
}

func TestGliderStampsAreGliders(t *testing.T) {
	seen := map[string]bool{}
	for _, ctrl := range []bool{false, true} {
		for _, shift := range []bool{false, true} {
			a := Click(ButtonMiddle, ctrl, shift, 5, 7)
			if a.X != 5 || a.Y != 5 || a.W != 3 || a.H != 3 {
				t.Fatalf("stamp block = %+v", a)
			}
			seen[string(a.Values)] = true

			// A glider returns to its own shape, shifted diagonally, after 4 ticks.
			l := life.New(12, 12, rule.Conway, 1)
			if err := Apply(l, a, 0); err != nil {
				t.Fatal(err)
			}
			before := l.Population()
			for i := 0; i < 4; i++ {
				l.Tick()
			}
			if l.Population() != before || before != 5 {
				t.Fatalf("ctrl=%v shift=%v: population %d -> %d", ctrl, shift, before, l.Population())
			}
		}
	}
	if len(seen) != 4 {
		t.Fatalf("expected four distinct orientations, got %d", len(seen))
	}
}

func TestApply(t *testing.T) {
	l := life.New(6, 6, rule.Conway, 1)
	if err := Apply(l, Click(ButtonRight, false, false, 2, 2), 0); err != nil {
		t.Fatal(err)
	}
	if l.Population() != 1 {
		t.Fatal("right click should set a cell")
	}
	Apply(l, Click(ButtonLeft, false, false, 2, 2), 0)
	if l.Population() != 0 {
		t.Fatal("left click should kill the cell")
	}
	Apply(l, Click(ButtonLeft, true, false, 0, 0), 5)
	if l.Population() == 0 {
		t.Fatal("ctrl+left should randomize")
	}
	Apply(l, Click(ButtonLeft, true, true, 0, 0), 0)
	if l.Population() != 0 {
		t.Fatal("ctrl+shift+left should clear")
	}
	if err := Apply(l, Click(ButtonMiddle, false, false, 100, 100), 0); err != nil {
		t.Fatalf("off-grid stamp should clip, got %v", err)
	}
}
