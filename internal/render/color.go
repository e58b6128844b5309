package render

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/pkg/errors"
)

// ErrColorFormat reports a color that is not of the form #RRGGBB.
var ErrColorFormat = errors.New("color must be in format #RRGGBB")

// Color is an opaque RGB color. It implements flag.Value and encoding.Text*
// so it can be bound to flags and JSON config fields directly.
type Color struct {
	R, G, B uint8
}

var (
	White = Color{R: 0xff, G: 0xff, B: 0xff}
	Black = Color{}
)

// ParseColor parses "#RRGGBB".
func ParseColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, errors.Wrapf(ErrColorFormat, "[ParseColor] %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(ErrColorFormat, "[ParseColor] %q", s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func (c Color) String() string { return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B) }

// Set implements flag.Value.
func (c *Color) Set(s string) error {
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error { return c.Set(string(text)) }

// RGBA converts to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff} }

// Floats returns normalized RGBA components for shader uniforms.
func (c Color) Floats() []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1}
}
