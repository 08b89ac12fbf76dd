// Package color parses CSS color literals and converts between RGB and HSL.
package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// HSL is the hue/saturation/lightness form of a color.
// Hue is in degrees [0, 360); saturation and lightness are in [0, 1].
type HSL struct {
	H float64
	S float64
	L float64
}

// New returns the color with the given channels.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex formats the color as a lowercase #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// HSL converts the color to hue/saturation/lightness.
func (c Color) HSL() HSL {
	h, s, l := c.colorful().Hsl()
	return HSL{H: normalizeHue(h), S: s, L: l}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromHSL converts hue/saturation/lightness back to RGB.
func FromHSL(hsl HSL) Color {
	r, g, b := colorful.Hsl(normalizeHue(hsl.H), clampUnit(hsl.S), clampUnit(hsl.L)).Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Rotate returns a copy with the hue turned by deg degrees.
func (h HSL) Rotate(deg float64) HSL {
	h.H = normalizeHue(h.H + deg)
	return h
}

// WithLightness returns a copy with lightness set to l, clamped to [0, 1].
func (h HSL) WithLightness(l float64) HSL {
	h.L = clampUnit(l)
	return h
}

// WithSaturation returns a copy with saturation set to s, clamped to [0, 1].
func (h HSL) WithSaturation(s float64) HSL {
	h.S = clampUnit(s)
	return h
}

func normalizeHue(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
