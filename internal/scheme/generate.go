package scheme

import (
	"sort"

	"github.com/opencode-ai/colorscheme/internal/color"
)

// PrimaryName is the variable name of the input color.
const PrimaryName = "primary"

// Column shades scale the primary lightness.
const (
	darkerFactor  = 0.5
	lighterFactor = 1.5
)

// Fixed saturation/lightness targets for the text and background variants.
const (
	textSaturation       = 0.75
	textLightness        = 0.125
	backgroundSaturation = 0.25
	backgroundLightness  = 0.875
)

// NamedColor is one output variable.
type NamedColor struct {
	Name  string
	Color color.Color
}

// Generate derives the scheme's colors from primary. Derived colors are
// sorted by name and followed by the primary, which is passed through
// unchanged.
func Generate(primary color.Color, s Scheme) []NamedColor {
	base := primary.HSL()

	var derived []NamedColor
	add := func(name string, hsl color.HSL) {
		derived = append(derived, NamedColor{Name: name, Color: color.FromHSL(hsl)})
	}

	switch s {
	case Column:
		add("darker", base.WithLightness(base.L*darkerFactor))
		add("lighter", base.WithLightness(base.L*lighterFactor))
	case Dyad:
		add("complement", base.Rotate(180))
	case Triad:
		add("clockwise", base.Rotate(120))
		add("counterclockwise", base.Rotate(-120))
	case Tetrad:
		add("complement", base.Rotate(180))
		add("clockwise", base.Rotate(90))
		add("counterclockwise", base.Rotate(-90))
	case Text:
		add("text-primary", base.WithSaturation(textSaturation).WithLightness(textLightness))
	case Background:
		add("background-primary", base.WithSaturation(backgroundSaturation).WithLightness(backgroundLightness))
	}

	sort.Slice(derived, func(i, j int) bool {
		return derived[i].Name < derived[j].Name
	})

	return append(derived, NamedColor{Name: PrimaryName, Color: primary})
}
