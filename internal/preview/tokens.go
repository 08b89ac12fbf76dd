// Package preview renders generated schemes as terminal swatches.
package preview

import (
	"github.com/opencode-ai/colorscheme/internal/color"
	"github.com/opencode-ai/colorscheme/internal/scheme"
)

// Text colors used on top of a swatch.
const (
	darkText  = "#000000"
	lightText = "#FFFFFF"
)

// Swatch is one previewed color with a readable foreground.
type Swatch struct {
	Name       string
	Background string
	Foreground string
}

// Swatches converts a generated scheme into swatch tokens, preserving order.
func Swatches(colors []scheme.NamedColor) []Swatch {
	swatches := make([]Swatch, 0, len(colors))
	for _, c := range colors {
		swatches = append(swatches, Swatch{
			Name:       c.Name,
			Background: c.Color.Hex(),
			Foreground: foregroundFor(c.Color),
		})
	}
	return swatches
}

func foregroundFor(c color.Color) string {
	if c.HSL().L > 0.5 {
		return darkText
	}
	return lightText
}
