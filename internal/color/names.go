package color

import (
	"sort"
	"strings"

	"golang.org/x/image/colornames"
)

// CSS Color Level 4 keywords missing from the SVG 1.1 table.
var extraNames = map[string]Color{
	"rebeccapurple": {R: 0x66, G: 0x33, B: 0x99},
}

// Lookup returns the color for a CSS color keyword. Matching is
// ASCII case-insensitive. "transparent" is not accepted.
func Lookup(name string) (Color, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || key == "transparent" {
		return Color{}, false
	}
	if c, ok := extraNames[key]; ok {
		return c, true
	}
	rgba, ok := colornames.Map[key]
	if !ok {
		return Color{}, false
	}
	return Color{R: rgba.R, G: rgba.G, B: rgba.B}, true
}

// Names lists every accepted color keyword in sorted order.
func Names() []string {
	names := make([]string, 0, len(colornames.Names)+len(extraNames))
	names = append(names, colornames.Names...)
	for name := range extraNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
