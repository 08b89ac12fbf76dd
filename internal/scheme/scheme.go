// Package scheme derives related colors from a primary color.
package scheme

import (
	"fmt"
	"strings"
)

// Scheme selects which colors are derived from the primary.
type Scheme int

const (
	// Column adds darker and lighter shades of the same hue.
	Column Scheme = iota
	// Dyad adds the complementary color.
	Dyad
	// Triad adds the colors 120 degrees either side of the primary.
	Triad
	// Tetrad adds the complement and the two quarter turns.
	Tetrad
	// Text adds a dark, saturated variant for body text.
	Text
	// Background adds a light, desaturated variant for page backgrounds.
	Background
)

var schemeNames = map[Scheme]string{
	Column:     "column",
	Dyad:       "dyad",
	Triad:      "triad",
	Tetrad:     "tetrad",
	Text:       "text",
	Background: "background",
}

var schemeDescriptions = map[Scheme]string{
	Column:     "lighter and darker variants of the same hue",
	Dyad:       "complementary color (180 degrees on the color wheel)",
	Triad:      "isosceles triangle (120 degrees clockwise and counterclockwise)",
	Tetrad:     "square: complement plus 90 degrees clockwise and counterclockwise",
	Text:       "dark, saturated variant suitable for font color",
	Background: "light, desaturated variant suitable for backgrounds",
}

// All returns every scheme in declaration order.
func All() []Scheme {
	return []Scheme{Column, Dyad, Triad, Tetrad, Text, Background}
}

// Parse resolves a scheme name. Names are case-sensitive.
func Parse(name string) (Scheme, error) {
	for _, s := range All() {
		if schemeNames[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown scheme %q (expected one of %s)", name, strings.Join(Names(), "|"))
}

// Names returns the scheme names in declaration order.
func Names() []string {
	names := make([]string, 0, len(schemeNames))
	for _, s := range All() {
		names = append(names, schemeNames[s])
	}
	return names
}

func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("scheme(%d)", int(s))
}

// Description is a one-line summary used in help output.
func (s Scheme) Description() string {
	return schemeDescriptions[s]
}
