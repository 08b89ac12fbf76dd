package color

import (
	"strconv"
	"strings"
)

// Parse resolves a hex literal or CSS color name.
//
// Input starting with '#' is only ever read as hex. Anything else is looked
// up as a color name first and then tried as hex without the leading '#'.
func Parse(input string) (Color, error) {
	value := strings.TrimSpace(input)
	if value == "" {
		return Color{}, &InvalidColorError{Input: input}
	}

	if strings.HasPrefix(value, "#") {
		c, ok := parseHexDigits(value[1:])
		if !ok {
			return Color{}, &InvalidColorError{Input: input}
		}
		return c, nil
	}

	if c, ok := Lookup(value); ok {
		return c, nil
	}

	if c, ok := parseHexDigits(value); ok {
		return c, nil
	}
	return Color{}, &InvalidColorError{Input: input}
}

// ParseHex parses #rgb, #rrggbb, rgb or rrggbb.
func ParseHex(input string) (Color, error) {
	c, ok := parseHexDigits(strings.TrimPrefix(strings.TrimSpace(input), "#"))
	if !ok {
		return Color{}, &InvalidColorError{Input: input}
	}
	return c, nil
}

func parseHexDigits(digits string) (Color, bool) {
	switch len(digits) {
	case 3:
		// each nibble is duplicated: f0a -> ff00aa
		expanded := make([]byte, 0, 6)
		for i := 0; i < 3; i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		digits = string(expanded)
	case 6:
	default:
		return Color{}, false
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, false
		}
		channels[i] = uint8(v)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, true
}
