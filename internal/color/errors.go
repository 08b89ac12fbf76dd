package color

import (
	"errors"
	"fmt"
)

// ErrInvalidColor matches any InvalidColorError via errors.Is.
var ErrInvalidColor = errors.New("invalid color")

// InvalidColorError reports input that is neither hex nor a CSS color name.
type InvalidColorError struct {
	Input string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %q: expected a hex value (#rgb, #rrggbb) or a CSS color name", e.Input)
}

// Is reports whether target is ErrInvalidColor.
func (e *InvalidColorError) Is(target error) bool {
	return target == ErrInvalidColor
}
