// Package render formats generated schemes as CSS.
package render

import (
	"strings"

	"github.com/opencode-ai/colorscheme/internal/scheme"
)

// DefaultSelector is used when no selector is given.
const DefaultSelector = ":root"

// CSS renders colors as custom properties declared under selector:
//
//	:root {
//		--primary: #663399;
//	};
func CSS(selector string, colors []scheme.NamedColor) string {
	if strings.TrimSpace(selector) == "" {
		selector = DefaultSelector
	}

	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {")
	for _, c := range colors {
		b.WriteString("\n\t--")
		b.WriteString(c.Name)
		b.WriteString(": ")
		b.WriteString(c.Color.Hex())
		b.WriteString(";")
	}
	b.WriteString("\n};")
	return b.String()
}
