package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/colorscheme/internal/scheme"
)

const swatchWidth = 36

// Styles pairs each swatch with its lipgloss style.
type Styles struct {
	Title    lipgloss.Style
	Swatches []lipgloss.Style
	Labels   []string
}

// BuildStyles converts swatch tokens into lipgloss styles for renderer r.
func BuildStyles(r *lipgloss.Renderer, swatches []Swatch) Styles {
	styles := Styles{
		Title:    r.NewStyle().Bold(true),
		Swatches: make([]lipgloss.Style, 0, len(swatches)),
		Labels:   make([]string, 0, len(swatches)),
	}
	for _, s := range swatches {
		styles.Swatches = append(styles.Swatches, r.NewStyle().
			Foreground(lipgloss.Color(s.Foreground)).
			Background(lipgloss.Color(s.Background)).
			Width(swatchWidth).
			Padding(0, 1))
		styles.Labels = append(styles.Labels, fmt.Sprintf("--%s %s", s.Name, s.Background))
	}
	return styles
}

// Render writes one swatch line per color to w.
func Render(w io.Writer, title string, colors []scheme.NamedColor) error {
	r := lipgloss.NewRenderer(w)
	styles := BuildStyles(r, Swatches(colors))

	lines := make([]string, 0, len(styles.Swatches)+1)
	if title != "" {
		lines = append(lines, styles.Title.Render(title))
	}
	for i, style := range styles.Swatches {
		lines = append(lines, style.Render(styles.Labels[i]))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
