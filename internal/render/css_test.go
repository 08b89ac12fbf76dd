package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/colorscheme/internal/color"
	"github.com/opencode-ai/colorscheme/internal/scheme"
)

func TestCSS(t *testing.T) {
	colors := scheme.Generate(color.New(0xff, 0x00, 0x00), scheme.Dyad)

	got := CSS("", colors)
	require.Equal(t, ":root {\n\t--complement: #00ffff;\n\t--primary: #ff0000;\n};", got)
}

func TestCSSSelector(t *testing.T) {
	colors := scheme.Generate(color.New(0xf0, 0xaf, 0x0a), scheme.Triad)

	got := CSS(".theme", colors)
	lines := strings.Split(got, "\n")
	require.Equal(t, ".theme {", lines[0])
	require.Equal(t, []string{
		"\t--clockwise: #0af0af;",
		"\t--counterclockwise: #af0af0;",
		"\t--primary: #f0af0a;",
	}, lines[1:4])
	require.Equal(t, "};", lines[4])
}

func TestCSSColumn(t *testing.T) {
	primary, err := color.Parse("rebeccapurple")
	require.NoError(t, err)

	got := CSS(DefaultSelector, scheme.Generate(primary, scheme.Column))
	require.Contains(t, got, "--darker: #33194d;")
	require.Contains(t, got, "--lighter: #9966cc;")
	require.Contains(t, got, "--primary: #663399;")
}
