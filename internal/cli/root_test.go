package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/colorscheme/internal/color"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"COLORSCHEME_SELECTOR", "COLORSCHEME_FORMAT", "COLORSCHEME_PREVIEW", "COLORSCHEME_TEMPLATES_DIR", "COLORSCHEME_LOGGING_LEVEL", "COLORSCHEME_LOGGING_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	isolateConfig(t)

	cmd, opts := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := execute(cmd, opts)
	return stdout.String(), stderr.String(), err
}

func TestGenerateTriad(t *testing.T) {
	stdout, stderr, err := run(t, "--scheme", "triad", "--primary", "#f0af0a")
	require.NoError(t, err)
	require.Empty(t, stderr)
	require.Equal(t, ":root {\n\t--clockwise: #0af0af;\n\t--counterclockwise: #af0af0;\n\t--primary: #f0af0a;\n};\n", stdout)
}

func TestGenerateColumnNamedColor(t *testing.T) {
	stdout, _, err := run(t, "-s", "column", "-p", "rebeccapurple")
	require.NoError(t, err)
	require.Contains(t, stdout, "\t--darker: #33194d;")
	require.Contains(t, stdout, "\t--lighter: #9966cc;")
	require.Contains(t, stdout, "\t--primary: #663399;")
}

func TestGenerateSelector(t *testing.T) {
	stdout, _, err := run(t, "-s", "dyad", "-p", "ff0000", "--selector", ".theme")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, ".theme {\n"), stdout)
	require.Contains(t, stdout, "--complement: #00ffff;")
}

func TestGenerateTetrad(t *testing.T) {
	stdout, _, err := run(t, "-s", "tetrad", "-p", "#639")
	require.NoError(t, err)
	require.Equal(t, ":root {\n\t--clockwise: #993333;\n\t--complement: #669933;\n\t--counterclockwise: #339999;\n\t--primary: #663399;\n};\n", stdout)
}

func TestMissingPrimary(t *testing.T) {
	stdout, stderr, err := run(t, "-s", "triad")
	require.Error(t, err)
	require.Contains(t, err.Error(), "primary")
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Usage:")
}

func TestMissingScheme(t *testing.T) {
	stdout, _, err := run(t, "-p", "red")
	require.Error(t, err)
	require.Contains(t, err.Error(), "scheme")
	require.Empty(t, stdout)
}

func TestUnknownScheme(t *testing.T) {
	stdout, stderr, err := run(t, "-s", "Triad", "-p", "red")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown scheme "Triad"`)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Usage:")
}

func TestInvalidColor(t *testing.T) {
	for _, input := range []string{"notacolor", "#12"} {
		stdout, stderr, err := run(t, "-s", "dyad", "-p", input)
		require.Error(t, err)
		require.True(t, errors.Is(err, color.ErrInvalidColor))
		require.Contains(t, err.Error(), `"`+input+`"`)
		require.Empty(t, stdout)
		require.Contains(t, stderr, "Hint:")
		require.NotContains(t, stderr, "Usage:")
	}
}

func TestPrintErrorHint(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, &UserError{Err: errors.New("boom"), Hint: "do this", NextStep: "colorscheme names"})
	require.Equal(t, "Error: boom\nHint: do this\nTry: colorscheme names\n", buf.String())

	buf.Reset()
	printError(&buf, errors.New("plain"))
	require.Equal(t, "Error: plain\n", buf.String())
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { version = "dev" })

	stdout, _, err := run(t, "-V")
	require.NoError(t, err)
	require.Equal(t, "colorscheme version 1.2.3\n", stdout)
}

func TestFormatTemplate(t *testing.T) {
	stdout, _, err := run(t, "-s", "column", "-p", "rebeccapurple", "-f", "scss", "--var", "prefix=brand-")
	require.NoError(t, err)
	require.Equal(t, "$brand-darker: #33194d;\n$brand-lighter: #9966cc;\n$brand-primary: #663399;\n", stdout)
}

func TestFormatFromTemplatesDir(t *testing.T) {
	dir := t.TempDir()
	body := "name: plain\ndescription: name=hex lines\nbody: |\n  {{range .Colors}}{{.Name}}={{.Hex}}\n  {{end}}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain.yaml"), []byte(body), 0644))

	stdout, _, err := run(t, "-s", "dyad", "-p", "red", "-f", "plain", "--templates-dir", dir)
	require.NoError(t, err)
	require.Equal(t, "complement=#00ffff\nprimary=#ff0000\n", stdout)
}

func TestUnknownFormat(t *testing.T) {
	stdout, stderr, err := run(t, "-s", "dyad", "-p", "red", "-f", "nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown format "nope"`)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Try: colorscheme formats")
}

func TestInvalidVar(t *testing.T) {
	_, _, err := run(t, "-s", "dyad", "-p", "red", "-f", "scss", "--var", "prefix")
	require.Error(t, err)
	require.Contains(t, err.Error(), "key=value")
}

func TestConfigFileSelector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("selector: body\n"), 0644))

	stdout, _, err := run(t, "--config", path, "-s", "dyad", "-p", "red")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "body {\n"), stdout)

	stdout, _, err = run(t, "--config", path, "-s", "dyad", "-p", "red", "-e", "html")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "html {\n"), stdout)
}

func TestVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := run(t, "-v", "-s", "dyad", "-p", "red")
	require.NoError(t, err)
	require.Contains(t, stderr, "generating color scheme")
	require.NotContains(t, stdout, "generating")
}

func TestPreview(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	isTerminal = func(io.Writer) bool { return false }
	stdout, stderr, err := run(t, "--preview", "-s", "dyad", "-p", "red")
	require.NoError(t, err)
	require.Empty(t, stderr)
	require.Contains(t, stdout, "--primary: #ff0000;")

	isTerminal = func(io.Writer) bool { return true }
	stdout, stderr, err = run(t, "--preview", "-s", "dyad", "-p", "red")
	require.NoError(t, err)
	require.Contains(t, stderr, "--complement #00ffff")
	require.Contains(t, stdout, "--complement: #00ffff;")
}

func TestFormatsCommand(t *testing.T) {
	stdout, _, err := run(t, "formats")
	require.NoError(t, err)
	require.Contains(t, stdout, "NAME")
	for _, name := range []string{"css", "scss", "less", "json", "css-hsl"} {
		require.Contains(t, stdout, name)
	}
}

func TestNamesCommand(t *testing.T) {
	stdout, _, err := run(t, "names")
	require.NoError(t, err)
	require.Regexp(t, `rebeccapurple\s+#663399`, stdout)
	require.Regexp(t, `aliceblue\s+#f0f8ff`, stdout)
}

func TestSchemesCommand(t *testing.T) {
	stdout, _, err := run(t, "schemes")
	require.NoError(t, err)
	require.Regexp(t, `triad\s+--clockwise, --counterclockwise`, stdout)
	require.Regexp(t, `column\s+--darker, --lighter`, stdout)
	require.Regexp(t, `tetrad\s+--clockwise, --complement, --counterclockwise`, stdout)
}
