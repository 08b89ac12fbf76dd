package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/colorscheme/internal/color"
	"github.com/opencode-ai/colorscheme/internal/logging"
	"github.com/opencode-ai/colorscheme/internal/preview"
	"github.com/opencode-ai/colorscheme/internal/render"
	"github.com/opencode-ai/colorscheme/internal/scheme"
	"github.com/opencode-ai/colorscheme/internal/templates"
)

const cssFormat = "css"

// isTerminal is swapped in tests.
var isTerminal = logging.IsTerminal

func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	primary, err := color.Parse(opts.primary)
	if err != nil {
		return &UserError{
			Err:      err,
			Hint:     "Use a hex value such as #663399 or f0a, or a CSS color name",
			NextStep: "colorscheme names",
		}
	}

	cfg := opts.cfg
	logger := opts.logger
	logger.Debug().
		Str("primary", primary.Hex()).
		Stringer("scheme", opts.scheme.value).
		Str("selector", cfg.Selector).
		Str("format", cfg.Format).
		Msg("generating color scheme")

	colors := scheme.Generate(primary, opts.scheme.value)

	output, err := renderOutput(cfg.Format, cfg.Selector, cfg.TemplatesDir, opts.vars, colors)
	if err != nil {
		return err
	}

	if cfg.Preview {
		errOut := cmd.ErrOrStderr()
		if isTerminal(errOut) {
			if err := preview.Render(errOut, opts.scheme.value.String(), colors); err != nil {
				logger.Warn().Err(err).Msg("failed to render preview")
			}
		} else {
			logger.Debug().Msg("skipping preview: stderr is not a terminal")
		}
	}

	_, err = io.WriteString(cmd.OutOrStdout(), output)
	return err
}

func renderOutput(format, selector, templatesDir string, rawVars []string, colors []scheme.NamedColor) (string, error) {
	format = strings.TrimSpace(format)
	if format == cssFormat {
		return render.CSS(selector, colors) + "\n", nil
	}

	vars, err := parseVars(rawVars)
	if err != nil {
		return "", err
	}

	tmpl, err := templates.Find(format, projectDir(), templatesDir)
	if err != nil {
		return "", &UserError{
			Err:      err,
			Hint:     "Pass css or the name of a format template",
			NextStep: "colorscheme formats",
		}
	}

	out, err := templates.RenderTemplate(tmpl, templates.NewData(selector, colors), vars)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}

func parseVars(raw []string) (map[string]string, error) {
	vars := make(map[string]string, len(raw))
	for _, entry := range raw {
		key, value, ok := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --var %q (expected key=value)", entry)
		}
		vars[key] = value
	}
	return vars, nil
}

func projectDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return dir
}
