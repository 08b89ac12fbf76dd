package templates

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/opencode-ai/colorscheme/internal/scheme"
)

// NewData builds template data from a generated scheme.
func NewData(selector string, colors []scheme.NamedColor) Data {
	entries := make([]Entry, 0, len(colors))
	for _, c := range colors {
		hsl := c.Color.HSL()
		entries = append(entries, Entry{
			Name:       c.Name,
			Hex:        c.Color.Hex(),
			R:          c.Color.R,
			G:          c.Color.G,
			B:          c.Color.B,
			Hue:        hsl.H,
			Saturation: hsl.S,
			Lightness:  hsl.L,
		})
	}
	return Data{Selector: selector, Colors: entries}
}

// RenderTemplate renders a template with the provided variables.
func RenderTemplate(tmpl *Template, data Data, vars map[string]string) (string, error) {
	if tmpl == nil {
		return "", fmt.Errorf("template is required")
	}

	values := make(map[string]string, len(vars))
	for key, value := range vars {
		values[key] = value
	}

	for _, variable := range tmpl.Variables {
		value := strings.TrimSpace(values[variable.Name])
		if value == "" {
			if variable.Default != "" {
				values[variable.Name] = variable.Default
				continue
			}
			if variable.Required {
				return "", fmt.Errorf("missing required variable %q", variable.Name)
			}
		}
	}
	data.Vars = values

	parsed, err := template.New(tmpl.Name).
		Funcs(template.FuncMap{
			"default": defaultValue,
			"upper":   strings.ToUpper,
			"kebab":   kebab,
			"camel":   camel,
			"percent": percent,
		}).
		Option("missingkey=zero").
		Parse(tmpl.Body)
	if err != nil {
		return "", fmt.Errorf("parse template %q: %w", tmpl.Name, err)
	}

	var out strings.Builder
	if err := parsed.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render template %q: %w", tmpl.Name, err)
	}

	return out.String(), nil
}

func defaultValue(def string, value any) string {
	if value == nil {
		return def
	}

	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return def
		}
		return v
	default:
		text := strings.TrimSpace(fmt.Sprint(v))
		if text == "" {
			return def
		}
		return text
	}
}

func kebab(s string) string {
	return strings.ToLower(strings.NewReplacer("_", "-", " ", "-").Replace(s))
}

// camel turns "text-primary" into "textPrimary".
func camel(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, part := range parts {
		part = strings.ToLower(part)
		if i > 0 && part != "" {
			part = strings.ToUpper(part[:1]) + part[1:]
		}
		parts[i] = part
	}
	return strings.Join(parts, "")
}

func percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}
