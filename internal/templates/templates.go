// Package templates provides output format templates for generated schemes.
package templates

// Template renders a scheme in a format other than plain CSS.
type Template struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Extension   string        `yaml:"extension,omitempty"`
	Body        string        `yaml:"body"`
	Variables   []TemplateVar `yaml:"variables,omitempty"`
	Tags        []string      `yaml:"tags,omitempty"`
	Source      string        // file path or "builtin"
}

// TemplateVar describes a user-supplied value referenced as .Vars.<name>.
type TemplateVar struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Default     string `yaml:"default,omitempty"`
	Required    bool   `yaml:"required"`
}

// Data is the value templates execute against.
type Data struct {
	Selector string
	Colors   []Entry
	Vars     map[string]string
}

// Entry is a single named color with its precomputed representations.
type Entry struct {
	Name       string
	Hex        string
	R          uint8
	G          uint8
	B          uint8
	Hue        float64
	Saturation float64
	Lightness  float64
}
