package templates

import (
	"fmt"
	"os"
	"path/filepath"
)

// TemplateSearchPaths returns template search directories in precedence order.
// extraDir, when set, is searched first.
func TemplateSearchPaths(projectDir, extraDir string) []string {
	paths := make([]string, 0, 4)
	if extraDir != "" {
		paths = append(paths, extraDir)
	}
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".colorscheme", "templates"))
	}

	if configDir, err := os.UserConfigDir(); err == nil && configDir != "" {
		paths = append(paths, filepath.Join(configDir, "colorscheme", "templates"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "colorscheme", "templates"))
	return paths
}

// LoadTemplatesFromSearchPaths loads templates from search paths with first-hit precedence,
// falling back to the builtin set.
func LoadTemplatesFromSearchPaths(projectDir, extraDir string) ([]*Template, error) {
	paths := TemplateSearchPaths(projectDir, extraDir)
	seen := make(map[string]*Template)
	order := make([]string, 0)

	for _, path := range paths {
		templates, err := LoadTemplatesFromDir(path)
		if err != nil {
			return nil, err
		}
		for _, tmpl := range templates {
			if _, exists := seen[tmpl.Name]; exists {
				continue
			}
			seen[tmpl.Name] = tmpl
			order = append(order, tmpl.Name)
		}
	}

	builtins, err := LoadBuiltinTemplates()
	if err != nil {
		return nil, err
	}
	for _, tmpl := range builtins {
		if _, exists := seen[tmpl.Name]; exists {
			continue
		}
		seen[tmpl.Name] = tmpl
		order = append(order, tmpl.Name)
	}

	resolved := make([]*Template, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}

	return resolved, nil
}

// Find resolves a template by name from the search paths.
func Find(name, projectDir, extraDir string) (*Template, error) {
	all, err := LoadTemplatesFromSearchPaths(projectDir, extraDir)
	if err != nil {
		return nil, err
	}
	for _, tmpl := range all {
		if tmpl.Name == name {
			return tmpl, nil
		}
	}
	return nil, fmt.Errorf("unknown format %q", name)
}
