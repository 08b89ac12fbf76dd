package cli

import (
	"github.com/opencode-ai/colorscheme/internal/scheme"
)

// schemeValue adapts scheme.Scheme to pflag.Value so unknown names fail
// during flag parsing.
type schemeValue struct {
	value scheme.Scheme
	set   bool
}

func (s *schemeValue) String() string {
	if !s.set {
		return ""
	}
	return s.value.String()
}

func (s *schemeValue) Set(name string) error {
	parsed, err := scheme.Parse(name)
	if err != nil {
		return err
	}
	s.value = parsed
	s.set = true
	return nil
}

func (s *schemeValue) Type() string {
	return "SCHEME"
}
