package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/colorscheme/internal/color"
	"github.com/opencode-ai/colorscheme/internal/scheme"
	"github.com/opencode-ai/colorscheme/internal/templates"
)

func newFormatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.invoked = true

			tmpls, err := templates.LoadTemplatesFromSearchPaths(projectDir(), opts.cfg.TemplatesDir)
			if err != nil {
				return err
			}

			rows := [][]string{{cssFormat, "builtin", "CSS custom properties (default)"}}
			for _, tmpl := range tmpls {
				rows = append(rows, []string{tmpl.Name, tmpl.Source, tmpl.Description})
			}
			return writeTable(cmd.OutOrStdout(), []string{"NAME", "SOURCE", "DESCRIPTION"}, rows)
		},
	}
}

func newNamesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List accepted CSS color names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.invoked = true

			names := color.Names()
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				c, _ := color.Lookup(name)
				rows = append(rows, []string{name, c.Hex()})
			}
			return writeTable(cmd.OutOrStdout(), []string{"NAME", "HEX"}, rows)
		},
	}
}

func newSchemesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List color schemes and the variables they add",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.invoked = true

			rows := make([][]string, 0, len(scheme.All()))
			for _, s := range scheme.All() {
				generated := scheme.Generate(color.Color{}, s)
				derived := make([]string, 0, len(generated))
				for _, c := range generated {
					if c.Name == scheme.PrimaryName {
						continue
					}
					derived = append(derived, "--"+c.Name)
				}
				rows = append(rows, []string{s.String(), strings.Join(derived, ", "), s.Description()})
			}
			return writeTable(cmd.OutOrStdout(), []string{"NAME", "DERIVED", "DESCRIPTION"}, rows)
		},
	}
}

// writeTable prints space-aligned columns; cells must not contain tabs.
func writeTable(out io.Writer, headers []string, rows [][]string) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}
