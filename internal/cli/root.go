// Package cli provides the colorscheme command tree.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opencode-ai/colorscheme/internal/config"
	"github.com/opencode-ai/colorscheme/internal/logging"
	"github.com/opencode-ai/colorscheme/internal/scheme"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

type rootOptions struct {
	scheme  schemeValue
	primary string
	vars    []string
	cfgFile string
	verbose bool

	// invoked is set once flags were accepted and a command started running;
	// errors before that point are printed with usage.
	invoked bool

	cfg    *config.Config
	logger zerolog.Logger
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	cmd, opts := newRootCmd()
	if err := execute(cmd, opts); err != nil {
		return 1
	}
	return 0
}

func execute(cmd *cobra.Command, opts *rootOptions) error {
	executed, err := cmd.ExecuteC()
	if err == nil {
		return nil
	}

	errOut := cmd.ErrOrStderr()
	printError(errOut, err)
	if !opts.invoked && executed != nil {
		fmt.Fprint(errOut, "\n"+executed.UsageString())
	}
	return err
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{logger: zerolog.Nop()}
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "colorscheme -s SCHEME -p COLOR",
		Short: "Generate CSS color variables from a primary color",
		Long: `colorscheme derives related colors from a single primary color and prints
them as CSS custom properties.

Schemes:
` + schemeHelp(),
		Example: `  colorscheme -s triad -p '#f0af0a'
  colorscheme -s column -p rebeccapurple -e .theme
  colorscheme -s dyad -p 663399 -f scss --var prefix=brand-`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.invoked = true
			return runGenerate(cmd, opts)
		},
	}
	cmd.SetVersionTemplate(`{{printf "colorscheme version %s\n" .Version}}`)

	flags := cmd.Flags()
	flags.VarP(&opts.scheme, "scheme", "s", "color scheme to generate ("+strings.Join(scheme.Names(), "|")+")")
	flags.StringVarP(&opts.primary, "primary", "p", "", "primary scheme color (hex value or CSS color name)")
	flags.StringP("selector", "e", config.DefaultConfig().Selector, "css selector under which variables are declared")
	flags.StringP("format", "f", config.DefaultConfig().Format, "output format: css or a template name (see 'colorscheme formats')")
	flags.StringArrayVar(&opts.vars, "var", nil, "template variable as key=value (repeatable)")
	flags.Bool("preview", false, "print color swatches to stderr when it is a terminal")
	flags.BoolP("version", "V", false, "print version and exit")
	_ = cmd.MarkFlagRequired("scheme")
	_ = cmd.MarkFlagRequired("primary")

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&opts.cfgFile, "config", "", "config file (default is "+defaultConfigHint()+")")
	persistent.String("templates-dir", "", "extra directory searched first for format templates")
	persistent.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")

	_ = v.BindPFlag("selector", flags.Lookup("selector"))
	_ = v.BindPFlag("format", flags.Lookup("format"))
	_ = v.BindPFlag("preview", flags.Lookup("preview"))
	_ = v.BindPFlag("templates_dir", persistent.Lookup("templates-dir"))

	cmd.AddCommand(newFormatsCmd(opts))
	cmd.AddCommand(newNamesCmd(opts))
	cmd.AddCommand(newSchemesCmd(opts))

	return cmd, opts
}

func (o *rootOptions) load(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.Load(v, o.cfgFile)
	if err != nil {
		o.invoked = true
		return err
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging)
	if err != nil {
		o.invoked = true
		return err
	}

	o.cfg = cfg
	o.logger = logger
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug().Str("path", used).Msg("loaded config file")
	}
	return nil
}

func schemeHelp() string {
	var b strings.Builder
	for _, s := range scheme.All() {
		fmt.Fprintf(&b, "  %-11s %s\n", s.String(), s.Description())
	}
	return b.String()
}

func defaultConfigHint() string {
	if dir := config.DefaultConfigDir(); dir != "" {
		return dir + string(os.PathSeparator) + "config.yaml"
	}
	return "config.yaml in the user config directory"
}
