// Package config loads colorscheme settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. COLORSCHEME_SELECTOR.
const EnvPrefix = "COLORSCHEME"

// Config holds settings that may come from any layer.
type Config struct {
	Selector     string        `mapstructure:"selector"`
	Format       string        `mapstructure:"format"`
	TemplatesDir string        `mapstructure:"templates_dir"`
	Preview      bool          `mapstructure:"preview"`
	Logging      LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls the stderr logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Selector: ":root",
		Format:   "css",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultConfigDir is where config.yaml is looked up when no file is given.
func DefaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "colorscheme")
	}
	return ""
}

// NewViper returns a viper instance with defaults and env bindings applied.
func NewViper() *viper.Viper {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("selector", defaults.Selector)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("templates_dir", defaults.TemplatesDir)
	v.SetDefault("preview", defaults.Preview)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (explicit path or the default location) into v
// and decodes the merged result. A missing default file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir := DefaultConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be corrected silently.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Selector) == "" {
		return fmt.Errorf("selector must not be empty")
	}
	if strings.TrimSpace(c.Format) == "" {
		return fmt.Errorf("format must not be empty")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging.format %q (expected console or json)", c.Logging.Format)
	}
	return nil
}
