// Package config provides Viper-based configuration loading for ansirun.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/badele/ansirun/internal/charset"
	"github.com/badele/ansirun/internal/types"
)

// RenderConfig controls how escape sequences are spelled and encoded.
type RenderConfig struct {
	// Order is "attributes-first" or "colors-first".
	Order string `mapstructure:"order"`
	// LegacyCodes zero-pads attribute codes (01, 04).
	LegacyCodes bool `mapstructure:"legacy_codes"`
	// Encoding is the character set of both input and output.
	Encoding string `mapstructure:"encoding"`
}

// Dialect returns the SGR dialect selected by the configuration.
//
// Precondition: Order must be a valid code order.
// Postcondition: Returns the dialect or a non-nil error.
func (r RenderConfig) Dialect() (types.Dialect, error) {
	order, err := types.ParseCodeOrder(r.Order)
	if err != nil {
		return types.Dialect{}, err
	}
	return types.Dialect{Order: order, LegacyCodes: r.LegacyCodes}, nil
}

// ScreenConfig sizes the simulated screen used by verification.
type ScreenConfig struct {
	Width int `mapstructure:"width"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Render  RenderConfig  `mapstructure:"render"`
	Screen  ScreenConfig  `mapstructure:"screen"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateRender(c.Render); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateScreen(c.Screen); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateRender(r RenderConfig) error {
	var errs []string
	if _, err := types.ParseCodeOrder(r.Order); err != nil {
		errs = append(errs, fmt.Sprintf("render.order must be one of [attributes-first, colors-first], got %q", r.Order))
	}
	if _, err := charset.Lookup(r.Encoding); err != nil {
		errs = append(errs, fmt.Sprintf("render.encoding must be one of [%s], got %q", strings.Join(charset.Names, ", "), r.Encoding))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateScreen(s ScreenConfig) error {
	if s.Width < 1 || s.Width > 1000 {
		return fmt.Errorf("screen.width must be 1-1000, got %d", s.Width)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with ANSIRUN_ prefix
	v.SetEnvPrefix("ANSIRUN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("render.order", "attributes-first")
	v.SetDefault("render.legacy_codes", false)
	v.SetDefault("render.encoding", "utf8")

	v.SetDefault("screen.width", 80)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}
