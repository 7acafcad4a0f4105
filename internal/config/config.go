// Package config holds the generator's runtime settings: defaults, flag
// binding and validation.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"

	"shireesh.com/ontogen/internal/logger"
)

var (
	ErrEmptyOutputDir  = errors.New("output directory must not be empty")
	ErrInvalidLogLevel = logger.ErrUnknownLevel
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then by the command line through [BindFlags].
type Config struct {
	OutputDir   string // Default: "." (the working directory).
	Interactive bool   // Prompt for missing names instead of printing usage.
	Describe    bool   // Print derived names as YAML and write nothing.
	Verbose     bool   // Forces LogLevel to "debug".
	LogLevel    string // Default: "warn".
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		OutputDir: ".",
		LogLevel:  "warn",
	}
}

// BindFlags registers every setting on fs, using the current values of cfg
// as defaults.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.OutputDir, "output-dir", "o", cfg.OutputDir, "Directory to write the .hpp/.cpp pair into")
	fs.BoolVarP(&cfg.Interactive, "interactive", "i", cfg.Interactive, "Prompt for missing class names")
	fs.BoolVar(&cfg.Describe, "describe", cfg.Describe, "Print the derived names as YAML without writing files")
	fs.BoolVarP(&cfg.Verbose, "verbose", "V", cfg.Verbose, "Enable debug logging")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
}

// Validate normalizes and checks cfg.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return ErrEmptyOutputDir
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.Verbose {
		c.LogLevel = "debug"
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
