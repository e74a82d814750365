// Package config provides configuration management for the filterargv CLI.
//
// Configuration is loaded from three sources with the following precedence
// (highest to lowest):
//  1. CLI flags
//  2. Environment variables (FILTERARGV_ prefix)
//  3. Config file (.filterargv.yaml)
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	filterargv "github.com/cardinalby/go-filter-argv"
)

// Supported log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Supported log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Supported output formats for the filtered arguments.
const (
	OutputLines = "lines"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Config keys shared by flags, environment variables and the config file.
const (
	KeyKeepLonelyDashes = "keep-lonely-dashes"
	KeyAssignments      = "assignments"
	KeyFlags            = "flags"
	KeyStandardArgs     = "standard-args"
	KeyOutput           = "output"
	KeyLogLevel         = "log-level"
	KeyLogFormat        = "log-format"
	KeyQuiet            = "quiet"
)

// Config is the resolved configuration of one filterargv invocation.
type Config struct {
	// Options select the argument kinds that are printed.
	filterargv.Options `mapstructure:",squash"`

	// Output is one of OutputLines, OutputJSON, OutputYAML.
	Output string `mapstructure:"output"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log-level"`

	// LogFormat is one of text, json.
	LogFormat string `mapstructure:"log-format"`

	// Quiet raises the log level to error.
	Quiet bool `mapstructure:"quiet"`

	// ConfigFile is the config file that was read, empty if none.
	ConfigFile string `mapstructure:"-"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Options:   filterargv.DefaultOptions(),
		Output:    OutputLines,
		LogLevel:  LogLevelInfo,
		LogFormat: LogFormatText,
	}
}

var (
	logLevels  = []string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
	logFormats = []string{LogFormatText, LogFormatJSON}
	outputs    = []string{OutputLines, OutputJSON, OutputYAML}
)

// Validate checks the CLI settings and normalizes Options.Assignments.
// An invalid Assignments value is reported as *filterargv.OptionsError.
func (c *Config) Validate() error {
	if err := checkOneOf("log level", c.LogLevel, logLevels); err != nil {
		return err
	}
	if err := checkOneOf("log format", c.LogFormat, logFormats); err != nil {
		return err
	}
	if err := checkOneOf("output", c.Output, outputs); err != nil {
		return err
	}

	opts, err := c.Options.Normalize()
	if err != nil {
		return err
	}
	c.Options = opts

	return nil
}

func checkOneOf(name, value string, valid []string) error {
	if slices.Contains(valid, value) {
		return nil
	}

	return fmt.Errorf("invalid %s %q: must be one of %s", name, value, strings.Join(valid, ", "))
}

// EffectiveLogLevel is LogLevel, or error when Quiet is set.
func (c *Config) EffectiveLogLevel() string {
	if c.Quiet {
		return LogLevelError
	}

	return c.LogLevel
}

const envPrefix = "FILTERARGV"

// Load resolves the configuration of cmd. For every key the first of these wins:
// a flag set on the command line, a FILTERARGV_* environment variable (dashes become
// underscores), the config file, Default().
// configFile must exist if given, otherwise .filterargv.yaml is looked up in the
// working directory and in ~/.config/filterargv.
func Load(cmd *cobra.Command, configFile string) (*Config, error) {
	v := viper.New()

	for key, value := range defaultValues() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	if err := bindCommandFlags(v, cmd); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// defaultValues registers every key, AutomaticEnv only resolves known keys on Unmarshal
func defaultValues() map[string]any {
	def := Default()

	return map[string]any{
		KeyKeepLonelyDashes: def.KeepLonelyDashes,
		KeyAssignments:      string(def.Assignments),
		KeyFlags:            def.Flags,
		KeyStandardArgs:     def.StandardArgs,
		KeyOutput:           def.Output,
		KeyLogLevel:         def.LogLevel,
		KeyLogFormat:        def.LogFormat,
		KeyQuiet:            def.Quiet,
	}
}

func readConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %q: %w", configFile, err)
		}

		return nil
	}

	v.SetConfigName(".filterargv")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "filterargv"))
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil, errors.As(err, &notFound):
		return nil
	default:
		return fmt.Errorf("parsing config file: %w", err)
	}
}

// bindCommandFlags makes the flags of cmd, including the persistent flags inherited
// from its parents, override the other sources when they are set.
func bindCommandFlags(v *viper.Viper, cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	flagSets := []*pflag.FlagSet{cmd.Flags()}
	for c := cmd; c != nil; c = c.Parent() {
		flagSets = append(flagSets, c.PersistentFlags())
	}

	for _, fs := range flagSets {
		if err := v.BindPFlags(fs); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}
	}

	return nil
}

type ctxKey struct{}

// NewContext returns a child context carrying cfg.
func NewContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the Config stored by NewContext or Default().
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}

	return Default()
}
