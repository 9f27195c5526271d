package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/cybornft/cyborstate/convert"
	"github.com/cybornft/cyborstate/libs/log"
)

const (
	// LogFormatPlain is a format for human readable text
	LogFormatPlain = log.LogFormatPlain
	// LogFormatJSON is a format for json output
	LogFormatJSON = log.LogFormatJSON

	// maxIndent bounds the pretty print indent width.
	maxIndent = 8
)

// NOTE: Most of the structs & relevant comments + the
// default configuration options were used to manually
// generate the config.toml. Please reflect any changes
// made here in the defaultConfigTemplate constant in
// config/toml.go
// NOTE: libs/cli must know to look in the config dir!
var (
	DefaultCyborstateDir = ".cyborstate"
	defaultConfigDir     = "config"
	defaultDataDir       = "data"

	defaultConfigFileName = "config.toml"
	defaultConfigFilePath = filepath.Join(defaultConfigDir, defaultConfigFileName)

	defaultTextfilePath = filepath.Join(defaultDataDir, "cyborstate.prom")
)

// Config defines the top level configuration of the cyborstate tools.
type Config struct {
	// Top level options use an anonymous struct
	BaseConfig `mapstructure:",squash"`

	// Options for metrics reporting
	Instrumentation *InstrumentationConfig `mapstructure:"instrumentation" toml:"instrumentation"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig:      DefaultBaseConfig(),
		Instrumentation: DefaultInstrumentationConfig(),
	}
}

// TestConfig returns a configuration that can be used for testing
func TestConfig() *Config {
	return &Config{
		BaseConfig:      TestBaseConfig(),
		Instrumentation: TestInstrumentationConfig(),
	}
}

// SetRoot sets the RootDir for all Config structs
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *Config) ValidateBasic() error {
	if err := cfg.BaseConfig.ValidateBasic(); err != nil {
		return err
	}
	return errors.Wrap(
		cfg.Instrumentation.ValidateBasic(),
		"error in [instrumentation] section",
	)
}

//-----------------------------------------------------------------------------
// BaseConfig

// BaseConfig defines the top level options.
type BaseConfig struct {
	// The root directory for the config file and metrics output.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home" toml:"-"`

	// Output level for logging: debug | info | warn | error
	LogLevel string `mapstructure:"log-level" toml:"log-level"`

	// Output format: 'plain' (text) or 'json'
	LogFormat string `mapstructure:"log-format" toml:"log-format"`

	// What to do with bytes left after the top level value:
	// strict (reject) | permissive (ignore)
	TrailingBytes string `mapstructure:"trailing-bytes" toml:"trailing-bytes"`

	// Number of spaces used to pretty print JSON output. 0 prints compact
	// JSON on a single line.
	Indent int `mapstructure:"indent" toml:"indent"`

	// Accept a leading "0x" on hex input given to the command line tool.
	AcceptPrefix bool `mapstructure:"accept-prefix" toml:"accept-prefix"`
}

// DefaultBaseConfig returns a default base configuration.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		LogLevel:      log.LogLevelInfo,
		LogFormat:     LogFormatPlain,
		TrailingBytes: string(convert.TrailingStrict),
		Indent:        0,
		AcceptPrefix:  true,
	}
}

// TestBaseConfig returns a base configuration for testing.
func TestBaseConfig() BaseConfig {
	cfg := DefaultBaseConfig()
	cfg.LogLevel = log.LogLevelDebug
	return cfg
}

// ConfigFile returns the full path to the config.toml file
func (cfg BaseConfig) ConfigFile() string {
	return rootify(defaultConfigFilePath, cfg.RootDir)
}

// TrailingPolicy returns the parsed trailing bytes policy.
func (cfg BaseConfig) TrailingPolicy() (convert.TrailingPolicy, error) {
	return convert.ParseTrailingPolicy(cfg.TrailingBytes)
}

// IndentString returns the indent passed to the converter.
func (cfg BaseConfig) IndentString() string {
	return strings.Repeat(" ", cfg.Indent)
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg BaseConfig) ValidateBasic() error {
	switch strings.ToLower(cfg.LogFormat) {
	case log.LogFormatPlain, log.LogFormatText, log.LogFormatJSON:
	default:
		return errors.New("unknown log format (must be 'plain', 'text' or 'json')")
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	if _, err := cfg.TrailingPolicy(); err != nil {
		return err
	}
	if cfg.Indent < 0 || cfg.Indent > maxIndent {
		return fmt.Errorf("indent must be between 0 and %d, got %d", maxIndent, cfg.Indent)
	}
	return nil
}

//-----------------------------------------------------------------------------
// InstrumentationConfig

// InstrumentationConfig defines the configuration for metrics reporting.
type InstrumentationConfig struct {
	// When true, conversion metrics are collected with Prometheus.
	Prometheus bool `mapstructure:"prometheus" toml:"prometheus"`

	// Instrumentation namespace.
	Namespace string `mapstructure:"namespace" toml:"namespace"`

	// File the collected metrics are written to when the command exits, in
	// the text format read by the node_exporter textfile collector. Relative
	// paths are resolved against the home directory. Empty disables it.
	Textfile string `mapstructure:"textfile" toml:"textfile"`
}

// DefaultInstrumentationConfig returns a default configuration for metrics
// reporting.
func DefaultInstrumentationConfig() *InstrumentationConfig {
	return &InstrumentationConfig{
		Prometheus: false,
		Namespace:  "cyborstate",
		Textfile:   "",
	}
}

// TestInstrumentationConfig returns a default configuration for metrics
// reporting.
func TestInstrumentationConfig() *InstrumentationConfig {
	return DefaultInstrumentationConfig()
}

// TextfilePath returns the full path of the metrics text file, or "" when
// none is configured.
func (cfg *InstrumentationConfig) TextfilePath(root string) string {
	if cfg.Textfile == "" {
		return ""
	}
	return rootify(cfg.Textfile, root)
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *InstrumentationConfig) ValidateBasic() error {
	if cfg.Prometheus && cfg.Namespace == "" {
		return errors.New("namespace can't be empty when prometheus is enabled")
	}
	if cfg.Textfile != "" && !cfg.Prometheus {
		return errors.New("textfile requires prometheus = true")
	}
	return nil
}

//-----------------------------------------------------------------------------
// Utils

// helper function to make config creation independent of root dir
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
