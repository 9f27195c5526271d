package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/creachadair/atomicfile"

	tmos "github.com/cybornft/cyborstate/libs/os"
)

// defaultDirPerm is the default permissions used when creating directories.
const defaultDirPerm = 0700

var configTemplate *template.Template

func init() {
	var err error
	tmpl := template.New("configFileTemplate")
	if configTemplate, err = tmpl.Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

// EnsureRoot creates the root, config, and data directories if they don't
// exist.
func EnsureRoot(rootDir string) error {
	for _, dir := range []string{rootDir, filepath.Join(rootDir, defaultConfigDir), filepath.Join(rootDir, defaultDataDir)} {
		if err := tmos.EnsureDir(dir, defaultDirPerm); err != nil {
			return err
		}
	}
	return nil
}

// WriteConfigFile renders config using the template and writes it to the
// config file under rootDir.
// This function is called by cmd/cyborstate/commands/init.go
func WriteConfigFile(rootDir string, config *Config) error {
	return config.WriteToTemplate(filepath.Join(rootDir, defaultConfigFilePath))
}

// WriteToTemplate writes the config to the exact file specified by
// the path, in the default toml template and does not mangle the path
// or filename at all.
func (cfg *Config) WriteToTemplate(path string) error {
	var buffer bytes.Buffer

	if err := configTemplate.Execute(&buffer, cfg); err != nil {
		return err
	}

	if _, err := atomicfile.WriteAll(path, &buffer, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// ReadConfigFile decodes a config file written by WriteConfigFile (or by
// hand) on top of the defaults. Keys the file does not know are an error,
// which catches typos that viper would silently ignore.
func ReadConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}
	return cfg, nil
}

// Note: any changes to the comments/variables/mapstructure
// must be reflected in the appropriate struct in config/config.go
const defaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

# NOTE: Any path below can be absolute (e.g. "/var/lib/cyborstate/metrics.prom")
# or relative to the home directory (e.g. "data/cyborstate.prom"). The home
# directory is "$HOME/.cyborstate" by default, but could be changed via the
# $CYBORSTATE_HOME env variable or --home cmd flag.

#######################################################################
###                   Main Base Config Options                      ###
#######################################################################

# Output level for logging: "debug", "info", "warn" or "error"
log-level = "{{ .BaseConfig.LogLevel }}"

# Output format: 'plain' (text) or 'json'
log-format = "{{ .BaseConfig.LogFormat }}"

# What to do with bytes left over after the top level value has been decoded:
# * strict
#   - reject the input with a decode error
# * permissive
#   - ignore the leftover bytes, logging and counting them
trailing-bytes = "{{ .BaseConfig.TrailingBytes }}"

# Number of spaces used to pretty print the JSON output. 0 prints compact JSON.
indent = {{ .BaseConfig.Indent }}

# Accept a leading "0x" on hex input given to the command line tool.
accept-prefix = {{ .BaseConfig.AcceptPrefix }}

#######################################################################
###                 Instrumentation Config Options                  ###
#######################################################################
[instrumentation]

# When true, conversion metrics are collected with Prometheus.
prometheus = {{ .Instrumentation.Prometheus }}

# Instrumentation namespace
namespace = "{{ .Instrumentation.Namespace }}"

# File the collected metrics are written to when the command exits, in the
# format read by the node_exporter textfile collector. Empty disables it.
textfile = "{{ .Instrumentation.Textfile }}"
`
