package commands

import (
	"fmt"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cybornft/cyborstate/config"
	"github.com/cybornft/cyborstate/convert"
	"github.com/cybornft/cyborstate/libs/cli"
	"github.com/cybornft/cyborstate/libs/log"
	tmos "github.com/cybornft/cyborstate/libs/os"
)

// EnvPrefix prefixes the environment variables read by the command line
// tool, e.g. CYBORSTATE_HOME or CYBORSTATE_LOG_LEVEL.
const EnvPrefix = "CYBORSTATE"

// Runtime carries what the subcommands share. RootCommand fills it in once
// flags, environment and config file have been parsed.
type Runtime struct {
	Config  *config.Config
	Logger  log.Logger
	Metrics *convert.Metrics

	// Registry is set when prometheus instrumentation is on.
	Registry *prometheus.Registry
}

// NewRuntime returns a Runtime with a nop logger and nop metrics.
func NewRuntime(conf *config.Config) *Runtime {
	return &Runtime{
		Config:  conf,
		Logger:  log.NewNopLogger(),
		Metrics: convert.NopMetrics(),
	}
}

// RootCommand constructs the root command-line entry point. Flags, the
// environment and the config file are parsed into rt before any subcommand
// other than version runs.
func RootCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cyborstate",
		Short: "Decode hex encoded cybor NFT contract state into JSON",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == versionCommandName {
				return nil
			}

			conf, err := ParseConfig(rt.Config)
			if err != nil {
				return err
			}
			rt.Config = conf

			logger, err := log.NewLogger(cmd.ErrOrStderr(), conf.LogFormat, conf.LogLevel)
			if err != nil {
				return err
			}
			rt.Logger = logger

			if conf.Instrumentation.Prometheus {
				rt.Registry = prometheus.NewRegistry()
				rt.Metrics = convert.PrometheusMetrics(rt.Registry, conf.Instrumentation.Namespace)
			}
			return nil
		},
	}
	cmd.PersistentFlags().String("log-level", rt.Config.LogLevel, "log level")
	cmd.PersistentFlags().String("log-format", rt.Config.LogFormat, "log format (plain|json)")
	return cli.PrepareBaseCmd(cmd, EnvPrefix, "")
}

// ParseConfig retrieves the default environment configuration and validates
// it.
func ParseConfig(conf *config.Config) (*config.Config, error) {
	if err := viper.Unmarshal(conf); err != nil {
		return nil, err
	}
	conf.SetRoot(conf.RootDir)
	if err := conf.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("error in config file: %w", err)
	}
	return conf, nil
}

// flushMetrics writes the collected metrics to the configured text file.
func (rt *Runtime) flushMetrics() {
	path := rt.Config.Instrumentation.TextfilePath(rt.Config.RootDir)
	if rt.Registry == nil || path == "" {
		return
	}
	if err := tmos.EnsureDir(filepath.Dir(path), 0700); err != nil {
		rt.Logger.Error("failed to create metrics directory", "path", path, "err", err)
		return
	}
	if err := prometheus.WriteToTextfile(path, rt.Registry); err != nil {
		rt.Logger.Error("failed to write metrics", "path", path, "err", err)
	}
}
