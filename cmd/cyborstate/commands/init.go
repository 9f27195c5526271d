package commands

import (
	"github.com/spf13/cobra"

	"github.com/cybornft/cyborstate/config"
	tmos "github.com/cybornft/cyborstate/libs/os"
)

// MakeInitCommand returns the command writing the default config file.
func MakeInitCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the home directory with a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := rt.Config
			if err := config.EnsureRoot(conf.RootDir); err != nil {
				return err
			}

			path := conf.ConfigFile()
			if tmos.FileExists(path) {
				// an existing file is kept, but it has to parse
				if _, err := config.ReadConfigFile(path); err != nil {
					return err
				}
				rt.Logger.Info("Found config file", "path", path)
				return nil
			}

			if err := config.WriteConfigFile(conf.RootDir, conf); err != nil {
				return err
			}
			rt.Logger.Info("Generated config file", "path", path)
			return nil
		},
	}
}
