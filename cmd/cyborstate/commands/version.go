package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cybornft/cyborstate/libs/json"
	"github.com/cybornft/cyborstate/version"
)

const versionCommandName = "version"

// MakeVersionCommand returns the command printing version info.
func MakeVersionCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   versionCommandName,
		Short: "Show version info",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Version)
				return err
			}
			bz, err := json.MarshalIndent(version.Get(), "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return err
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show schema version and git commit")
	return cmd
}
