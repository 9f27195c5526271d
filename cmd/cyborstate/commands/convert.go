package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creachadair/atomicfile"
	"github.com/spf13/cobra"

	"github.com/cybornft/cyborstate/convert"
	tmos "github.com/cybornft/cyborstate/libs/os"
	"github.com/cybornft/cyborstate/types"
)

var errTooManyInputs = errors.New("give the hex input either as an argument or with --file, not both")

type conversionFlags struct {
	file string
	out  string
}

func (f *conversionFlags) register(cmd *cobra.Command, rt *Runtime) {
	cmd.Flags().StringVar(&f.file, "file", "", "read the hex input from this file (- for stdin)")
	cmd.Flags().StringVar(&f.out, "out", "", "write the JSON to this file instead of stdout")
	cmd.Flags().Int("indent", rt.Config.Indent, "pretty print with this many spaces (0 for compact output)")
	cmd.Flags().String("trailing-bytes", rt.Config.TrailingBytes, "strict|permissive handling of bytes after the value")
	cmd.Flags().Bool("accept-prefix", rt.Config.AcceptPrefix, `strip a leading "0x" from the input`)
}

// MakeStateCommand returns the command converting a full contract state.
func MakeStateCommand(rt *Runtime) *cobra.Command {
	var (
		flags conversionFlags
		owner string
	)
	cmd := &cobra.Command{
		Use:   "state [HEX]",
		Short: "Convert a hex encoded contract state to JSON",
		Long: `Convert a hex encoded contract state to JSON.

The input is read from the argument, from --file, or from stdin when neither
is given. With --owner only the token list of that owner is printed, in the
same form as the tokens command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ownerID *types.ActorID
			if owner != "" {
				id, err := types.ParseActorID(owner)
				if err != nil {
					return fmt.Errorf("invalid --owner: %w", err)
				}
				ownerID = &id
			}
			return runConversion(cmd, rt, &flags, args, func(c *convert.Converter, input string) (string, error) {
				if ownerID != nil {
					return c.OwnerTokensFromHex(input, *ownerID)
				}
				return c.StateFromHex(input)
			})
		},
	}
	flags.register(cmd, rt)
	cmd.Flags().StringVar(&owner, "owner", "", "print only the token list of this 0x prefixed owner id")
	return cmd
}

// MakeTokensCommand returns the command converting the token list of one
// owner.
func MakeTokensCommand(rt *Runtime) *cobra.Command {
	var flags conversionFlags
	cmd := &cobra.Command{
		Use:   "tokens [HEX]",
		Short: "Convert a hex encoded optional token list to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConversion(cmd, rt, &flags, args, (*convert.Converter).TokensByOwnerFromHex)
		},
	}
	flags.register(cmd, rt)
	return cmd
}

func runConversion(
	cmd *cobra.Command,
	rt *Runtime,
	flags *conversionFlags,
	args []string,
	run func(*convert.Converter, string) (string, error),
) error {
	defer rt.flushMetrics()

	conf := rt.Config
	policy, err := conf.TrailingPolicy()
	if err != nil {
		return err
	}

	input, err := readInput(cmd, flags.file, args)
	if err != nil {
		return err
	}
	input = strings.TrimSpace(input)
	if conf.AcceptPrefix {
		input = trimHexPrefix(input)
	}

	c := convert.NewConverter(
		convert.WithLogger(rt.Logger.With("module", "convert")),
		convert.WithMetrics(rt.Metrics),
		convert.WithTrailingBytes(policy),
		convert.WithIndent(conf.IndentString()),
	)
	out, err := run(c, input)
	if err != nil {
		return err
	}

	if flags.out == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	}
	if _, err := atomicfile.WriteAll(flags.out, strings.NewReader(out+"\n"), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", flags.out, err)
	}
	rt.Logger.Info("wrote output", "path", flags.out, "bytes", len(out)+1)
	return nil
}

func readInput(cmd *cobra.Command, file string, args []string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", errTooManyInputs
	case file == "" && len(args) == 1 && args[0] != tmos.StdinPath:
		return args[0], nil
	case file == "":
		file = tmos.StdinPath
	}
	bz, err := tmos.ReadFileOrStdin(file, cmd.InOrStdin())
	return string(bz), err
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
