package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cybornft/cyborstate/cmd/cyborstate/commands"
	"github.com/cybornft/cyborstate/config"
	"github.com/cybornft/cyborstate/convert"
	"github.com/cybornft/cyborstate/libs/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rt := commands.NewRuntime(config.DefaultConfig())
	rcmd := commands.RootCommand(rt)
	rcmd.AddCommand(
		commands.MakeStateCommand(rt),
		commands.MakeTokensCommand(rt),
		commands.MakeInitCommand(rt),
		commands.MakeVersionCommand(),
	)

	if err := cli.RunWithTrace(ctx, rcmd); err != nil {
		cancel()
		// the exit code tells scripts which stage rejected the input
		os.Exit(int(convert.KindOf(err)))
	}
}
