package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/m2de/getapi-site/cmd/getapi-site/commands"
	"github.com/m2de/getapi-site/internal/foundation/errors"
	"github.com/m2de/getapi-site/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("getapi-site"),
		kong.Description("Generate the static getapi website from provider recipes."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{Logger: slog.Default(), Context: ctx}
	if err := parser.Run(global, cli); err != nil {
		stop()
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
