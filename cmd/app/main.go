// Command app manages encrypted record fields: schema migrations, master key creation,
// key rotation and verification.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	// An interrupted rotation cancels its transaction and rolls back.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := &cli.Command{
		Name:     "app",
		Usage:    "Per-field envelope encryption for database records",
		Version:  version,
		Commands: getCommands(),
	}

	if err := root.Run(ctx, os.Args); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
