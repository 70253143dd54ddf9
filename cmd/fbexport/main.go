package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/ctxlog"
	"github.com/michaelDinelle/FireBaseExportScript/cmd/fbexport/commands"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := &cli.Command{
		Name:    "fbexport",
		Usage:   "Resumable Firebase project data export tool",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "project",
				Aliases:  []string{"p"},
				Usage:    "Firebase project ID",
				Sources:  cli.EnvVars("FBEXPORT_PROJECT", "GCP_PROJECT"),
				Required: false, // Will be required for subcommands
			},
			&cli.StringFlag{
				Name:    "credentials",
				Usage:   "Service account key file path",
				Sources: cli.EnvVars("GOOGLE_APPLICATION_CREDENTIALS"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable verbose logging",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Setup logger
			level := slog.LevelInfo
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}
			if c.Bool("debug") {
				level = slog.LevelDebug - 1
			}

			logger := slog.New(clog.New(
				clog.WithWriter(os.Stderr),
				clog.WithLevel(level),
			))

			// Inject logger into context
			ctx = ctxlog.With(ctx, logger)

			return ctx, nil
		},
		Commands: []*cli.Command{
			commands.NewExportCommand(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Run(ctx, args)
}
