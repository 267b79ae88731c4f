// Command rondactl is the operator and field tool for RondaFlow.
//
// Database commands (migrate, seed) connect directly with DATABASE_DSN.
// Field commands (track, simulate, report) talk to a running server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/rondaflow-backend/internal/app"
	"github.com/heartmarshall/rondaflow-backend/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "rondactl:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "rondactl",
		Usage:   "manage and exercise a RondaFlow deployment",
		Version: app.BuildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				EnvVars: []string{"LOG_LEVEL"},
				Usage:   "debug, info, warn or error",
			},
		},
		Commands: []*cli.Command{
			configCommand(),
			migrateCommand(),
			seedCommand(),
			trackCommand(),
			simulateCommand(),
			reportCommand(),
		},
	}
}

func loggerFrom(c *cli.Context) *slog.Logger {
	return app.NewLogger(config.LogConfig{Level: c.String("log-level"), Format: "text"})
}
