package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/rondaflow-backend/internal/config"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "inspect server configuration",
		Subcommands: []*cli.Command{
			{
				Name:  "env",
				Usage: "list the environment variables the server reads",
				Action: func(c *cli.Context) error {
					return config.Describe(c.App.Writer)
				},
			},
			{
				Name:  "check",
				Usage: "load and validate a config file plus environment",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						EnvVars: []string{"CONFIG_PATH"},
						Usage:   "YAML config file; empty reads environment only",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.LoadPath(c.String("file"))
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "ok: listen %s:%d, sessions=%s, storage=%s, timezone=%s\n",
						cfg.Server.Host, cfg.Server.Port, cfg.Auth.SessionStore, cfg.Storage.Backend, cfg.Tracking.Location)
					return nil
				},
			},
		},
	}
}
