package main

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rondaflow-backend/migrations"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Flags: []cli.Flag{dsnFlag},
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: withMigrator(func(c *cli.Context, p *goose.Provider) error {
					results, err := p.Up(c.Context)
					if err != nil {
						return fmt.Errorf("migrate up: %w", err)
					}
					if len(results) == 0 {
						fmt.Fprintln(c.App.Writer, "no pending migrations")
					}
					for _, r := range results {
						fmt.Fprintf(c.App.Writer, "applied %d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration)
					}
					return nil
				}),
			},
			{
				Name:  "down",
				Usage: "roll back the most recent migration",
				Action: withMigrator(func(c *cli.Context, p *goose.Provider) error {
					r, err := p.Down(c.Context)
					if err != nil {
						return fmt.Errorf("migrate down: %w", err)
					}
					fmt.Fprintf(c.App.Writer, "rolled back %d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration)
					return nil
				}),
			},
			{
				Name:  "status",
				Usage: "list migrations and whether they are applied",
				Action: withMigrator(func(c *cli.Context, p *goose.Provider) error {
					statuses, err := p.Status(c.Context)
					if err != nil {
						return fmt.Errorf("migrate status: %w", err)
					}
					for _, s := range statuses {
						applied := "-"
						if !s.AppliedAt.IsZero() {
							applied = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
						}
						fmt.Fprintf(c.App.Writer, "%-8s %5d  %-20s %s\n", s.State, s.Source.Version, applied, s.Source.Path)
					}
					return nil
				}),
			},
		},
	}
}

func withMigrator(fn func(c *cli.Context, p *goose.Provider) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		pool, err := openPool(c)
		if err != nil {
			return err
		}
		defer pool.Close()

		provider, closeDB, err := postgres.NewMigrator(pool, migrations.FS)
		if err != nil {
			return err
		}
		defer closeDB() //nolint:errcheck

		return fn(c, provider)
	}
}
