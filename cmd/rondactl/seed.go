package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres/sector"
	"github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres/template"
	"github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/rondaflow-backend/internal/app/seeder"
)

// Compile-time interface assertions.
var (
	_ seeder.UserRepo     = (*user.Repo)(nil)
	_ seeder.SectorRepo   = (*sector.Repo)(nil)
	_ seeder.TemplateRepo = (*template.Repo)(nil)
	_ seeder.TxManager    = (*postgres.TxManager)(nil)
)

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "load users, sectors and templates from a YAML fixture",
		Flags: []cli.Flag{
			dsnFlag,
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "fixture YAML file"},
			&cli.StringFlag{Name: "seeder-config", Usage: "seeder YAML config file"},
			&cli.IntFlag{Name: "fake-analysts", Usage: "generate N extra analysts"},
			&cli.StringFlag{Name: "phase", Usage: "comma-separated phases to run (default: all)"},
			&cli.BoolFlag{Name: "dry-run", Usage: "parse the fixture without writing"},
		},
		Action: runSeed,
	}
}

func runSeed(c *cli.Context) error {
	logger := loggerFrom(c)

	cfg, err := seeder.LoadConfig(c.String("seeder-config"))
	if err != nil {
		return err
	}
	if c.IsSet("file") {
		cfg.FixturePath = c.String("file")
	}
	if c.IsSet("fake-analysts") {
		cfg.FakeAnalysts = c.Int("fake-analysts")
	}
	if c.Bool("dry-run") {
		cfg.DryRun = true
	}

	var fixture *seeder.Fixture
	if cfg.FixturePath != "" {
		fixture, err = seeder.LoadFixture(cfg.FixturePath)
		if err != nil {
			return err
		}
	} else if cfg.FakeAnalysts == 0 {
		return fmt.Errorf("nothing to seed: pass --file or --fake-analysts")
	}

	var phases []string
	if p := c.String("phase"); p != "" {
		for _, ph := range strings.Split(p, ",") {
			phases = append(phases, strings.TrimSpace(ph))
		}
	}

	pool, err := openPool(c)
	if err != nil {
		return err
	}
	defer pool.Close()

	repos := seeder.Repos{
		Users:     user.New(pool),
		Sectors:   sector.New(pool),
		Templates: template.New(pool),
		Tx:        postgres.NewTxManager(pool),
	}

	pipeline := seeder.NewPipeline(logger, repos, fixture, *cfg)
	if err := pipeline.Run(c.Context, phases); err != nil {
		return err
	}

	results := pipeline.Results()
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r := results[name]
		fmt.Fprintf(c.App.Writer, "%-10s inserted=%d skipped=%d errors=%d (%s)\n",
			name, r.Inserted, r.Skipped, r.Errors, r.Duration.Round(time.Millisecond))
	}

	if pipeline.HasErrors() {
		return fmt.Errorf("seed finished with errors")
	}
	return nil
}
