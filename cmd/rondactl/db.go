package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rondaflow-backend/internal/config"
)

var dsnFlag = &cli.StringFlag{
	Name:     "dsn",
	EnvVars:  []string{"DATABASE_DSN"},
	Required: true,
	Usage:    "PostgreSQL connection string",
}

// openPool connects with a small pool; CLI commands run one statement at a time.
func openPool(c *cli.Context) (*pgxpool.Pool, error) {
	return postgres.NewPool(c.Context, config.DatabaseConfig{
		DSN:             c.String(dsnFlag.Name),
		MaxConns:        2,
		MinConns:        0,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
	})
}
