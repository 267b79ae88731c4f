package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/rondaflow-backend/internal/client"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

const dayLayout = "2006-01-02"

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "download the manager dashboard workbook for a day",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api", Value: "http://localhost:8080", EnvVars: []string{"RONDAFLOW_API"}, Usage: "server base URL"},
			&cli.StringFlag{Name: "user", Aliases: []string{"u"}, Required: true, Usage: "manager username"},
			&cli.StringFlag{Name: "password", EnvVars: []string{"RONDAFLOW_PASSWORD"}, Usage: "password, if the account has one"},
			&cli.StringFlag{Name: "day", Value: "today", Usage: `YYYY-MM-DD or a phrase like "yesterday"`},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default: rondas-<day>.xlsx)"},
		},
		Action: runReport,
	}
}

func runReport(c *cli.Context) error {
	day, err := parseDay(c.String("day"), time.Now())
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		out = "rondas-" + day + ".xlsx"
	}

	api := client.New(c.String("api"))
	if _, err := api.Login(c.Context, c.String("user"), domain.RoleManager, c.String("password")); err != nil {
		return err
	}
	defer api.Logout(c.Context) //nolint:errcheck

	data, err := api.ExportXLSX(c.Context, day)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "wrote %s (%d bytes)\n", out, len(data))
	return nil
}

var dayParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// parseDay turns a date or a natural-language phrase into YYYY-MM-DD,
// relative to now.
func parseDay(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return now.Format(dayLayout), nil
	}
	if t, err := time.Parse(dayLayout, input); err == nil {
		return t.Format(dayLayout), nil
	}

	res, err := dayParser.Parse(strings.ToLower(input), now)
	if err != nil {
		return "", fmt.Errorf("parse day %q: %w", input, err)
	}
	if res == nil {
		return "", fmt.Errorf("parse day %q: unrecognized date", input)
	}
	return res.Time.Format(dayLayout), nil
}
