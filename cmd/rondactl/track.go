package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/rondaflow-backend/internal/client"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/internal/gps"
)

var apiFlags = []cli.Flag{
	&cli.StringFlag{Name: "api", Value: "http://localhost:8080", EnvVars: []string{"RONDAFLOW_API"}, Usage: "server base URL"},
	&cli.StringFlag{Name: "user", Aliases: []string{"u"}, Required: true, Usage: "username"},
	&cli.StringFlag{Name: "password", EnvVars: []string{"RONDAFLOW_PASSWORD"}, Usage: "password, if the account has one"},
}

func trackCommand() *cli.Command {
	defaults := gps.DefaultConfig()
	return &cli.Command{
		Name:  "track",
		Usage: "replay JSON-lines positions into the analyst's open round",
		Flags: append(append([]cli.Flag{}, apiFlags...),
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "JSON-lines file (default: stdin)"},
			&cli.BoolFlag{Name: "manual", Usage: "send every reading immediately with source manual"},
			&cli.BoolFlag{Name: "finalize", Usage: "finalize the round after the input ends"},
			&cli.Float64Flag{Name: "max-accuracy", Value: defaults.MaxAccuracyMeters, Usage: "reject readings less accurate than this (m)"},
			&cli.DurationFlag{Name: "min-interval", Value: defaults.MinInterval, Usage: "minimum time between automatic sends"},
			&cli.Float64Flag{Name: "min-displacement", Value: defaults.MinDisplacementMeters, Usage: "minimum movement between automatic sends (m)"},
		),
		Action: runTrack,
	}
}

func simulateCommand() *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "send synthetic positions to the analyst's open round",
		Flags: append(append([]cli.Flag{}, apiFlags...),
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: 5, Usage: "number of points"},
			&cli.DurationFlag{Name: "every", Value: time.Second, Usage: "pause between points"},
		),
		Action: runSimulate,
	}
}

// openRound logs in as an analyst and starts or continues the open round.
func openRound(c *cli.Context) (*client.Client, *client.Round, error) {
	api := client.New(c.String("api"))
	if _, err := api.Login(c.Context, c.String("user"), domain.RoleAnalyst, c.String("password")); err != nil {
		return nil, nil, err
	}
	round, err := api.StartOrContinue(c.Context)
	if err != nil {
		return nil, nil, err
	}
	fmt.Fprintf(c.App.Writer, "round %s (%s v%d, %s)\n", round.ID, round.TemplateName, round.TemplateVersion, round.Status)
	return api, round, nil
}

func runTrack(c *cli.Context) error {
	in := io.Reader(os.Stdin)
	if path := c.String("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	api, round, err := openRound(c)
	if err != nil {
		return err
	}

	sampler := gps.NewSampler(client.RoundSender{Client: api, RoundID: round.ID}, gps.Config{
		MaxAccuracyMeters:     c.Float64("max-accuracy"),
		MinInterval:           c.Duration("min-interval"),
		MinDisplacementMeters: c.Float64("min-displacement"),
	})

	manual := c.Bool("manual")
	err = readReadings(in, func(r gps.Reading) error {
		if err := c.Context.Err(); err != nil {
			return err
		}
		var res gps.Result
		if manual {
			res = sampler.CaptureNow(c.Context, r)
		} else {
			res = sampler.Observe(c.Context, r)
		}
		printResult(c.App.Writer, r, res)
		return nil
	})
	if err != nil {
		return err
	}

	if c.Bool("finalize") {
		closed, err := api.Finalize(c.Context, round.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "round %s %s\n", closed.ID, closed.Status)
	}
	return nil
}

func runSimulate(c *cli.Context) error {
	api, round, err := openRound(c)
	if err != nil {
		return err
	}

	sampler := gps.NewSampler(client.RoundSender{Client: api, RoundID: round.ID}, gps.DefaultConfig())
	every := c.Duration("every")

	for i := 1; i <= c.Int("count"); i++ {
		res := sampler.Simulated(c.Context, i)
		fmt.Fprintf(c.App.Writer, "#%d %s: %s\n", i, res.Status, res.Message)
		if res.Err != nil {
			if client.IsStatus(res.Err, 403) {
				return fmt.Errorf("simulated locations are disabled on this server")
			}
			return res.Err
		}
		if i < c.Int("count") {
			select {
			case <-c.Context.Done():
				return c.Context.Err()
			case <-time.After(every):
			}
		}
	}
	return nil
}

// readingLine is one JSON-lines record of the track input.
type readingLine struct {
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	AccuracyMeters *float64  `json:"accuracyMeters"`
	Timestamp      time.Time `json:"timestamp"`
}

// readReadings decodes JSON-lines positions and calls fn for each. Blank
// lines and lines starting with # are ignored.
func readReadings(r io.Reader, fn func(gps.Reading) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var rec readingLine
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if rec.Latitude == nil || rec.Longitude == nil {
			return fmt.Errorf("line %d: latitude and longitude are required", line)
		}
		if !gps.ValidCoordinate(*rec.Latitude, *rec.Longitude) {
			return fmt.Errorf("line %d: coordinate out of range", line)
		}

		if err := fn(gps.Reading{
			Latitude:       *rec.Latitude,
			Longitude:      *rec.Longitude,
			AccuracyMeters: rec.AccuracyMeters,
			Timestamp:      rec.Timestamp,
		}); err != nil {
			return err
		}
	}
	return sc.Err()
}

func printResult(w io.Writer, r gps.Reading, res gps.Result) {
	fmt.Fprintf(w, "%.6f,%.6f %s: %s", r.Latitude, r.Longitude, res.Status, res.Message)
	if res.Err != nil {
		fmt.Fprintf(w, " (%v)", res.Err)
	}
	fmt.Fprintln(w)
}
