package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// DashboardInput selects the calendar day of the KPIs. An empty Day means
// today in the configured timezone.
type DashboardInput struct {
	Day string
}

// Snapshot is the dashboard payload.
type Snapshot struct {
	Day         time.Time
	Metrics     TodayMetrics
	Rounds      []RoundSummary
	RecentAudit []domain.AuditEntry
}

// Dashboard reads, in parallel, the latest rounds for the summary table, every
// round started on the selected day for the KPIs, the open rounds and the
// latest audit entries.
func (s *Service) Dashboard(ctx context.Context, input DashboardInput) (*Snapshot, error) {
	if _, err := managerFromCtx(ctx); err != nil {
		return nil, err
	}

	day, err := s.resolveDay(input.Day)
	if err != nil {
		return nil, err
	}

	var (
		recent  []domain.Round
		ofDay   []domain.Round
		open    []domain.Round
		entries []domain.AuditEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recent, err = s.rounds.List(gctx, domain.RoundFilter{Limit: RecentRounds})
		if err != nil {
			return fmt.Errorf("list rounds: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ofDay, err = s.listDay(gctx, day)
		if err != nil {
			return fmt.Errorf("list rounds of day: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		status := domain.RoundStatusOpen
		var err error
		open, err = s.rounds.List(gctx, domain.RoundFilter{Status: &status, Limit: RecentRounds})
		if err != nil {
			return fmt.Errorf("list open rounds: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, err = s.audit.ListRecent(gctx, RecentAudit)
		if err != nil {
			return fmt.Errorf("list audit: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard.Dashboard: %w", err)
	}

	metrics := Today(SummarizeAll(ofDay), day, s.loc)
	metrics.OpenRounds = 0
	for _, rd := range open {
		if rd.Status == domain.RoundStatusOpen {
			metrics.OpenRounds++
		}
	}

	return &Snapshot{
		Day:         day,
		Metrics:     metrics,
		Rounds:      SummarizeAll(recent),
		RecentAudit: entries,
	}, nil
}

// listDay returns every round started in [day, day+1) in the configured zone.
// Lists are capped per call, so it pages backwards by started_at. The upper
// bound of the next page is moved just past the oldest row seen, and rows
// already collected are skipped by ID, so rows sharing a timestamp are kept.
func (s *Service) listDay(ctx context.Context, day time.Time) ([]domain.Round, error) {
	from := day
	to := day.AddDate(0, 0, 1)

	var (
		out  []domain.Round
		seen = make(map[uuid.UUID]struct{})
	)
	for {
		upper := to
		page, err := s.rounds.List(ctx, domain.RoundFilter{StartedFrom: &from, StartedTo: &upper, Limit: RecentRounds})
		if err != nil {
			return nil, err
		}

		added := 0
		oldest := to
		for _, rd := range page {
			if rd.StartedAt.Before(oldest) {
				oldest = rd.StartedAt
			}
			if _, dup := seen[rd.ID]; dup {
				continue
			}
			seen[rd.ID] = struct{}{}
			out = append(out, rd)
			added++
		}

		if len(page) < RecentRounds || added == 0 {
			return out, nil
		}
		to = oldest.Add(time.Microsecond)
	}
}

// resolveDay parses YYYY-MM-DD as midnight in the configured zone.
func (s *Service) resolveDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		y, m, d := s.now().In(s.loc).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, s.loc), nil
	}
	day, err := time.ParseInLocation(time.DateOnly, raw, s.loc)
	if err != nil {
		return time.Time{}, domain.NewValidationError("day", "must be YYYY-MM-DD")
	}
	return day, nil
}
