package dashboard

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// RoundSummary is the listing view of a round.
type RoundSummary struct {
	ID              uuid.UUID
	Status          domain.RoundStatus
	AnalystID       uuid.UUID
	AnalystName     string
	TemplateName    string
	TemplateVersion int
	StartedAt       time.Time
	FinishedAt      *time.Time
	PercentComplete int
	TotalItems      int
	OKCount         int
	IncidentCount   int
	OpenIncidents   int
	TotalPhotos     int
	TotalPings      int
}

// TodayMetrics are the KPIs of one local calendar day.
type TodayMetrics struct {
	RoundsToday        int
	OpenRounds         int
	IncidentsToday     int
	AvgDurationMinutes int
	PingsToday         int
}

// Summarize projects a round into its counters. A round without items is 0%
// complete.
func Summarize(rd domain.Round) RoundSummary {
	s := RoundSummary{
		ID:              rd.ID,
		Status:          rd.Status,
		AnalystID:       rd.AnalystID,
		AnalystName:     rd.AnalystName,
		TemplateName:    rd.TemplateName,
		TemplateVersion: rd.TemplateVersion,
		StartedAt:       rd.StartedAt,
		FinishedAt:      rd.FinishedAt,
		TotalItems:      len(rd.Answers),
		TotalPhotos:     rd.PhotoCount(),
		TotalPings:      len(rd.Pings),
	}

	pending := 0
	for _, a := range rd.Answers {
		switch a.Status {
		case domain.AnswerStatusOK:
			s.OKCount++
		case domain.AnswerStatusIncident:
			s.IncidentCount++
		default:
			pending++
		}
	}

	if s.TotalItems > 0 {
		s.PercentComplete = int(math.Round(float64(s.TotalItems-pending) / float64(s.TotalItems) * 100))
	}
	if rd.IsOpen() {
		s.OpenIncidents = s.IncidentCount
	}
	return s
}

// SummarizeAll projects every round, keeping order.
func SummarizeAll(rounds []domain.Round) []RoundSummary {
	out := make([]RoundSummary, len(rounds))
	for i := range rounds {
		out[i] = Summarize(rounds[i])
	}
	return out
}

// Today aggregates the rounds started on day's calendar date in loc. Open
// rounds are counted regardless of their start date.
func Today(summaries []RoundSummary, day time.Time, loc *time.Location) TodayMetrics {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := day.In(loc).Date()

	var (
		metrics      TodayMetrics
		finished     int
		totalMinutes float64
	)
	for _, s := range summaries {
		if s.Status == domain.RoundStatusOpen {
			metrics.OpenRounds++
		}

		sy, sm, sd := s.StartedAt.In(loc).Date()
		if sy != y || sm != m || sd != d {
			continue
		}

		metrics.RoundsToday++
		metrics.IncidentsToday += s.IncidentCount
		metrics.PingsToday += s.TotalPings

		if s.FinishedAt != nil {
			finished++
			totalMinutes += math.Max(0, s.FinishedAt.Sub(s.StartedAt).Minutes())
		}
	}

	if finished > 0 {
		metrics.AvgDurationMinutes = int(math.Round(totalMinutes / float64(finished)))
	}
	return metrics
}
