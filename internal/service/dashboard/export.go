package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	roundsSheet = "Rounds"
	todaySheet  = "Today"
)

var roundsHeader = []string{
	"Round ID",
	"Analyst",
	"Template",
	"Version",
	"Status",
	"Started at",
	"Finished at",
	"Complete %",
	"Items",
	"OK",
	"Incidents",
	"Open incidents",
	"Photos",
	"Pings",
}

// ExportXLSX renders the dashboard for day as a workbook with a Rounds sheet
// and a Today sheet.
func (s *Service) ExportXLSX(ctx context.Context, input DashboardInput) ([]byte, error) {
	snap, err := s.Dashboard(ctx, input)
	if err != nil {
		return nil, err
	}

	data, err := s.renderWorkbook(snap)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ExportXLSX: %w", err)
	}

	s.log.InfoContext(ctx, "dashboard exported",
		slog.String("day", snap.Day.Format(time.DateOnly)),
		slog.Int("rounds", len(snap.Rounds)),
		slog.Int("bytes", len(data)))

	return data, nil
}

func (s *Service) renderWorkbook(snap *Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", roundsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := writeRow(f, roundsSheet, 1, toAny(roundsHeader)); err != nil {
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(roundsHeader), 1)
	if err := f.SetCellStyle(roundsSheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("set header style: %w", err)
	}

	for i, r := range snap.Rounds {
		finished := ""
		if r.FinishedAt != nil {
			finished = r.FinishedAt.In(s.loc).Format(time.DateTime)
		}
		row := []any{
			r.ID.String(),
			r.AnalystName,
			r.TemplateName,
			r.TemplateVersion,
			string(r.Status),
			r.StartedAt.In(s.loc).Format(time.DateTime),
			finished,
			r.PercentComplete,
			r.TotalItems,
			r.OKCount,
			r.IncidentCount,
			r.OpenIncidents,
			r.TotalPhotos,
			r.TotalPings,
		}
		if err := writeRow(f, roundsSheet, i+2, row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(roundsSheet, "A", "A", 38); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	if _, err := f.NewSheet(todaySheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	kpis := [][]any{
		{"Day", snap.Day.Format(time.DateOnly)},
		{"Rounds today", snap.Metrics.RoundsToday},
		{"Open rounds", snap.Metrics.OpenRounds},
		{"Incidents today", snap.Metrics.IncidentsToday},
		{"Average duration (min)", snap.Metrics.AvgDurationMinutes},
		{"Pings today", snap.Metrics.PingsToday},
	}
	for i, row := range kpis {
		if err := writeRow(f, todaySheet, i+1, row); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(todaySheet, "A1", fmt.Sprintf("A%d", len(kpis)), headerStyle); err != nil {
		return nil, fmt.Errorf("set kpi style: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
