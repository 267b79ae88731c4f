package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/rondaflow-backend/internal/service/dashboard"
)

const xlsxMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type dashboardService interface {
	Dashboard(ctx context.Context, input dashboard.DashboardInput) (*dashboard.Snapshot, error)
	ExportXLSX(ctx context.Context, input dashboard.DashboardInput) ([]byte, error)
}

// DashboardHandler serves the manager dashboard.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

// Get handles GET /api/dashboard?day=YYYY-MM-DD.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Dashboard(r.Context(), dashboard.DashboardInput{Day: r.URL.Query().Get("day")})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardResponse(snap))
}

// Export handles GET /api/dashboard/export.xlsx?day=YYYY-MM-DD.
func (h *DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	data, err := h.svc.ExportXLSX(r.Context(), dashboard.DashboardInput{Day: day})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	name := "rondas.xlsx"
	if day != "" {
		name = fmt.Sprintf("rondas-%s.xlsx", day)
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	writeBytes(w, xlsxMime, data)
}

func (h *DashboardHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	writeDomainError(w, r, h.log, err)
}
