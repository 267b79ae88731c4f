package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/internal/service/catalog"
)

type catalogService interface {
	ListSectors(ctx context.Context) ([]domain.Sector, error)
	CreateSector(ctx context.Context, input catalog.CreateSectorInput) (*domain.Sector, error)
	ListTemplates(ctx context.Context) ([]domain.ChecklistTemplate, error)
	CreateTemplate(ctx context.Context, input catalog.CreateTemplateInput) (*domain.ChecklistTemplate, error)
}

// CatalogHandler serves sectors and checklist templates.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type createSectorRequest struct {
	Name           string  `json:"name"`
	Order          float64 `json:"order"`
	CheckpointHint string  `json:"checkpointHint"`
}

type templateItemRequest struct {
	SectorID                string `json:"sectorId"`
	Title                   string `json:"title"`
	Description             string `json:"description"`
	PhotoRequiredOnIncident bool   `json:"photoRequiredOnIncident"`
}

type createTemplateRequest struct {
	Name   string                `json:"name"`
	Active *bool                 `json:"active"`
	Items  []templateItemRequest `json:"items"`
}

// ListSectors handles GET /api/sectors.
func (h *CatalogHandler) ListSectors(w http.ResponseWriter, r *http.Request) {
	sectors, err := h.svc.ListSectors(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]sectorResponse, len(sectors))
	for i, s := range sectors {
		out[i] = toSectorResponse(s)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateSector handles POST /api/sectors.
func (h *CatalogHandler) CreateSector(w http.ResponseWriter, r *http.Request) {
	var req createSectorRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	sector, err := h.svc.CreateSector(r.Context(), catalog.CreateSectorInput{
		Name:           req.Name,
		Order:          req.Order,
		CheckpointHint: req.CheckpointHint,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSectorResponse(*sector))
}

// ListTemplates handles GET /api/templates.
func (h *CatalogHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.svc.ListTemplates(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]templateResponse, len(templates))
	for i, t := range templates {
		out[i] = toTemplateResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateTemplate handles POST /api/templates. Active defaults to true.
// Items with an unparseable sector id count as incomplete.
func (h *CatalogHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	input := catalog.CreateTemplateInput{
		Name:   req.Name,
		Active: req.Active == nil || *req.Active,
		Items:  make([]catalog.TemplateItemInput, len(req.Items)),
	}
	for i, it := range req.Items {
		sectorID, _ := uuid.Parse(it.SectorID)
		input.Items[i] = catalog.TemplateItemInput{
			SectorID:                sectorID,
			Title:                   it.Title,
			Description:             it.Description,
			PhotoRequiredOnIncident: it.PhotoRequiredOnIncident,
		}
	}

	tpl, err := h.svc.CreateTemplate(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTemplateResponse(*tpl))
}

func (h *CatalogHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	writeDomainError(w, r, h.log, err)
}
