package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/internal/gps"
	"github.com/heartmarshall/rondaflow-backend/internal/service/round"
)

type roundService interface {
	StartOrContinue(ctx context.Context) (*domain.Round, error)
	CreateForAnalyst(ctx context.Context, input round.CreateForAnalystInput) (*domain.Round, error)
	Get(ctx context.Context, roundID uuid.UUID) (*round.Detail, error)
	List(ctx context.Context, input round.ListInput) ([]domain.Round, error)
	SetGeneralNote(ctx context.Context, input round.SetGeneralNoteInput) (*domain.Round, error)
	AnswerItem(ctx context.Context, input round.AnswerItemInput) (*domain.Round, error)
	AttachPhoto(ctx context.Context, input round.AttachPhotoInput) (*domain.Photo, error)
	PhotoContent(ctx context.Context, roundID, photoID uuid.UUID) ([]byte, string, error)
	RecordLocation(ctx context.Context, input round.RecordLocationInput) (*domain.LocationPing, error)
	Route(ctx context.Context, roundID uuid.UUID) (gps.Route, error)
	Finalize(ctx context.Context, roundID uuid.UUID) (*domain.Round, error)
}

// RoundHandler serves the round lifecycle endpoints.
type RoundHandler struct {
	svc roundService
	log *slog.Logger
}

// NewRoundHandler creates a RoundHandler.
func NewRoundHandler(svc roundService, logger *slog.Logger) *RoundHandler {
	return &RoundHandler{svc: svc, log: logger.With("handler", "round")}
}

type createForAnalystRequest struct {
	AnalystID  uuid.UUID `json:"analystId"`
	TemplateID uuid.UUID `json:"templateId"`
}

type generalNoteRequest struct {
	GeneralNote string `json:"generalNote"`
}

type answerRequest struct {
	ItemAnswerID uuid.UUID `json:"itemAnswerId"`
	Status       string    `json:"status"`
	Observation  *string   `json:"observation"`
}

type photoRequest struct {
	ItemAnswerID *string `json:"itemAnswerId"`
	FileName     string  `json:"fileName"`
	DataURL      string  `json:"dataUrl"`
}

type locationRequest struct {
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	AccuracyMeters *float64 `json:"accuracyMeters"`
	Source         string   `json:"source"`
}

// validate rejects bodies that omit a coordinate; a zero value is a real place.
func (req locationRequest) validate() error {
	var errs []domain.FieldError
	if req.Latitude == nil {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "required"})
	}
	if req.Longitude == nil {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Rounds
// ---------------------------------------------------------------------------

// List handles GET /api/rounds?analystId=&status=&limit=.
func (h *RoundHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := listInputFromQuery(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	rounds, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]roundResponse, len(rounds))
	for i := range rounds {
		out[i] = toRoundResponse(&rounds[i])
	}
	writeJSON(w, http.StatusOK, out)
}

func listInputFromQuery(r *http.Request) (round.ListInput, error) {
	q := r.URL.Query()
	var input round.ListInput

	if raw := q.Get("analystId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return input, domain.NewValidationError("analystId", "invalid id")
		}
		input.AnalystID = &id
	}
	if raw := q.Get("status"); raw != "" {
		status := domain.RoundStatus(raw)
		input.Status = &status
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return input, domain.NewValidationError("limit", "must be an integer")
		}
		input.Limit = n
	}
	return input, nil
}

// Start handles POST /api/rounds. It returns the analyst's open round or
// opens a new one on the active template.
func (h *RoundHandler) Start(w http.ResponseWriter, r *http.Request) {
	rd, err := h.svc.StartOrContinue(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoundResponse(rd))
}

// CreateForAnalyst handles POST /api/manager/rounds.
func (h *RoundHandler) CreateForAnalyst(w http.ResponseWriter, r *http.Request) {
	var req createForAnalystRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	rd, err := h.svc.CreateForAnalyst(r.Context(), round.CreateForAnalystInput{
		AnalystID:  req.AnalystID,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRoundResponse(rd))
}

// Get handles GET /api/rounds/{id}.
func (h *RoundHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, roundDetailResponse{
		Round: toRoundResponse(detail.Round),
		Audit: toAuditResponses(detail.Audit),
	})
}

// SetGeneralNote handles PATCH /api/rounds/{id}.
func (h *RoundHandler) SetGeneralNote(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req generalNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	rd, err := h.svc.SetGeneralNote(r.Context(), round.SetGeneralNoteInput{RoundID: id, Note: req.GeneralNote})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoundResponse(rd))
}

// Finalize handles POST /api/rounds/{id}/finalize.
func (h *RoundHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	rd, err := h.svc.Finalize(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoundResponse(rd))
}

// ---------------------------------------------------------------------------
// Answers and evidence
// ---------------------------------------------------------------------------

// Answer handles POST /api/rounds/{id}/answers.
func (h *RoundHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	rd, err := h.svc.AnswerItem(r.Context(), round.AnswerItemInput{
		RoundID:      id,
		ItemAnswerID: req.ItemAnswerID,
		Status:       domain.AnswerStatus(req.Status),
		Observation:  req.Observation,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoundResponse(rd))
}

// AttachPhoto handles POST /api/rounds/{id}/photos.
func (h *RoundHandler) AttachPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req photoRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	itemID, err := parseOptionalUUID("itemAnswerId", req.ItemAnswerID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	photo, err := h.svc.AttachPhoto(r.Context(), round.AttachPhotoInput{
		RoundID:      id,
		ItemAnswerID: itemID,
		FileName:     req.FileName,
		DataURL:      req.DataURL,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPhotoResponse(*photo))
}

// PhotoContent handles GET /api/rounds/{id}/photos/{photoId}.
func (h *RoundHandler) PhotoContent(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	photoID, err := uuidParam(r, "photoId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	data, mime, err := h.svc.PhotoContent(r.Context(), id, photoID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeBytes(w, mime, data)
}

// RecordLocation handles POST /api/rounds/{id}/locations.
func (h *RoundHandler) RecordLocation(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req locationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		h.handleError(w, r, err)
		return
	}

	ping, err := h.svc.RecordLocation(r.Context(), round.RecordLocationInput{
		RoundID:        id,
		Latitude:       *req.Latitude,
		Longitude:      *req.Longitude,
		AccuracyMeters: req.AccuracyMeters,
		Source:         domain.LocationSource(req.Source),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPingResponse(*ping))
}

// ---------------------------------------------------------------------------
// Route
// ---------------------------------------------------------------------------

// Route handles GET /api/rounds/{id}/route.
func (h *RoundHandler) Route(w http.ResponseWriter, r *http.Request) {
	route, err := h.route(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRouteResponse(route))
}

// RoutePNG handles GET /api/rounds/{id}/route.png.
func (h *RoundHandler) RoutePNG(w http.ResponseWriter, r *http.Request) {
	route, err := h.route(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	png, err := gps.RenderPNG(route)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeBytes(w, "image/png", png)
}

func (h *RoundHandler) route(r *http.Request) (gps.Route, error) {
	id, err := uuidParam(r, "id")
	if err != nil {
		return gps.Route{}, err
	}
	return h.svc.Route(r.Context(), id)
}

func (h *RoundHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	writeDomainError(w, r, h.log, err)
}

func writeBytes(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "private, max-age=300")
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}
