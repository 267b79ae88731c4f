package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/internal/service/user"
)

type userService interface {
	ListByRole(ctx context.Context, input user.ListByRoleInput) ([]domain.User, error)
}

// UserHandler serves user listing.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

// List handles GET /api/users?role=.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListByRole(r.Context(), user.ListByRoleInput{
		Role: domain.Role(r.URL.Query().Get("role")),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponses(users))
}

func (h *UserHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	writeDomainError(w, r, h.log, err)
}
