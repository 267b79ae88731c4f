package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/rondaflow-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	User      *UserHandler
	Catalog   *CatalogHandler
	Round     *RoundHandler
	Dashboard *DashboardHandler
}

// RouterDeps are the middleware inputs of NewRouter.
type RouterDeps struct {
	Logger       *slog.Logger
	Global       []middleware.Middleware // outermost first: request id, recovery, cors, metrics, auth, logger
	LoginLimiter middleware.Middleware
	Metrics      http.Handler
	MaxBodyBytes int64
}

// NewRouter mounts the health probes, /metrics and the /api tree.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	for _, mw := range deps.Global {
		r.Use(mw)
	}

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		if deps.MaxBodyBytes > 0 {
			r.Use(maxBody(deps.MaxBodyBytes))
		}

		r.Route("/auth", func(r chi.Router) {
			if deps.LoginLimiter != nil {
				r.With(deps.LoginLimiter).Post("/login", h.Auth.Login)
			} else {
				r.Post("/login", h.Auth.Login)
			}
			r.Post("/logout", h.Auth.Logout)
			r.Get("/me", h.Auth.Me)
		})

		r.Get("/users", h.User.List)

		r.Get("/sectors", h.Catalog.ListSectors)
		r.Post("/sectors", h.Catalog.CreateSector)
		r.Get("/templates", h.Catalog.ListTemplates)
		r.Post("/templates", h.Catalog.CreateTemplate)

		r.Post("/manager/rounds", h.Round.CreateForAnalyst)
		r.Route("/rounds", func(r chi.Router) {
			r.Get("/", h.Round.List)
			r.Post("/", h.Round.Start)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Round.Get)
				r.Patch("/", h.Round.SetGeneralNote)
				r.Post("/answers", h.Round.Answer)
				r.Post("/photos", h.Round.AttachPhoto)
				r.Get("/photos/{photoId}", h.Round.PhotoContent)
				r.Post("/locations", h.Round.RecordLocation)
				r.Get("/route", h.Round.Route)
				r.Get("/route.png", h.Round.RoutePNG)
				r.Post("/finalize", h.Round.Finalize)
			})
		})

		r.Get("/dashboard", h.Dashboard.Get)
		r.Get("/dashboard/export.xlsx", h.Dashboard.Export)
	})

	return r
}

func maxBody(limit int64) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
