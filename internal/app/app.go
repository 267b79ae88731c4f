package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/rondaflow-backend/internal/adapter/blobfs"
	"github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres/audit"
	blobrepo "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres/blob"
	locationrepo "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres/location"
	photorepo "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres/photo"
	roundrepo "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres/round"
	sectorrepo "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres/sector"
	templaterepo "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres/template"
	userrepo "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/rondaflow-backend/internal/adapter/session"
	"github.com/heartmarshall/rondaflow-backend/internal/auth"
	"github.com/heartmarshall/rondaflow-backend/internal/config"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	authsvc "github.com/heartmarshall/rondaflow-backend/internal/service/auth"
	"github.com/heartmarshall/rondaflow-backend/internal/service/catalog"
	"github.com/heartmarshall/rondaflow-backend/internal/service/dashboard"
	"github.com/heartmarshall/rondaflow-backend/internal/service/round"
	"github.com/heartmarshall/rondaflow-backend/internal/service/user"
	"github.com/heartmarshall/rondaflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/rondaflow-backend/internal/transport/rest"
	"github.com/heartmarshall/rondaflow-backend/migrations"
)

const (
	sessionSweepInterval = time.Minute
	limiterCleanup       = 5 * time.Minute
)

type sessionStore interface {
	Save(ctx context.Context, s domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

type blobStore interface {
	Put(ctx context.Context, key string, data []byte, mime string) (string, error)
	Get(ctx context.Context, ref string) ([]byte, string, error)
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("session_store", cfg.Auth.SessionStore),
		slog.String("storage_backend", cfg.Storage.Backend),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if !cfg.Database.SkipAutoMigrate {
		if err := postgres.MigrateUp(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	sessions, closeSessions, err := newSessionStore(gctx, g, cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	blobs, err := newBlobStore(cfg.Storage, pool)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.Burst, limiterCleanup)
	defer limiter.Stop()

	handler := newHandler(logger, cfg, pool, sessions, blobs, metrics, reg, limiter, optionalChecks(sessions, blobs)...)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

func newHandler(
	logger *slog.Logger,
	cfg *config.Config,
	pool *pgxpool.Pool,
	sessions sessionStore,
	blobs blobStore,
	metrics *middleware.Metrics,
	reg *prometheus.Registry,
	limiter *middleware.RateLimiter,
	checks ...rest.HealthCheck,
) http.Handler {
	tx := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	sectors := sectorrepo.New(pool)
	templates := templaterepo.New(pool)
	rounds := roundrepo.New(pool)
	photos := photorepo.New(pool)
	locations := locationrepo.New(pool)
	audit := auditrepo.New(pool)

	tokens := auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionIssuer, cfg.Auth.SessionTTL)

	authService := authsvc.NewService(logger, users, sessions, tokens, audit, tx)
	userService := user.NewService(logger, users)
	catalogService := catalog.NewService(logger, sectors, templates, audit, tx)
	roundService := round.NewService(logger, rounds, templates, users, photos, locations, blobs, audit, tx, metrics, cfg.Tracking)
	dashboardService := dashboard.NewService(logger, rounds, audit, cfg.Tracking)

	// Logger runs inside Auth so request logs carry the actor.
	global := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		metrics.Instrument(),
		middleware.Auth(authService, cfg.Auth.CookieName),
		middleware.Logger(logger),
	}

	return rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(BuildVersion(), append([]rest.HealthCheck{rest.PingCheck("database", true, pool)}, checks...)...),
		Auth:      rest.NewAuthHandler(authService, rest.CookieOptions{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure}, logger),
		User:      rest.NewUserHandler(userService, logger),
		Catalog:   rest.NewCatalogHandler(catalogService, logger),
		Round:     rest.NewRoundHandler(roundService, logger),
		Dashboard: rest.NewDashboardHandler(dashboardService, logger),
	}, rest.RouterDeps{
		Logger:       logger,
		Global:       global,
		LoginLimiter: limiter.Limit(),
		Metrics:      promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	})
}

// optionalChecks returns non-critical health checks for backends that can be
// probed separately from the database.
func optionalChecks(sessions sessionStore, blobs blobStore) []rest.HealthCheck {
	var checks []rest.HealthCheck
	if p, ok := sessions.(pinger); ok {
		checks = append(checks, rest.PingCheck("sessions", false, p))
	}
	if p, ok := blobs.(pinger); ok {
		checks = append(checks, rest.PingCheck("photo_storage", false, p))
	}
	return checks
}

// newSessionStore builds the configured store. The memory store's sweep loop
// runs in g until ctx is done.
func newSessionStore(ctx context.Context, g *errgroup.Group, cfg *config.Config) (sessionStore, func(), error) {
	switch strings.ToLower(cfg.Auth.SessionStore) {
	case config.SessionStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return session.NewRedisStore(client, cfg.Redis.Prefix), func() { _ = client.Close() }, nil
	default:
		store := session.NewMemoryStore()
		g.Go(func() error {
			store.Run(ctx, sessionSweepInterval)
			return nil
		})
		return store, func() {}, nil
	}
}

func newBlobStore(cfg config.StorageConfig, pool *pgxpool.Pool) (blobStore, error) {
	switch strings.ToLower(cfg.Backend) {
	case config.StorageBackendFilesystem:
		store, err := blobfs.New(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("open blob dir: %w", err)
		}
		return store, nil
	default:
		return blobrepo.New(pool), nil
	}
}
