package router

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	mem "infant-growth/internal/adapters/storage/memory"
	pg "infant-growth/internal/adapters/storage/postgres"
	"infant-growth/internal/adapters/storage/sqlite"
	"infant-growth/internal/docs"
	"infant-growth/internal/domain/growth"
	"infant-growth/internal/domain/profile"
	"infant-growth/internal/middleware"
	"infant-growth/internal/platform/config"
	"infant-growth/internal/platform/logger"
	"infant-growth/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config config.Config

	Logger  logger.Logger    // default: Nop
	Metrics *metrics.Metrics // default: registry nuevo

	// Opcional: conexión Postgres ya abierta. Solo se usa con backend postgres;
	// el router no la cierra.
	DB *sql.DB
}

// Router es el handler HTTP más los recursos que hay que cerrar al apagar.
type Router struct {
	http.Handler

	closers []func() error
}

// Close libera la base de datos (si la abrió el router).
func (r *Router) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

func NewRouter(ctx context.Context, opts Options) (*Router, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	cfg := opts.Config
	out := &Router{}

	growthRepo, profileRepo, closeDB, err := openStorage(ctx, cfg.Storage, opts.DB)
	if err != nil {
		return nil, err
	}
	if closeDB != nil {
		out.closers = append(out.closers, closeDB)
	}
	log.Info("storage ready", map[string]any{"backend": backendName(cfg.Storage.Backend)})

	table := growth.DefaultTable()
	if p := strings.TrimSpace(cfg.Standards.Path); p != "" {
		table, err = growth.LoadTable(p)
		if err != nil {
			_ = out.Close()
			return nil, err
		}
		log.Info("custom standards loaded", map[string]any{"path": p})
	}

	// Services por módulo
	profileSvc := profile.NewService(profileRepo, log)
	growthSvc := growth.NewService(growthRepo, growth.Options{
		Table:    table,
		Profiles: profileSvc,
		Logger:   log,
		Metrics:  m,
	})

	if cfg.Profile.Enabled() {
		if _, err := profileSvc.EnsureSeed(ctx, profile.Input{
			Name:        cfg.Profile.Name,
			LastName:    cfg.Profile.LastName,
			DateOfBirth: cfg.Profile.DateOfBirth,
			BirthWeight: cfg.Profile.BirthWeight,
			BirthHeight: cfg.Profile.BirthHeight,
			Avatar:      cfg.Profile.Avatar,
		}); err != nil {
			_ = out.Close()
			return nil, err
		}
	}
	if err := growthSvc.Load(ctx); err != nil {
		_ = out.Close()
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestIDHeader)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log, m))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	if name := strings.TrimSpace(cfg.App.Name); name != "" {
		docs.SwaggerInfo.Title = name + " API"
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	profile.RegisterRoutes(r, profileSvc)
	growth.RegisterRoutes(r, growthSvc)

	out.Handler = r
	return out, nil
}

func openStorage(ctx context.Context, cfg config.StorageConfig, db *sql.DB) (growth.Repository, profile.Repository, func() error, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		opened, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		return sqlite.NewGrowthRepo(opened), sqlite.NewProfileRepo(opened), opened.Close, nil

	case config.BackendPostgres:
		var closeDB func() error
		if db == nil {
			opened, err := pg.Open(cfg.PostgresDSN)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("open postgres: %w", err)
			}
			db, closeDB = opened, opened.Close
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			if closeDB != nil {
				_ = closeDB()
			}
			return nil, nil, nil, err
		}
		return pg.NewGrowthRepo(db), pg.NewProfileRepo(db), closeDB, nil

	default:
		return mem.NewGrowthRepo(), mem.NewProfileRepo(), nil, nil
	}
}

func backendName(b string) string {
	if b == "" {
		return config.BackendMemory
	}
	return b
}
