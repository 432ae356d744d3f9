package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"infant-growth/internal/platform/config"
	"infant-growth/internal/platform/logger"
	"infant-growth/internal/platform/metrics"
	"infant-growth/internal/router"

	"golang.org/x/sync/errgroup"
)

// @title Infant Growth API
// @version 1.0
// @description Seguimiento de peso y talla del bebé con clasificación por percentiles OMS.
// @BasePath /
func main() {
	configPath := flag.String("config", "", "archivo YAML de configuración (opcional; también CONFIG_PATH)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.NewFromEnv().Error("load config", map[string]any{logger.FieldError: err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", map[string]any{logger.FieldError: err})
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{logger.FieldError: err})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := router.NewRouter(ctx, router.Options{
		Config:  *cfg,
		Logger:  log,
		Metrics: metrics.New(),
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.Close(); err != nil {
			log.Warn("close storage", map[string]any{logger.FieldError: err})
		}
	}()

	srv := &http.Server{
		Addr:         net.JoinHostPort("", cfg.Server.Port),
		Handler:      rt,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "backend": cfg.Storage.Backend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
