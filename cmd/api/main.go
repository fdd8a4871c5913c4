package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/northstack/lead-intake/internal/app/bootstrap"
	appconfig "github.com/northstack/lead-intake/internal/config"
	httpmiddleware "github.com/northstack/lead-intake/internal/http/middleware"
	"github.com/northstack/lead-intake/internal/intake"
	"github.com/northstack/lead-intake/internal/observability/metrics"
	"github.com/northstack/lead-intake/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := appconfig.Load()
	if err != nil {
		logging.Default().Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting lead-intake API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	deps, err := bootstrap.Build(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to build dependencies", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	intakeMetrics := metrics.NewIntakeMetrics(registry)

	handler := intake.NewHandler(deps.Repo, deps.Email, intake.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		OwnerEmails:    cfg.OwnerEmails,
		TTLDays:        cfg.TTLDays,
		Metrics:        intakeMetrics,
	}, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(httpmiddleware.RequestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	leadIntake := intake.NewHTTPAdapter(handler)
	r.Group(func(public chi.Router) {
		public.Use(httpmiddleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
		public.Post("/leads", leadIntake.ServeHTTP)
		public.Options("/leads", leadIntake.ServeHTTP)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}
