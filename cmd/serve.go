package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yamdb/internal/data/repository"
	"yamdb/internal/wire"
	"yamdb/pkg/database"
	"yamdb/pkg/mailer"
	"yamdb/pkg/ratelimit"
	"yamdb/pkg/tracing"
	"yamdb/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, logger, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	if migrateOnStart {
		if err := database.MigrateUp(config.Database, logger); err != nil {
			return err
		}
	}

	db, err := connect(config, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	shutdownTracing, err := tracing.Init(ctx, config.Tracing, logger)
	if err != nil {
		return err
	}
	defer flushTracing(shutdownTracing, logger)

	limiter, closeLimiter, err := ratelimit.New(ctx, config.Throttle, config.Redis, logger)
	if err != nil {
		return fmt.Errorf("init throttling: %w", err)
	}
	defer func() {
		if err := closeLimiter(); err != nil {
			logger.Warn("Failed to close limiter", zap.Error(err))
		}
	}()

	app, err := wire.Wiring(wire.Deps{
		DB:       db,
		Repo:     repository.NewRepository(db, logger),
		Tokens:   utils.NewTokenManager(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour),
		Mailer:   mailer.New(config.Email, logger),
		Limiter:  limiter,
		Registry: prometheus.NewRegistry(),
	}, config, logger)
	if err != nil {
		return fmt.Errorf("wire application: %w", err)
	}

	handler := otelhttp.NewHandler(app.Router, config.App.Name,
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/health" && r.URL.Path != "/metrics"
		}),
	)

	srv := &http.Server{
		Addr:              ":" + config.App.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
	return nil
}

// flushTracing runs on every exit path of serve, including a failed listener.
func flushTracing(shutdown tracing.ShutdownFunc, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := shutdown(ctx); err != nil {
		logger.Warn("Tracer shutdown failed", zap.Error(err))
	}
}
