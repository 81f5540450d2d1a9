package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"showcase/internal/async"
	"showcase/internal/config"
	"showcase/internal/handler"
	"showcase/internal/router"
	"showcase/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the operations over a JSON HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if err := cfg.ValidateServer(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			logger := config.NewLogger(cfg.Logger)
			return serve(cmd.Context(), cfg, logger)
		},
	}
}

// newRegistry returns a registry carrying the Go runtime and process
// collectors next to the application metrics.
func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func serve(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	logger.Info().Msg("starting showcase API server")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	repo, closeCatalogue, err := openCatalogue(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCatalogue()

	reg := newRegistry()
	scheduler := async.NewScheduler(cfg.Async.Delay, async.NewMetrics(reg), logger)
	defer scheduler.Wait()

	// Initialize services
	catalogueService := service.NewCatalogueService(repo, logger)
	squareService := service.NewSquareService(scheduler, logger)

	mux := router.New(router.Handlers{
		Showcase:  handler.NewShowcaseHandler(logger),
		Catalogue: handler.NewCatalogueHandler(catalogueService, logger),
		Square:    handler.NewSquareHandler(squareService, logger),
		Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	}, cfg.Auth.APIKey, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("catalogue_source", cfg.Catalog.Source).
			Dur("async_delay", scheduler.Delay()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

	case <-ctx.Done():
		logger.Info().Msg("context cancelled, starting graceful shutdown")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server gracefully")
		if closeErr := server.Close(); closeErr != nil {
			logger.Error().Err(closeErr).Msg("failed to close server")
		}
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info().Msg("server shutdown completed")
	return nil
}
