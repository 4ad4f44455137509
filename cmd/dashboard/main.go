package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/ficus22/meteo-dashboard/internal/adapter/http"
	"github.com/ficus22/meteo-dashboard/internal/config"
	"github.com/ficus22/meteo-dashboard/internal/dashboard"
	"github.com/ficus22/meteo-dashboard/internal/dataset"
	"github.com/ficus22/meteo-dashboard/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Load the observation file once. Any parse failure halts startup;
	// there is no partial load and nothing to retry.
	start := time.Now()
	table, err := dataset.Load(cfg.DataPath)
	if err != nil {
		logger.Error("failed to load data file", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}
	metrics.DatasetRows.Set(float64(table.NumRows()))
	metrics.DatasetLoadDuration.Set(time.Since(start).Seconds())
	logger.Info("data file loaded",
		"path", cfg.DataPath,
		"rows", table.NumRows(),
		"months", len(table.Months()),
		"duration", time.Since(start),
	)

	dash := dashboard.New(table, cfg.PrecipDisplayScale, cfg.RenderCacheSize, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, dash, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
