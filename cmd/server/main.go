package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/AquaponicsSim_Go/internal/bootstrap"
	"github.com/osse101/AquaponicsSim_Go/internal/catalog"
	"github.com/osse101/AquaponicsSim_Go/internal/config"
	"github.com/osse101/AquaponicsSim_Go/internal/game"
	"github.com/osse101/AquaponicsSim_Go/internal/handler"
	"github.com/osse101/AquaponicsSim_Go/internal/match"
	"github.com/osse101/AquaponicsSim_Go/internal/report"
	"github.com/osse101/AquaponicsSim_Go/internal/server"
	"github.com/osse101/AquaponicsSim_Go/internal/simulation"
	"github.com/osse101/AquaponicsSim_Go/internal/sse"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	initLogger(cfg)
	checkEnv()

	slog.Info("Starting aquaponics server",
		"version", cfg.Version,
		"environment", cfg.Environment,
		"port", cfg.Port,
		"storage", cfg.StorageDriver)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		store.Close()
		return err
	}

	hub := sse.NewHub()
	hub.Start()
	bootstrap.RegisterEventHandlers(bus, hub)

	cat, err := catalog.Default()
	if err != nil {
		hub.Stop()
		store.Close()
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	engine := game.NewEngine(cat)

	matches := match.NewService(store.Matches, engine,
		match.WithBus(publisher),
		match.WithCache(cfg.CacheSize, cfg.CacheTTL),
	)

	exporters, err := buildExporters(ctx, cfg)
	if err != nil {
		hub.Stop()
		store.Close()
		return err
	}
	base := simulation.DefaultConfig()
	base.Workers = cfg.SimulationWorkers
	simulations := handler.NewSimulationHandler(engine, base, cfg.MaxSimulationGames, publisher, exporters...)

	deps := server.Deps{
		Matches:     matches,
		Catalog:     cat,
		Simulations: simulations,
		Store:       store.Pinger,
		Hub:         hub,
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	}, deps)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server listening", "port", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:    srv,
			Hub:       hub,
			Publisher: publisher,
			Store:     store,
		})
		return nil
	})

	return g.Wait()
}

// checkEnv reports .env drift. Load has already enforced what the server
// needs, so findings are logged rather than fatal.
func checkEnv() {
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment check failed", "error", err)
		return
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}
}

// buildExporters uploads every API batch to S3 when a bucket is configured
func buildExporters(ctx context.Context, cfg *config.Config) ([]report.Exporter, error) {
	if cfg.S3Bucket == "" {
		return nil, nil
	}
	s3Exporter, err := report.NewS3Exporter(ctx, report.S3Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		Prefix:    cfg.S3Prefix,
		PathStyle: cfg.S3PathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure S3 export: %w", err)
	}
	slog.Info("Simulation batches will be exported", "bucket", cfg.S3Bucket, "prefix", cfg.S3Prefix)
	return []report.Exporter{s3Exporter}, nil
}
