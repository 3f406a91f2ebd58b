package main

import (
	"github.com/osse101/AquaponicsSim_Go/internal/config"
	"github.com/osse101/AquaponicsSim_Go/internal/logger"
)

// initLogger configures the default slog logger from app configuration
func initLogger(cfg *config.Config) {
	addSource := cfg.LogAddSource || cfg.Environment == "dev" || cfg.Environment == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))
}
