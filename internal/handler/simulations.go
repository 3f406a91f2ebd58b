package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/AquaponicsSim_Go/internal/eventbus"
	"github.com/osse101/AquaponicsSim_Go/internal/game"
	"github.com/osse101/AquaponicsSim_Go/internal/logger"
	"github.com/osse101/AquaponicsSim_Go/internal/report"
	"github.com/osse101/AquaponicsSim_Go/internal/simulation"
)

// RunSimulationRequest overrides the server's simulation defaults for one batch
type RunSimulationRequest struct {
	Games      int      `json:"games" validate:"required,min=1"`
	Strategies []string `json:"strategies" validate:"omitempty,dive,strategy"`
	MaxTurns   int      `json:"max_turns" validate:"omitempty,min=1,max=3650"`
	Seed       *int64   `json:"seed,omitempty"`
}

// SimulationHandler runs bot batches on request
type SimulationHandler struct {
	engine    *game.Engine
	base      simulation.Config
	maxGames  int
	bus       eventbus.Bus
	exporters []report.Exporter
}

// NewSimulationHandler creates a handler that starts every batch from base.
// Exporters receive each finished batch; the bus may be nil.
func NewSimulationHandler(engine *game.Engine, base simulation.Config, maxGames int, bus eventbus.Bus, exporters ...report.Exporter) *SimulationHandler {
	return &SimulationHandler{
		engine:    engine,
		base:      base,
		maxGames:  maxGames,
		bus:       bus,
		exporters: exporters,
	}
}

// HandleRunSimulation plays a batch synchronously and returns it.
// ?results=false drops the per-game results and keeps the aggregates.
func (h *SimulationHandler) HandleRunSimulation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RunSimulationRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Run simulation"); err != nil {
		return
	}
	if h.maxGames > 0 && req.Games > h.maxGames {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgTooManyGamesFmt, h.maxGames))
		return
	}

	cfg := h.base
	if len(req.Strategies) > 0 {
		cfg.Strategies = req.Strategies
	}
	if req.MaxTurns > 0 {
		cfg.MaxTurns = req.MaxTurns
	}
	if req.Seed != nil {
		cfg.Seed = *req.Seed
	}

	var opts []simulation.Option
	if h.bus != nil {
		opts = append(opts, simulation.WithBus(h.bus))
	}
	runner, err := simulation.NewRunner(h.engine, cfg, opts...)
	if err != nil {
		respondServiceError(w, r, ErrMsgSimulationFailed, err)
		return
	}

	batch, err := runner.RunBatch(r.Context(), req.Games)
	if err != nil {
		respondServiceError(w, r, ErrMsgSimulationFailed, err)
		return
	}

	if len(h.exporters) > 0 {
		if err := report.ExportAll(r.Context(), batch, h.exporters...); err != nil {
			log.Error(ErrMsgExportFailed, "error", err)
		}
	}

	if GetOptionalQueryParam(r, "results", "true") == "false" {
		batch.Results = nil
	}

	log.Info("Simulation completed", "games", batch.TotalGames, "seed", cfg.Seed)
	respondJSON(w, http.StatusOK, batch)
}
