// Package game implements the farm's moves: buying, selling, feeding,
// repairs and the composite daily tick. Every move works on a single
// GameState and either commits fully or only records why it was rejected.
package game

import (
	"context"
	"fmt"

	"github.com/osse101/AquaponicsSim_Go/internal/aquaponics"
	"github.com/osse101/AquaponicsSim_Go/internal/catalog"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/event"
	"github.com/osse101/AquaponicsSim_Go/internal/logger"
)

// Engine applies moves against the static catalog
type Engine struct {
	catalog *catalog.Catalog
	events  *event.Manager
}

// NewEngine creates an engine over a loaded catalog
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{
		catalog: c,
		events:  event.NewManager(c),
	}
}

// Catalog exposes the tables the engine prices against
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// NewGame builds a fresh farm: money, capacity ceilings, an empty system
// with a full tank and no event.
func (e *Engine) NewGame(seed int64) *domain.GameState {
	return &domain.GameState{
		Seed:      seed,
		Fish:      []*domain.Fish{},
		Plants:    []*domain.Plant{},
		System:    aquaponics.NewSystem(),
		Money:     StartingMoney,
		Equipment: make(map[string]int),
		Modifiers: domain.Modifiers{
			CirculationEfficiency: StartingCirculation,
			OxygenLevel:           StartingOxygen,
			PlantGrowthRate:       StartingGrowthRate,
		},
		MaxFish:      StartingMaxFish,
		MaxPlants:    StartingMaxPlants,
		EventHistory: []domain.EventHistoryEntry{},
	}
}

// system wraps the game's aquaponics system. Only NewGame creates one, so a
// missing system is a corrupt state rather than something to repair here.
func (e *Engine) system(g *domain.GameState) (*aquaponics.System, error) {
	if g.System == nil {
		return nil, fmt.Errorf("%w: day %d", domain.ErrSystemMissing, g.GameTime)
	}
	return aquaponics.Wrap(g.System, e.catalog), nil
}

func (e *Engine) commit(ctx context.Context, g *domain.GameState, res *domain.ActionResult) (*domain.ActionResult, error) {
	res.Success = true
	res.Day = g.GameTime
	g.LastAction = res
	logger.FromContext(ctx).Debug(LogMsgMoveApplied, "move", res.Type, "day", g.GameTime, "money", g.Money)
	return res, nil
}

func (e *Engine) reject(ctx context.Context, g *domain.GameState, move string, err error) (*domain.ActionResult, error) {
	return e.rejectWithSuggestion(ctx, g, move, err, "")
}

func (e *Engine) rejectWithSuggestion(ctx context.Context, g *domain.GameState, move string, err error, suggestion string) (*domain.ActionResult, error) {
	if suggestion != "" {
		err = fmt.Errorf(ErrMsgSuggestionFmt, err, suggestion)
	}
	res := &domain.ActionResult{
		Type:       move,
		Success:    false,
		Reason:     domain.RejectionReason(err),
		Error:      err.Error(),
		Suggestion: suggestion,
		Day:        g.GameTime,
	}
	g.LastAction = res
	logger.FromContext(ctx).Debug(LogMsgMoveRejected, "move", move, "reason", res.Reason, "error", err)
	return res, err
}
