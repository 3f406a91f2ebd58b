package game

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/osse101/AquaponicsSim_Go/internal/catalog"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

type moveFunc func(e *Engine, ctx context.Context, g *domain.GameState, rng *rand.Rand, args []any) (*domain.ActionResult, error)

var moves = map[string]moveFunc{
	domain.MoveBuyEquipment: func(e *Engine, ctx context.Context, g *domain.GameState, _ *rand.Rand, args []any) (*domain.ActionResult, error) {
		item, err := argString(args, 0, "")
		if err != nil {
			return e.reject(ctx, g, domain.MoveBuyEquipment, err)
		}
		qty, err := argInt(args, 1, 1)
		if err != nil {
			return e.reject(ctx, g, domain.MoveBuyEquipment, err)
		}
		return e.BuyEquipment(ctx, g, item, qty)
	},
	domain.MoveBuyFish: func(e *Engine, ctx context.Context, g *domain.GameState, _ *rand.Rand, args []any) (*domain.ActionResult, error) {
		species, err := argString(args, 0, "")
		if err != nil {
			return e.reject(ctx, g, domain.MoveBuyFish, err)
		}
		count, err := argInt(args, 1, 1)
		if err != nil {
			return e.reject(ctx, g, domain.MoveBuyFish, err)
		}
		return e.BuyFish(ctx, g, species, count)
	},
	domain.MoveBuyPlantSeeds: func(e *Engine, ctx context.Context, g *domain.GameState, _ *rand.Rand, args []any) (*domain.ActionResult, error) {
		species, err := argString(args, 0, "")
		if err != nil {
			return e.reject(ctx, g, domain.MoveBuyPlantSeeds, err)
		}
		bedID, err := argString(args, 1, DefaultBedID)
		if err != nil {
			return e.reject(ctx, g, domain.MoveBuyPlantSeeds, err)
		}
		count, err := argInt(args, 2, 1)
		if err != nil {
			return e.reject(ctx, g, domain.MoveBuyPlantSeeds, err)
		}
		return e.BuyPlantSeeds(ctx, g, species, bedID, count)
	},
	domain.MoveBuyFishFood: func(e *Engine, ctx context.Context, g *domain.GameState, _ *rand.Rand, args []any) (*domain.ActionResult, error) {
		qty, err := argInt(args, 0, 1)
		if err != nil {
			return e.reject(ctx, g, domain.MoveBuyFishFood, err)
		}
		return e.BuyFishFood(ctx, g, qty)
	},
	domain.MoveSellFish: func(e *Engine, ctx context.Context, g *domain.GameState, _ *rand.Rand, args []any) (*domain.ActionResult, error) {
		index, err := optionalInt(args, 0)
		if err != nil {
			return e.reject(ctx, g, domain.MoveSellFish, err)
		}
		return e.SellFish(ctx, g, index)
	},
	domain.MoveSellPlants: func(e *Engine, ctx context.Context, g *domain.GameState, _ *rand.Rand, args []any) (*domain.ActionResult, error) {
		id, err := argString(args, 0, "")
		if err != nil {
			return e.reject(ctx, g, domain.MoveSellPlants, err)
		}
		return e.SellPlants(ctx, g, id)
	},
	domain.MoveFeedFish: func(e *Engine, ctx context.Context, g *domain.GameState, _ *rand.Rand, args []any) (*domain.ActionResult, error) {
		index, err := argInt(args, 0, 0)
		if err != nil {
			return e.reject(ctx, g, domain.MoveFeedFish, err)
		}
		amount, err := argInt(args, 1, 0)
		if err != nil {
			return e.reject(ctx, g, domain.MoveFeedFish, err)
		}
		return e.FeedFish(ctx, g, index, amount)
	},
	domain.MoveProgressTurn: func(e *Engine, ctx context.Context, g *domain.GameState, rng *rand.Rand, _ []any) (*domain.ActionResult, error) {
		return e.ProgressTurn(ctx, g, rng)
	},
	domain.MoveSkipTurn: func(e *Engine, ctx context.Context, g *domain.GameState, _ *rand.Rand, _ []any) (*domain.ActionResult, error) {
		return e.SkipTurn(ctx, g)
	},
	domain.MoveRepairSystem: func(e *Engine, ctx context.Context, g *domain.GameState, _ *rand.Rand, _ []any) (*domain.ActionResult, error) {
		return e.RepairSystem(ctx, g)
	},
	domain.MoveGetMarketPrices: func(e *Engine, ctx context.Context, g *domain.GameState, _ *rand.Rand, _ []any) (*domain.ActionResult, error) {
		return e.GetMarketPrices(ctx, g)
	},
	domain.MoveGetEquipmentCatalog: func(e *Engine, ctx context.Context, g *domain.GameState, _ *rand.Rand, _ []any) (*domain.ActionResult, error) {
		return e.GetEquipmentCatalog(ctx, g)
	},
	domain.MoveTriggerEvent: func(e *Engine, ctx context.Context, g *domain.GameState, _ *rand.Rand, args []any) (*domain.ActionResult, error) {
		id, err := argString(args, 0, "")
		if err != nil {
			return e.reject(ctx, g, domain.MoveTriggerEvent, err)
		}
		return e.TriggerEvent(ctx, g, id)
	},
}

// MoveNames lists every move Apply accepts, sorted
func MoveNames() []string {
	names := make([]string, 0, len(moves))
	for name := range moves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply dispatches a named move with positional arguments. An unknown name
// returns ErrMoveNotFound and leaves the state untouched; any other move
// counts towards MoveCount whether or not it succeeds.
func (e *Engine) Apply(ctx context.Context, g *domain.GameState, rng *rand.Rand, name string, args []any) (*domain.ActionResult, error) {
	fn, ok := moves[name]
	if !ok {
		err := fmt.Errorf(ErrMsgUnknownFmt, domain.ErrMoveNotFound, name)
		if s := catalog.SuggestFrom(name, MoveNames()); s != "" {
			err = fmt.Errorf(ErrMsgSuggestionFmt, err, s)
		}
		return nil, err
	}
	g.MoveCount++
	return fn(e, ctx, g, rng, args)
}
