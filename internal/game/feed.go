package game

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/AquaponicsSim_Go/internal/aquaponics"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/fish"
	"github.com/osse101/AquaponicsSim_Go/internal/logger"
)

// FeedFish feeds up to amount units from the food store to the flock at
// index, then runs one system tick. An index with no flock is a no-op: the
// result reports success with nothing fed and the state is left as it was.
func (e *Engine) FeedFish(ctx context.Context, g *domain.GameState, index, amount int) (*domain.ActionResult, error) {
	sys, err := e.system(g)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(g.Fish) {
		logger.FromContext(ctx).Debug(LogMsgFeedSkipped, "index", index, "flocks", len(g.Fish))
		return &domain.ActionResult{Type: domain.MoveFeedFish, Success: true, Day: g.GameTime}, nil
	}
	f := g.Fish[index]
	sp, ok := e.catalog.FishSpecies(f.Type)
	if !ok {
		return e.reject(ctx, g, domain.MoveFeedFish, fmt.Errorf(ErrMsgUnknownFmt, domain.ErrUnknownSpecies, f.Type))
	}

	used := max(0, min(amount, g.FishFood))
	g.FishFood -= used

	feed := fish.Feed(f, sp, float64(used), e.FishEnvironment(g))
	feed.FoodUsed = float64(used)

	entry := e.tick(sys, g)
	return e.commit(ctx, g, &domain.ActionResult{
		Type:     domain.MoveFeedFish,
		Item:     f.Type,
		Quantity: used,
		Feed:     &feed,
		Turn:     &entry,
	})
}

// FishEnvironment is the water a flock lives in today. Ammonia is the part
// of the daily load the biofilter fails to convert, and a stopped pump
// lowers dissolved oxygen.
func (e *Engine) FishEnvironment(g *domain.GameState) fish.Environment {
	var w domain.WaterChemistry
	if g.System != nil {
		w = g.System.Tank.Water
	}
	waste := aquaponics.FishWaste(g.Fish, e.catalog)

	env := fish.Environment{
		Temperature:     w.Temperature,
		Ammonia:         waste * (1 - EffectiveBiofilterEfficiency(g)),
		DissolvedOxygen: w.DissolvedOxygen,
	}
	if g.EventEffects.CirculationStopped {
		env.DissolvedOxygen = math.Max(0, env.DissolvedOxygen-PumpFailureOxygenDrop)
	}
	return env
}

// EffectiveBiofilterEfficiency combines the tank's biofilter with pump
// circulation. With circulation stopped nothing reaches the filter.
func EffectiveBiofilterEfficiency(g *domain.GameState) float64 {
	if g.System == nil || g.EventEffects.CirculationStopped {
		return 0
	}
	return math.Min(1, g.System.Tank.BiofilterEfficiency*g.Modifiers.CirculationEfficiency)
}

// tick runs the shared aquaponics loop for the current day
func (e *Engine) tick(sys *aquaponics.System, g *domain.GameState) domain.TurnLogEntry {
	return sys.ProcessTurn(aquaponics.TurnInput{
		Day:                 g.GameTime,
		Fish:                g.Fish,
		Plants:              g.Plants,
		BiofilterEfficiency: EffectiveBiofilterEfficiency(g),
		LightsDisabled:      g.EventEffects.LightsDisabled,
		GrowthBoost:         g.Modifiers.PlantGrowthRate,
	})
}
