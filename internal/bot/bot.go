// Package bot plays the farm automatically. A bot decides one move at a
// time from a fixed priority list and keeps a history of what it tried.
package bot

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/osse101/AquaponicsSim_Go/internal/aquaponics"
	"github.com/osse101/AquaponicsSim_Go/internal/catalog"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/event"
	"github.com/osse101/AquaponicsSim_Go/internal/fish"
	"github.com/osse101/AquaponicsSim_Go/internal/game"
	"github.com/osse101/AquaponicsSim_Go/internal/logger"
	"github.com/osse101/AquaponicsSim_Go/internal/plant"
)

// MoveRecord is one executed move
type MoveRecord struct {
	Turn    int    `json:"turn"`
	Day     int    `json:"day"`
	Move    string `json:"move"`
	Args    []any  `json:"args,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Stats summarises the move history
type Stats struct {
	TotalMoves      int            `json:"total_moves"`
	SuccessfulMoves int            `json:"successful_moves"`
	FailedMoves     int            `json:"failed_moves"`
	MoveBreakdown   map[string]int `json:"move_breakdown"`
}

// Bot plays a single game with one strategy. It is not safe for
// concurrent use; the simulation runner gives every game its own bot.
type Bot struct {
	strategy Strategy
	def      strategyDef
	profile  Profile
	engine   *game.Engine
	rng      *rand.Rand
	history  []MoveRecord
}

// New creates a bot. The rng drives both the bot's own choices and the
// engine's event rolls, so a seeded rng reproduces a whole game.
func New(strategy Strategy, engine *game.Engine, rng *rand.Rand) (*Bot, error) {
	def, ok := strategies[strategy]
	if !ok {
		return nil, fmt.Errorf(ErrMsgUnknownStrategyFmt, domain.ErrUnknownStrategy, strategy)
	}
	return &Bot{
		strategy: strategy,
		def:      def,
		profile:  def.profile(rng),
		engine:   engine,
		rng:      rng,
	}, nil
}

// Strategy returns the bot's strategy name
func (b *Bot) Strategy() Strategy { return b.strategy }

// Profile returns the bot's risk profile
func (b *Bot) Profile() Profile { return b.profile }

// Decide picks the next move: urgent repairs first, then harvests,
// purchases and feeding, and otherwise ends the day.
func (b *Bot) Decide(g *domain.GameState) domain.Move {
	for _, step := range []func(*domain.GameState) *domain.Move{
		b.criticalRepair,
		b.harvest,
		func(g *domain.GameState) *domain.Move { return b.def.purchase(b, g) },
		b.feeding,
	} {
		if m := step(g); m != nil {
			return *m
		}
	}
	return domain.Move{Name: domain.MoveProgressTurn}
}

// Execute applies a move through the engine and records it. Rejections are
// returned like any other error; the state only carries LastAction.
func (b *Bot) Execute(ctx context.Context, g *domain.GameState, move domain.Move) (*domain.ActionResult, error) {
	day := g.GameTime
	res, err := b.engine.Apply(ctx, g, b.rng, move.Name, move.Args)

	rec := MoveRecord{
		Turn:    g.MoveCount,
		Day:     day,
		Move:    move.Name,
		Args:    move.Args,
		Success: err == nil,
	}
	if err != nil {
		rec.Error = err.Error()
		logger.FromContext(ctx).Debug(LogMsgMoveFailed, "strategy", b.strategy, "move", move.Name, "error", err)
	}
	b.history = append(b.history, rec)
	return res, err
}

// Stats counts the history by outcome and move name
func (b *Bot) Stats() Stats {
	s := Stats{MoveBreakdown: make(map[string]int)}
	for _, r := range b.history {
		s.TotalMoves++
		if r.Success {
			s.SuccessfulMoves++
		} else {
			s.FailedMoves++
		}
		s.MoveBreakdown[r.Move]++
	}
	return s
}

func (b *Bot) criticalRepair(g *domain.GameState) *domain.Move {
	ev := event.Current(g)
	if ev == nil || !ev.Repairable() || ev.Severity != domain.SeverityHigh {
		return nil
	}
	if g.Money < *ev.RepairCost {
		return nil
	}
	return &domain.Move{Name: domain.MoveRepairSystem}
}

func (b *Bot) harvest(g *domain.GameState) *domain.Move {
	if b.strategy == Random && b.rng.Float64() <= RandomHarvestDeferChance {
		return nil
	}
	cat := b.engine.Catalog()
	for _, f := range g.Fish {
		if sp, ok := cat.FishSpecies(f.Type); ok && fish.IsHarvestable(f, sp) {
			return &domain.Move{Name: domain.MoveSellFish}
		}
	}
	for _, p := range g.Plants {
		if sp, ok := cat.PlantSpecies(p.Type); ok && plant.CanHarvest(p, sp) {
			return &domain.Move{Name: domain.MoveSellPlants}
		}
	}
	return nil
}

func (b *Bot) feeding(g *domain.GameState) *domain.Move {
	if len(g.Fish) == 0 {
		return nil
	}
	if g.FishFood < MinFoodUnits {
		if g.Money >= b.equipmentCost(catalog.EquipmentFishFood)+b.profile.MinMoneyBuffer {
			return &domain.Move{Name: domain.MoveBuyFishFood, Args: []any{1}}
		}
		return nil
	}
	return &domain.Move{Name: domain.MoveFeedFish, Args: []any{0, min(MaxFeedPerMeal, g.FishFood)}}
}

func (b *Bot) available(g *domain.GameState) float64 {
	return g.Money - b.profile.MinMoneyBuffer
}

// fishRoom is how many more fish the farm can stock
func (b *Bot) fishRoom(g *domain.GameState) int {
	return max(0, g.MaxFish-g.FishCount())
}

// plantRoom is how many seeds fit both the farm's plant ceiling and the
// free slots of the bed the bot plants into.
func (b *Bot) plantRoom(g *domain.GameState) int {
	free := aquaponics.DefaultBedCapacity
	if g.System != nil {
		if bed, ok := g.System.GrowBeds[game.DefaultBedID]; ok {
			free = aquaponics.FreeSlots(bed)
		}
	}
	return max(0, min(g.MaxPlants-len(g.Plants), free))
}

// Unknown ids price at +Inf so no strategy ever thinks it can afford them.
func (b *Bot) fingerlingCost(species string) float64 {
	if sp, ok := b.engine.Catalog().FishSpecies(species); ok {
		return sp.FingerlingCost
	}
	return math.Inf(1)
}

func (b *Bot) seedCost() float64 {
	if sp, ok := b.engine.Catalog().PlantSpecies(catalog.PlantRomaine); ok {
		return sp.SeedCost
	}
	return math.Inf(1)
}

func (b *Bot) equipmentCost(id string) float64 {
	if eq, ok := b.engine.Catalog().Equipment(id); ok {
		return eq.Cost
	}
	return math.Inf(1)
}
