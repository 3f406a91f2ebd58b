package game

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/AquaponicsSim_Go/internal/aquaponics"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/fish"
	"github.com/osse101/AquaponicsSim_Go/internal/plant"
)

// SellFish sells the flock at index, or every harvestable flock when index
// is nil. An active transport-cost effect is taken out of the proceeds.
func (e *Engine) SellFish(ctx context.Context, g *domain.GameState, index *int) (*domain.ActionResult, error) {
	sold := make(map[int]bool)
	var lines []domain.SaleLine

	if index != nil {
		i := *index
		if i < 0 || i >= len(g.Fish) {
			return e.reject(ctx, g, domain.MoveSellFish, fmt.Errorf("%w: index %d", domain.ErrFishNotFound, i))
		}
		f := g.Fish[i]
		sp, ok := e.catalog.FishSpecies(f.Type)
		if !ok || !fish.IsHarvestable(f, sp) {
			return e.reject(ctx, g, domain.MoveSellFish, fmt.Errorf("%w: %s at index %d", domain.ErrNotHarvestable, f.Type, i))
		}
		lines = append(lines, fishSaleLine(i, f, sp))
		sold[i] = true
	} else {
		for i, f := range g.Fish {
			sp, ok := e.catalog.FishSpecies(f.Type)
			if !ok || !fish.IsHarvestable(f, sp) {
				continue
			}
			lines = append(lines, fishSaleLine(i, f, sp))
			sold[i] = true
		}
		if len(lines) == 0 {
			return e.reject(ctx, g, domain.MoveSellFish, domain.ErrNoHarvestableFish)
		}
	}

	kept := make([]*domain.Fish, 0, len(g.Fish)-len(sold))
	for i, f := range g.Fish {
		if !sold[i] {
			kept = append(kept, f)
		}
	}
	g.Fish = kept

	gross, transport := settleSale(g, lines)
	return e.commit(ctx, g, &domain.ActionResult{
		Type:          domain.MoveSellFish,
		FishSold:      lines,
		Count:         len(lines),
		TotalValue:    gross,
		TransportCost: transport,
	})
}

func fishSaleLine(i int, f *domain.Fish, sp domain.FishSpecies) domain.SaleLine {
	return domain.SaleLine{
		Type:   f.Type,
		Index:  i,
		Count:  f.Count,
		Size:   f.Size,
		Health: f.Health,
		Value:  fish.MarketValue(f, sp),
	}
}

// SellPlants sells one plant by id, or every harvestable plant when id is
// empty. Sold plants leave both the arena and their bed.
func (e *Engine) SellPlants(ctx context.Context, g *domain.GameState, plantID string) (*domain.ActionResult, error) {
	var (
		lines []domain.SaleLine
		sold  = make(map[string]bool)
	)

	if plantID != "" {
		p, idx := g.PlantByID(plantID)
		if p == nil {
			return e.reject(ctx, g, domain.MoveSellPlants, fmt.Errorf("%w: %s", domain.ErrPlantNotFound, plantID))
		}
		sp, ok := e.catalog.PlantSpecies(p.Type)
		if !ok || !plant.CanHarvest(p, sp) {
			return e.reject(ctx, g, domain.MoveSellPlants, fmt.Errorf("%w: %s", domain.ErrNotHarvestable, plantID))
		}
		lines = append(lines, plantSaleLine(idx, p, sp))
		sold[p.ID] = true
	} else {
		for i, p := range g.Plants {
			sp, ok := e.catalog.PlantSpecies(p.Type)
			if !ok || !plant.CanHarvest(p, sp) {
				continue
			}
			lines = append(lines, plantSaleLine(i, p, sp))
			sold[p.ID] = true
		}
		if len(lines) == 0 {
			return e.reject(ctx, g, domain.MoveSellPlants, domain.ErrNoHarvestablePlants)
		}
	}

	kept := make([]*domain.Plant, 0, len(g.Plants)-len(sold))
	for _, p := range g.Plants {
		if !sold[p.ID] {
			kept = append(kept, p)
			continue
		}
		if g.System != nil {
			if bed, ok := g.System.GrowBeds[p.BedID]; ok {
				aquaponics.RemovePlant(bed, p.ID)
			}
		}
	}
	g.Plants = kept

	gross, transport := settleSale(g, lines)
	return e.commit(ctx, g, &domain.ActionResult{
		Type:          domain.MoveSellPlants,
		PlantsSold:    lines,
		Count:         len(lines),
		TotalValue:    gross,
		TransportCost: transport,
	})
}

func plantSaleLine(i int, p *domain.Plant, sp domain.PlantSpecies) domain.SaleLine {
	h := plant.Harvest(p, sp)
	return domain.SaleLine{
		Type:    p.Type,
		ID:      p.ID,
		Index:   i,
		Count:   1,
		Size:    p.Size,
		Health:  p.Health,
		Value:   h.Value,
		Quality: h.Quality,
	}
}

// settleSale credits the proceeds net of transport and returns the gross
// value and the transport actually charged.
func settleSale(g *domain.GameState, lines []domain.SaleLine) (float64, float64) {
	gross := 0.0
	for _, l := range lines {
		gross += l.Value
	}
	transport := math.Min(gross, math.Max(0, g.EventEffects.TransportCost))
	g.Money += gross - transport
	return gross, transport
}
