package game

import (
	"context"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

// MarketPrices lists fish prices per pound and plant prices per head
func (e *Engine) MarketPrices(g *domain.GameState) domain.MarketPrices {
	prices := domain.MarketPrices{
		Fish:          make(map[string]float64),
		Plants:        make(map[string]float64),
		TransportCost: g.EventEffects.TransportCost,
	}
	for _, id := range e.catalog.FishIDs() {
		sp, _ := e.catalog.FishSpecies(id)
		prices.Fish[id] = sp.MarketValue
	}
	for _, id := range e.catalog.PlantIDs() {
		sp, _ := e.catalog.PlantSpecies(id)
		prices.Plants[id] = sp.ValuePerHead
	}
	return prices
}

// GetMarketPrices records current prices as the last action
func (e *Engine) GetMarketPrices(ctx context.Context, g *domain.GameState) (*domain.ActionResult, error) {
	prices := e.MarketPrices(g)
	return e.commit(ctx, g, &domain.ActionResult{
		Type:   domain.MoveGetMarketPrices,
		Prices: &prices,
	})
}

// GetEquipmentCatalog records the purchasable equipment as the last action
func (e *Engine) GetEquipmentCatalog(ctx context.Context, g *domain.GameState) (*domain.ActionResult, error) {
	return e.commit(ctx, g, &domain.ActionResult{
		Type:    domain.MoveGetEquipmentCatalog,
		Catalog: e.catalog.EquipmentList(),
	})
}
