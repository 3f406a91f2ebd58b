package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AquaponicsSim_Go/internal/catalog"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

func TestFeedFish_InvalidIndexIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	g := e.NewGame(1)
	g.FishFood = 10
	before, err := g.Clone()
	require.NoError(t, err)

	res, err := e.FeedFish(context.Background(), g, 3, 5)

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, domain.MoveFeedFish, res.Type)
	assert.True(t, res.Success)
	assert.Zero(t, res.Quantity)
	assert.Nil(t, res.Feed)
	assert.Equal(t, before, g)
}

func TestFeedFish_UsesStoreAndTicks(t *testing.T) {
	e := newTestEngine(t)
	g := e.NewGame(1)
	ctx := context.Background()
	_, err := e.BuyFish(ctx, g, catalog.FishTilapia, 10)
	require.NoError(t, err)
	g.FishFood = 3
	g.System.Tank.Water.Temperature = 27

	res, err := e.FeedFish(ctx, g, 0, 5)

	require.NoError(t, err)
	assert.Equal(t, 0, g.FishFood)
	assert.Equal(t, 3, res.Quantity)
	require.NotNil(t, res.Feed)
	assert.InDelta(t, 1.0, res.Feed.FoodRatio, 1e-9)
	assert.Greater(t, g.Fish[0].Size, 1.0)
	assert.Equal(t, 1, g.Fish[0].Age)
	assert.Equal(t, 0, g.GameTime, "feeding does not advance the clock")
	assert.Len(t, g.System.Log, 1)
}

func TestFishEnvironment_PumpFailure(t *testing.T) {
	e := newTestEngine(t)
	g := e.NewGame(1)
	g.Fish = []*domain.Fish{{Type: catalog.FishTilapia, Count: 10, Health: 10, Size: 1}}

	calm := e.FishEnvironment(g)
	assert.InDelta(t, 0.2, calm.Ammonia, 1e-9)
	assert.Equal(t, 8.0, calm.DissolvedOxygen)

	g.EventEffects.CirculationStopped = true
	stopped := e.FishEnvironment(g)
	assert.InDelta(t, 1.0, stopped.Ammonia, 1e-9)
	assert.Equal(t, 6.0, stopped.DissolvedOxygen)
	assert.Equal(t, 0.0, EffectiveBiofilterEfficiency(g))
}

func TestEffectiveBiofilterEfficiency_CappedAtOne(t *testing.T) {
	e := newTestEngine(t)
	g := e.NewGame(1)
	g.Modifiers.CirculationEfficiency = 1.5

	assert.Equal(t, 1.0, EffectiveBiofilterEfficiency(g))
}

func TestMarketPricesAndCatalog(t *testing.T) {
	e := newTestEngine(t)
	g := e.NewGame(1)
	ctx := context.Background()

	res, err := e.GetMarketPrices(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Prices.Fish[catalog.FishTilapia])
	assert.Equal(t, 8.5, res.Prices.Fish[catalog.FishBarramundi])
	assert.Equal(t, 2.0, res.Prices.Plants[catalog.PlantRomaine])

	res, err = e.GetEquipmentCatalog(ctx, g)
	require.NoError(t, err)
	assert.Len(t, res.Catalog, 10)
	assert.Equal(t, domain.MoveGetEquipmentCatalog, g.LastAction.Type)
}
