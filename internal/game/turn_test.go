package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AquaponicsSim_Go/internal/catalog"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

func TestProgressTurn_AdvancesExactlyOneDay(t *testing.T) {
	e := newTestEngine(t)
	g := e.NewGame(1)
	rng := testRNG(1)

	for day := 1; day <= 50; day++ {
		res, err := e.ProgressTurn(context.Background(), g, rng)
		require.NoError(t, err)
		assert.Equal(t, day, g.GameTime)
		assert.Equal(t, day, res.Day)
	}
	require.Len(t, g.System.Log, 50, "one log entry per day, none dropped")
	assert.Equal(t, 0, g.System.Log[0].Day)
	assert.Equal(t, 49, g.System.Log[49].Day)
}

func TestProgressTurn_UtilityScenario(t *testing.T) {
	e := quietEngine(t)
	g := e.NewGame(1)
	ctx := context.Background()
	rng := testRNG(1)

	_, err := e.BuyEquipment(ctx, g, catalog.EquipmentGrowLight, 2)
	require.NoError(t, err)
	_, err = e.BuyEquipment(ctx, g, catalog.EquipmentWaterPump, 1)
	require.NoError(t, err)
	require.Equal(t, 4680.0, g.Money)

	// (2.00 base + 16h × 0.05) × (1 + 0.10 × 3 units)
	dailyElectricity := 2.8 * 1.3
	// 0.50 base + 1000 L × 0.001
	dailyWater := 1.5

	for i := 0; i < 5; i++ {
		res, err := e.ProgressTurn(ctx, g, rng)
		require.NoError(t, err)
		require.NotNil(t, res.DailyUtilityCosts)
		assert.InDelta(t, dailyElectricity, res.DailyUtilityCosts.Electricity, 1e-9)
		assert.InDelta(t, dailyWater, res.DailyUtilityCosts.Water, 1e-9)
		assert.Nil(t, res.BillPayment)
	}
	assert.InDelta(t, 5*dailyElectricity, g.BillsAccrued.Electricity, 1e-9)
	assert.InDelta(t, 5*dailyWater, g.BillsAccrued.Water, 1e-9)
	assert.Equal(t, 4680.0, g.Money)

	var last *domain.ActionResult
	for g.GameTime < BillingCycleDays {
		last, err = e.ProgressTurn(ctx, g, rng)
		require.NoError(t, err)
	}

	require.NotNil(t, last.BillPayment)
	assert.True(t, last.BillPayment.Paid)
	total := 30 * (dailyElectricity + dailyWater)
	assert.InDelta(t, total, last.BillPayment.Total, 1e-6)
	assert.InDelta(t, 4680-total, g.Money, 1e-6)
	assert.Equal(t, domain.Bills{}, g.BillsAccrued)
	assert.Equal(t, 30, g.LastBillPaid)
	assert.Same(t, last, g.LastAction)
}

func TestProgressTurn_UnpaidBillBecomesDebt(t *testing.T) {
	e := quietEngine(t)
	g := e.NewGame(1)
	ctx := context.Background()
	rng := testRNG(1)

	for g.GameTime < BillingCycleDays-1 {
		_, err := e.ProgressTurn(ctx, g, rng)
		require.NoError(t, err)
	}
	g.Money = 10

	res, err := e.ProgressTurn(ctx, g, rng)
	require.NoError(t, err)

	require.NotNil(t, res.BillPayment)
	assert.False(t, res.BillPayment.Paid)
	assert.Equal(t, 0.0, g.Money)
	assert.InDelta(t, res.BillPayment.Total-10, g.Debt, 1e-9)
	assert.Equal(t, domain.Bills{}, g.BillsAccrued)

	res, err = e.ProgressTurn(ctx, g, rng)
	require.NoError(t, err)
	assert.Nil(t, res.BillPayment, "shortfall is billed once per cycle")
}

func TestDailyUtilities_EventsChangeCosts(t *testing.T) {
	e := quietEngine(t)
	g := e.NewGame(1)

	base := DailyUtilities(g)
	assert.InDelta(t, 2.8, base.Electricity, 1e-9)
	assert.InDelta(t, 1.5, base.Water, 1e-9)

	g.EventEffects = domain.EventEffects{LightsDisabled: true, WaterLossPerTurn: 50}
	hit := DailyUtilities(g)
	assert.InDelta(t, 2.0, hit.Electricity, 1e-9)
	assert.InDelta(t, 2.0, hit.Water, 1e-9)
}

func TestWaterLeak_DrainsUntilRepaired(t *testing.T) {
	e := quietEngine(t)
	g := e.NewGame(1)
	ctx := context.Background()
	rng := testRNG(1)

	// the quiet engine has no event table, so trigger through the full one
	full := newTestEngine(t)
	_, err := full.TriggerEvent(ctx, g, catalog.EventWaterLeak)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := e.ProgressTurn(ctx, g, rng)
		require.NoError(t, err)
	}

	assert.Equal(t, 850.0, g.System.Tank.CurrentWaterLevel)
	require.NotNil(t, g.ActiveEvent)
	assert.Equal(t, catalog.EventWaterLeak, g.ActiveEvent.ID)

	money := g.Money
	res, err := e.RepairSystem(ctx, g)
	require.NoError(t, err)

	assert.Equal(t, catalog.EventWaterLeak, res.EventRepaired)
	assert.Equal(t, 150.0, res.Cost)
	assert.Equal(t, money-150, g.Money)
	assert.Equal(t, 1000.0, g.System.Tank.CurrentWaterLevel)
	assert.Nil(t, g.ActiveEvent)
	assert.Equal(t, domain.EventEffects{}, g.EventEffects)
}

func TestProgressTurn_TriggeredEventCountsDownNextDay(t *testing.T) {
	e := quietEngine(t)
	full := newTestEngine(t)
	g := e.NewGame(1)
	ctx := context.Background()

	_, err := full.TriggerEvent(ctx, g, catalog.EventPumpFailure)
	require.NoError(t, err)
	require.Equal(t, 3, g.ActiveEvent.TurnsRemaining)

	_, err = e.ProgressTurn(ctx, g, testRNG(1))
	require.NoError(t, err)
	assert.Equal(t, 2, g.ActiveEvent.TurnsRemaining)
	assert.True(t, g.EventEffects.CirculationStopped)

	for i := 0; i < 2; i++ {
		_, err = e.ProgressTurn(ctx, g, testRNG(1))
		require.NoError(t, err)
	}
	assert.Nil(t, g.ActiveEvent)
	assert.False(t, g.EventEffects.CirculationStopped)
}

func TestProgressTurn_RolledEventNotDecrementedOnTriggerDay(t *testing.T) {
	always := catalog.MustDefault()
	def, ok := always.Event(catalog.EventFilterClog)
	require.True(t, ok)
	def.Probability = 1
	c, err := always.WithEvents([]domain.EventDefinition{def})
	require.NoError(t, err)

	e := NewEngine(c)
	g := e.NewGame(1)

	res, err := e.ProgressTurn(context.Background(), g, testRNG(1))

	require.NoError(t, err)
	assert.Equal(t, catalog.EventFilterClog, res.EventTriggered)
	require.NotNil(t, g.ActiveEvent)
	assert.Equal(t, def.Duration, g.ActiveEvent.TurnsRemaining)
	assert.Equal(t, 1, g.ActiveEvent.TriggeredAt)
	assert.Len(t, g.EventHistory, 1)
}

func TestSkipTurn(t *testing.T) {
	e := newTestEngine(t)
	g := e.NewGame(1)
	g.Money = 100

	res, err := e.SkipTurn(context.Background(), g)

	require.NoError(t, err)
	assert.Equal(t, 1, g.GameTime)
	assert.Equal(t, 105.0, g.Money)
	assert.Equal(t, 5.0, res.PassiveIncome)
	assert.Equal(t, domain.Bills{}, g.BillsAccrued)
	assert.Len(t, g.System.Log, 1)
}

func TestRepairSystem_Rejections(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	t.Run("no active event", func(t *testing.T) {
		g := e.NewGame(1)
		_, err := e.RepairSystem(ctx, g)
		assert.ErrorIs(t, err, domain.ErrNoActiveEvent)
		assert.Equal(t, domain.ReasonNoActiveEvent, g.LastAction.Reason)
	})

	t.Run("not repairable", func(t *testing.T) {
		g := e.NewGame(1)
		_, err := e.TriggerEvent(ctx, g, catalog.EventPowerOutage)
		require.NoError(t, err)

		_, err = e.RepairSystem(ctx, g)
		assert.ErrorIs(t, err, domain.ErrEventNotRepairable)
		assert.NotNil(t, g.ActiveEvent)
	})

	t.Run("cannot afford", func(t *testing.T) {
		g := e.NewGame(1)
		_, err := e.TriggerEvent(ctx, g, catalog.EventPumpFailure)
		require.NoError(t, err)
		g.Money = 99

		_, err = e.RepairSystem(ctx, g)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, 99.0, g.Money)
		assert.NotNil(t, g.ActiveEvent)
	})
}

func TestRepairSystem_RestoresBiofilter(t *testing.T) {
	e := newTestEngine(t)
	g := e.NewGame(1)
	ctx := context.Background()

	_, err := e.TriggerEvent(ctx, g, catalog.EventFilterClog)
	require.NoError(t, err)
	e.events.ApplyEffects(g)
	require.InDelta(t, 0.56, g.System.Tank.BiofilterEfficiency, 1e-9)

	_, err = e.RepairSystem(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, 0.8, g.System.Tank.BiofilterEfficiency)
	assert.Equal(t, 4925.0, g.Money)
}

func TestTriggerEvent_Unknown(t *testing.T) {
	e := newTestEngine(t)
	g := e.NewGame(1)

	_, err := e.TriggerEvent(context.Background(), g, "waterLeek")

	assert.ErrorIs(t, err, domain.ErrUnknownEvent)
	assert.Equal(t, domain.ReasonUnknownEvent, g.LastAction.Reason)
	assert.Nil(t, g.ActiveEvent)
}
