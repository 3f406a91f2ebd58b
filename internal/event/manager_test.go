package event

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AquaponicsSim_Go/internal/aquaponics"
	"github.com/osse101/AquaponicsSim_Go/internal/catalog"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

type stubCatalog struct {
	events []domain.EventDefinition
}

func (s stubCatalog) Event(id string) (domain.EventDefinition, bool) {
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.EventDefinition{}, false
}

func (s stubCatalog) Events() []domain.EventDefinition {
	return s.events
}

func newState() *domain.GameState {
	return &domain.GameState{GameTime: 4, System: aquaponics.NewSystem()}
}

func TestRoll_FirstHitWins(t *testing.T) {
	m := NewManager(stubCatalog{events: []domain.EventDefinition{
		{ID: "never", Probability: 0, Duration: 1},
		{ID: "always", Probability: 1, Duration: 2},
		{ID: "also", Probability: 1, Duration: 3},
	}})
	g := newState()

	ev := m.Roll(g, rand.New(rand.NewSource(1))) //nolint:gosec // deterministic test rng

	require.NotNil(t, ev)
	assert.Equal(t, "always", ev.ID)
	assert.Equal(t, 2, ev.TurnsRemaining)
	assert.Equal(t, 4, ev.TriggeredAt)
	assert.Equal(t, []domain.EventHistoryEntry{{EventID: "always", TriggeredAt: 4, Duration: 2}}, g.EventHistory)
}

func TestRoll_SkippedWhileActive(t *testing.T) {
	m := NewManager(stubCatalog{events: []domain.EventDefinition{{ID: "always", Probability: 1, Duration: 2}}})
	g := newState()
	g.ActiveEvent = &domain.ActiveEvent{EventDefinition: domain.EventDefinition{ID: "busy"}, TurnsRemaining: 1}

	assert.Nil(t, m.Roll(g, rand.New(rand.NewSource(1)))) //nolint:gosec // deterministic test rng
	assert.Equal(t, "busy", g.ActiveEvent.ID)
	assert.Empty(t, g.EventHistory)
}

func TestRoll_IsDeterministicForSeed(t *testing.T) {
	m := NewManager(catalog.MustDefault())

	run := func() []domain.EventHistoryEntry {
		g := newState()
		rng := rand.New(rand.NewSource(42)) //nolint:gosec // deterministic test rng
		for day := 0; day < 200; day++ {
			g.GameTime = day
			m.Roll(g, rng)
			m.Progress(g)
		}
		return g.EventHistory
	}

	first := run()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, run())
}

func TestTrigger_UnknownEvent(t *testing.T) {
	m := NewManager(catalog.MustDefault())
	g := newState()

	ev, err := m.Trigger(g, "meteorStrike")

	assert.Nil(t, ev)
	assert.ErrorIs(t, err, domain.ErrUnknownEvent)
	assert.Nil(t, g.ActiveEvent)
}

func TestApplyEffects_WaterLeakDrainsDaily(t *testing.T) {
	m := NewManager(catalog.MustDefault())
	g := newState()
	_, err := m.Trigger(g, catalog.EventWaterLeak)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 50.0, m.ApplyEffects(g))
	}

	assert.Equal(t, 850.0, g.System.Tank.CurrentWaterLevel)
	assert.Equal(t, 50.0, g.EventEffects.WaterLossPerTurn)
}

func TestApplyEffects_LeakStopsAtEmpty(t *testing.T) {
	m := NewManager(catalog.MustDefault())
	g := newState()
	g.System.Tank.CurrentWaterLevel = 20
	_, err := m.Trigger(g, catalog.EventWaterLeak)
	require.NoError(t, err)

	assert.Equal(t, 20.0, m.ApplyEffects(g))
	assert.Equal(t, 0.0, g.System.Tank.CurrentWaterLevel)
}

func TestApplyEffects_FilterClogDoesNotCompound(t *testing.T) {
	m := NewManager(catalog.MustDefault())
	g := newState()
	_, err := m.Trigger(g, catalog.EventFilterClog)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		m.ApplyEffects(g)
	}

	assert.InDelta(t, 0.56, g.System.Tank.BiofilterEfficiency, 1e-9)
	assert.Equal(t, 0.8, g.System.Tank.BaselineBiofilterEfficiency)
}

func TestApplyEffects_IdleRestoresBaseline(t *testing.T) {
	m := NewManager(catalog.MustDefault())
	g := newState()
	g.System.Tank.BiofilterEfficiency = 0.1
	g.EventEffects = domain.EventEffects{LightsDisabled: true}

	assert.Equal(t, 0.0, m.ApplyEffects(g))

	assert.Equal(t, 0.8, g.System.Tank.BiofilterEfficiency)
	assert.Equal(t, domain.EventEffects{}, g.EventEffects)
}

func TestApplyEffects_RecordsFlags(t *testing.T) {
	tests := []struct {
		event string
		check func(t *testing.T, e domain.EventEffects)
	}{
		{catalog.EventPowerOutage, func(t *testing.T, e domain.EventEffects) { assert.True(t, e.LightsDisabled) }},
		{catalog.EventPumpFailure, func(t *testing.T, e domain.EventEffects) { assert.True(t, e.CirculationStopped) }},
		{catalog.EventGasPriceSpike, func(t *testing.T, e domain.EventEffects) { assert.Equal(t, 100.0, e.TransportCost) }},
		{catalog.EventMarketDay, func(t *testing.T, e domain.EventEffects) { assert.NotEmpty(t, e.Message) }},
	}

	m := NewManager(catalog.MustDefault())
	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			g := newState()
			_, err := m.Trigger(g, tt.event)
			require.NoError(t, err)

			m.ApplyEffects(g)
			tt.check(t, g.EventEffects)
		})
	}
}

func TestProgress_ClearsWhenExpired(t *testing.T) {
	m := NewManager(catalog.MustDefault())
	g := newState()
	_, err := m.Trigger(g, catalog.EventFilterClog)
	require.NoError(t, err)
	m.ApplyEffects(g)

	for i := 0; i < 4; i++ {
		assert.Empty(t, m.Progress(g))
	}
	assert.Equal(t, 1, g.ActiveEvent.TurnsRemaining)

	assert.Equal(t, catalog.EventFilterClog, m.Progress(g))
	assert.Nil(t, g.ActiveEvent)
	assert.Equal(t, domain.EventEffects{}, g.EventEffects)
	assert.Equal(t, 0.8, g.System.Tank.BiofilterEfficiency)
	assert.Empty(t, m.Progress(g))
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	m := NewManager(catalog.MustDefault())
	g := newState()
	assert.Nil(t, Current(g))

	_, err := m.Trigger(g, catalog.EventPumpFailure)
	require.NoError(t, err)

	view := Current(g)
	view.TurnsRemaining = 0
	assert.Equal(t, 3, g.ActiveEvent.TurnsRemaining)
}
