// Package event drives the random events that disrupt a farm: rolling for
// new ones each day, applying their effects and counting them down.
package event

import (
	"fmt"
	"math/rand"

	"github.com/osse101/AquaponicsSim_Go/internal/aquaponics"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

// Catalog is the subset of the static tables the manager needs
type Catalog interface {
	Event(id string) (domain.EventDefinition, bool)
	Events() []domain.EventDefinition
}

// Manager owns the idle/active lifecycle of a game's event slot
type Manager struct {
	catalog Catalog
}

// NewManager creates a manager over the given event definitions
func NewManager(c Catalog) *Manager {
	return &Manager{catalog: c}
}

// Roll gives each catalog event, in definition order, one chance to trigger.
// Nothing happens while an event is already active, and at most one event
// triggers per roll.
func (m *Manager) Roll(g *domain.GameState, rng *rand.Rand) *domain.ActiveEvent {
	if g.ActiveEvent != nil {
		return nil
	}
	for _, def := range m.catalog.Events() {
		if rng.Float64() < def.Probability {
			return m.activate(g, def)
		}
	}
	return nil
}

// Trigger forces an event by id, replacing any active one
func (m *Manager) Trigger(g *domain.GameState, id string) (*domain.ActiveEvent, error) {
	def, ok := m.catalog.Event(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownEvent, id)
	}
	return m.activate(g, def), nil
}

func (m *Manager) activate(g *domain.GameState, def domain.EventDefinition) *domain.ActiveEvent {
	g.ActiveEvent = &domain.ActiveEvent{
		EventDefinition: def,
		TurnsRemaining:  def.Duration,
		TriggeredAt:     g.GameTime,
	}
	g.EventHistory = append(g.EventHistory, domain.EventHistoryEntry{
		EventID:     def.ID,
		TriggeredAt: g.GameTime,
		Duration:    def.Duration,
	})
	return g.ActiveEvent
}

// ApplyEffects puts the active event's effects into force for the coming day
// and returns the litres drained by a leak. With no active event the effects
// are cleared and the biofilter runs at its baseline.
func (m *Manager) ApplyEffects(g *domain.GameState) float64 {
	if g.ActiveEvent == nil {
		Clear(g)
		return 0
	}

	effects := g.ActiveEvent.Effects
	g.EventEffects = effects

	if g.System == nil {
		return 0
	}
	tank := &g.System.Tank

	// re-derived from the baseline every day so a clog never compounds
	tank.BiofilterEfficiency = tank.BaselineBiofilterEfficiency
	if effects.BiofilterEfficiencyReduction > 0 {
		tank.BiofilterEfficiency = tank.BaselineBiofilterEfficiency * (1 - effects.BiofilterEfficiencyReduction)
	}

	if effects.WaterLossPerTurn > 0 {
		return aquaponics.Drain(tank, effects.WaterLossPerTurn)
	}
	return 0
}

// Progress counts the active event down one day and clears it when it runs
// out. It returns the id of an event that ended, or "".
func (m *Manager) Progress(g *domain.GameState) string {
	if g.ActiveEvent == nil {
		return ""
	}
	g.ActiveEvent.TurnsRemaining--
	if g.ActiveEvent.TurnsRemaining > 0 {
		return ""
	}
	id := g.ActiveEvent.ID
	Clear(g)
	return id
}

// Current returns a copy of the active event, or nil when idle
func Current(g *domain.GameState) *domain.ActiveEvent {
	if g.ActiveEvent == nil {
		return nil
	}
	ev := *g.ActiveEvent
	return &ev
}

// Clear ends the active event and undoes its standing effects
func Clear(g *domain.GameState) {
	g.ActiveEvent = nil
	g.EventEffects = domain.EventEffects{}
	if g.System != nil {
		g.System.Tank.BiofilterEfficiency = g.System.Tank.BaselineBiofilterEfficiency
	}
}
