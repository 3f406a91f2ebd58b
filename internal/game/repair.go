package game

import (
	"context"
	"fmt"

	"github.com/osse101/AquaponicsSim_Go/internal/aquaponics"
	"github.com/osse101/AquaponicsSim_Go/internal/catalog"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/event"
)

// RepairSystem pays to end the active event. The tank is refilled and the
// biofilter returns to its baseline.
func (e *Engine) RepairSystem(ctx context.Context, g *domain.GameState) (*domain.ActionResult, error) {
	ev := g.ActiveEvent
	if ev == nil {
		return e.reject(ctx, g, domain.MoveRepairSystem, domain.ErrNoActiveEvent)
	}
	if !ev.Repairable() {
		return e.reject(ctx, g, domain.MoveRepairSystem, fmt.Errorf("%w: %s", domain.ErrEventNotRepairable, ev.ID))
	}
	cost := *ev.RepairCost
	if err := checkFunds(g, cost); err != nil {
		return e.reject(ctx, g, domain.MoveRepairSystem, err)
	}

	g.Money -= cost
	if g.System != nil {
		aquaponics.Refill(&g.System.Tank)
	}
	event.Clear(g)

	return e.commit(ctx, g, &domain.ActionResult{
		Type:          domain.MoveRepairSystem,
		EventRepaired: ev.ID,
		Cost:          cost,
	})
}

// TriggerEvent starts an event by id, replacing any active one
func (e *Engine) TriggerEvent(ctx context.Context, g *domain.GameState, id string) (*domain.ActionResult, error) {
	ev, err := e.events.Trigger(g, id)
	if err != nil {
		return e.rejectWithSuggestion(ctx, g, domain.MoveTriggerEvent, err, e.catalog.Suggest(catalog.KindEvent, id))
	}
	return e.commit(ctx, g, &domain.ActionResult{
		Type:           domain.MoveTriggerEvent,
		EventTriggered: ev.ID,
	})
}
