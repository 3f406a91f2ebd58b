package game

import (
	"context"
	"math/rand"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/logger"
)

// ProgressTurn advances the farm one day. Order matters: event effects are
// put in force, the system ticks, the clock moves, utilities accrue and the
// monthly bill may settle, then a new event may be rolled and an older
// active event counts down.
func (e *Engine) ProgressTurn(ctx context.Context, g *domain.GameState, rng *rand.Rand) (*domain.ActionResult, error) {
	log := logger.FromContext(ctx)

	sys, err := e.system(g)
	if err != nil {
		return nil, err
	}
	e.events.ApplyEffects(g)
	entry := e.tick(sys, g)

	g.GameTime++

	daily := DailyUtilities(g)
	g.BillsAccrued.Electricity += daily.Electricity
	g.BillsAccrued.Water += daily.Water

	res := &domain.ActionResult{
		Type:              domain.MoveProgressTurn,
		DailyUtilityCosts: &daily,
		Turn:              &entry,
	}

	if g.GameTime-g.LastBillPaid >= BillingCycleDays {
		res.BillPayment = settleBills(g)
		if res.BillPayment.Paid {
			log.Debug(LogMsgBillSettled, "day", g.GameTime, "total", res.BillPayment.Total)
		} else {
			log.Debug(LogMsgBillUnpaid, "day", g.GameTime, "debt", g.Debt)
		}
	}

	if ev := e.events.Roll(g, rng); ev != nil {
		res.EventTriggered = ev.ID
		log.Debug(LogMsgEventTriggered, "event", ev.ID, "day", g.GameTime, "severity", ev.Severity)
	}

	// an event triggered today starts counting down tomorrow
	if g.ActiveEvent != nil && g.ActiveEvent.TriggeredAt != g.GameTime {
		if ended := e.events.Progress(g); ended != "" {
			log.Debug(LogMsgEventEnded, "event", ended, "day", g.GameTime)
		}
	}

	return e.commit(ctx, g, res)
}

// SkipTurn advances the clock and the system tick without utilities,
// billing or events, and credits a small passive income.
func (e *Engine) SkipTurn(ctx context.Context, g *domain.GameState) (*domain.ActionResult, error) {
	sys, err := e.system(g)
	if err != nil {
		return nil, err
	}
	g.GameTime++
	entry := e.tick(sys, g)
	g.Money += PassiveIncome

	return e.commit(ctx, g, &domain.ActionResult{
		Type:          domain.MoveSkipTurn,
		PassiveIncome: PassiveIncome,
		Turn:          &entry,
	})
}

// DailyUtilities prices one day of electricity and water. Every owned
// equipment unit adds 10% to the electricity draw, and an active leak adds
// a surcharge on the water lost.
func DailyUtilities(g *domain.GameState) domain.UtilityCosts {
	electricity := BaseElectricityCost
	water := BaseWaterCost

	if g.System != nil {
		light := g.System.Light
		if light.IsOn && !g.EventEffects.LightsDisabled {
			electricity += light.HoursPerDay * light.CostPerHour
		}
		water += g.System.Tank.VolumeLiters * WaterCostPerLiter
	}
	electricity *= 1 + ElectricityPerUnit*float64(g.EquipmentUnits())
	water += g.EventEffects.WaterLossPerTurn * LeakSurchargePerLiter

	return domain.UtilityCosts{Electricity: electricity, Water: water}
}

// settleBills pays the accrued bill in full when money covers it. Otherwise
// all money goes to the bill and the shortfall is recorded as debt, which
// nothing collects later.
func settleBills(g *domain.GameState) *domain.BillPayment {
	total := g.BillsAccrued.Total()
	payment := &domain.BillPayment{
		Electricity: g.BillsAccrued.Electricity,
		Water:       g.BillsAccrued.Water,
		Total:       total,
	}

	if g.Money >= total {
		g.Money -= total
		payment.Paid = true
	} else {
		g.Debt += total - g.Money
		g.Money = 0
		payment.Debt = g.Debt
	}
	// the cycle restarts either way so a shortfall is billed once
	g.LastBillPaid = g.GameTime
	g.BillsAccrued = domain.Bills{}
	return payment
}
