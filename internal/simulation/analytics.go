package simulation

import (
	"math"
	"sort"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

// Transactions are running totals of everything a game bought and sold
type Transactions struct {
	FishPurchased      int     `json:"fish_purchased"`
	PlantsPurchased    int     `json:"plants_purchased"`
	EquipmentPurchased int     `json:"equipment_purchased"`
	FoodPurchased      int     `json:"food_purchased"`
	FishSold           int     `json:"fish_sold"`
	PlantsSold         int     `json:"plants_sold"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalExpenses      float64 `json:"total_expenses"`
	BillsPaid          float64 `json:"bills_paid"`
	RepairCosts        float64 `json:"repair_costs"`
	TransportCosts     float64 `json:"transport_costs"`
	PassiveIncome      float64 `json:"passive_income"`
}

// FishSnapshot is one flock at snapshot time
type FishSnapshot struct {
	Type   string  `json:"type"`
	Count  int     `json:"count"`
	Size   float64 `json:"size"`
	Health float64 `json:"health"`
}

// Snapshot is the farm at one point on the timeline
type Snapshot struct {
	Day            int            `json:"day"`
	Turn           int            `json:"turn"`
	Money          float64        `json:"money"`
	Fish           []FishSnapshot `json:"fish"`
	PlantCount     int            `json:"plant_count"`
	AvgFishHealth  float64        `json:"avg_fish_health"`
	Equipment      []string       `json:"equipment"`
	TankWaterLevel float64        `json:"tank_water_level"`
	HasActiveEvent bool           `json:"has_active_event"`
}

// EventRecord is a triggered event as seen by analytics
type EventRecord struct {
	Day        int      `json:"day"`
	EventID    string   `json:"event_id"`
	Name       string   `json:"name"`
	Severity   string   `json:"severity"`
	RepairCost *float64 `json:"repair_cost,omitempty"`
}

// Summary is the report without its timeline
type Summary struct {
	InitialMoney   float64       `json:"initial_money"`
	FinalMoney     float64       `json:"final_money"`
	MoneyChange    float64       `json:"money_change"`
	NetProfit      float64       `json:"net_profit"`
	AvgDailyProfit float64       `json:"avg_daily_profit"`
	Days           int           `json:"days"`
	Transactions   Transactions  `json:"transactions"`
	Events         []EventRecord `json:"events"`
	SnapshotCount  int           `json:"snapshot_count"`
}

// Report is the full analytics for one game
type Report struct {
	Summary
	Timeline []Snapshot `json:"timeline"`
}

// GameAnalytics follows a single game through its action results
type GameAnalytics struct {
	initialMoney float64
	transactions Transactions
	events       []EventRecord
	seenEvents   map[int]bool
	snapshots    []Snapshot
}

// NewGameAnalytics starts tracking from the game's current money
func NewGameAnalytics(g *domain.GameState) *GameAnalytics {
	return &GameAnalytics{
		initialMoney: g.Money,
		seenEvents:   make(map[int]bool),
		events:       []EventRecord{},
		snapshots:    []Snapshot{},
	}
}

// Record folds one action result into the totals. Rejected moves and
// informational moves change nothing.
func (a *GameAnalytics) Record(g *domain.GameState, res *domain.ActionResult) {
	if res == nil || !res.Success {
		return
	}
	t := &a.transactions

	switch res.Type {
	case domain.MoveBuyFish:
		t.FishPurchased += res.Count
		t.TotalExpenses += res.Cost
	case domain.MoveBuyPlantSeeds:
		t.PlantsPurchased += res.Count
		t.TotalExpenses += res.Cost
	case domain.MoveBuyEquipment:
		if res.Count > 0 {
			t.FoodPurchased += res.Count
		} else {
			t.EquipmentPurchased += res.Quantity
		}
		t.TotalExpenses += res.Cost
	case domain.MoveBuyFishFood:
		t.FoodPurchased += res.Count
		t.TotalExpenses += res.Cost
	case domain.MoveSellFish:
		t.FishSold += len(res.FishSold)
		a.recordSale(res)
	case domain.MoveSellPlants:
		t.PlantsSold += len(res.PlantsSold)
		a.recordSale(res)
	case domain.MoveRepairSystem:
		t.RepairCosts += res.Cost
		t.TotalExpenses += res.Cost
	case domain.MoveProgressTurn:
		if bp := res.BillPayment; bp != nil && bp.Paid {
			t.BillsPaid += bp.Total
			t.TotalExpenses += bp.Total
		}
	case domain.MoveSkipTurn:
		t.PassiveIncome += res.PassiveIncome
	}

	if res.EventTriggered != "" {
		a.recordEvent(g)
	}
}

func (a *GameAnalytics) recordSale(res *domain.ActionResult) {
	a.transactions.TotalRevenue += res.TotalValue
	a.transactions.TransportCosts += res.TransportCost
	a.transactions.TotalExpenses += res.TransportCost
}

// one entry per trigger day, a second trigger on the same day is ignored
func (a *GameAnalytics) recordEvent(g *domain.GameState) {
	ev := g.ActiveEvent
	if ev == nil || a.seenEvents[ev.TriggeredAt] {
		return
	}
	a.seenEvents[ev.TriggeredAt] = true
	a.events = append(a.events, EventRecord{
		Day:        ev.TriggeredAt,
		EventID:    ev.ID,
		Name:       ev.Name,
		Severity:   ev.Severity,
		RepairCost: ev.RepairCost,
	})
}

// Snapshot appends the current farm to the timeline
func (a *GameAnalytics) Snapshot(g *domain.GameState) {
	s := Snapshot{
		Day:            g.GameTime,
		Turn:           g.MoveCount,
		Money:          round2(g.Money),
		Fish:           make([]FishSnapshot, 0, len(g.Fish)),
		PlantCount:     len(g.Plants),
		Equipment:      make([]string, 0, len(g.Equipment)),
		HasActiveEvent: g.ActiveEvent != nil,
	}

	health := 0.0
	for _, f := range g.Fish {
		s.Fish = append(s.Fish, FishSnapshot{Type: f.Type, Count: f.Count, Size: f.Size, Health: f.Health})
		health += f.Health
	}
	if len(g.Fish) > 0 {
		s.AvgFishHealth = round2(health / float64(len(g.Fish)))
	}
	for id, n := range g.Equipment {
		if n > 0 {
			s.Equipment = append(s.Equipment, id)
		}
	}
	sort.Strings(s.Equipment)
	if g.System != nil {
		s.TankWaterLevel = g.System.Tank.CurrentWaterLevel
	}

	a.snapshots = append(a.snapshots, s)
}

// Transactions returns the running totals
func (a *GameAnalytics) Transactions() Transactions {
	return a.transactions
}

// Report builds the full analytics against the game's current state
func (a *GameAnalytics) Report(g *domain.GameState) Report {
	timeline := make([]Snapshot, len(a.snapshots))
	copy(timeline, a.snapshots)
	return Report{Summary: a.Summary(g), Timeline: timeline}
}

// Summary is Report without the timeline
func (a *GameAnalytics) Summary(g *domain.GameState) Summary {
	t := a.transactions
	net := t.TotalRevenue + t.PassiveIncome - t.TotalExpenses
	events := make([]EventRecord, len(a.events))
	copy(events, a.events)

	return Summary{
		InitialMoney:   a.initialMoney,
		FinalMoney:     round2(g.Money),
		MoneyChange:    round2(g.Money - a.initialMoney),
		NetProfit:      round2(net),
		AvgDailyProfit: round2(net / float64(max(1, g.GameTime))),
		Days:           g.GameTime,
		Transactions:   t,
		Events:         events,
		SnapshotCount:  len(a.snapshots),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
