package domain

import (
	"encoding/json"
	"fmt"
)

// Bills are utility charges accrued since the last settlement
type Bills struct {
	Electricity float64 `json:"electricity"`
	Water       float64 `json:"water"`
}

// Total is the amount owed across utilities
func (b Bills) Total() float64 {
	return b.Electricity + b.Water
}

// Modifiers are multipliers granted by purchased equipment
type Modifiers struct {
	CirculationEfficiency float64 `json:"circulation_efficiency"`
	OxygenLevel           float64 `json:"oxygen_level"`
	PlantGrowthRate       float64 `json:"plant_growth_rate"`
}

// ActiveEvent is a triggered copy of a catalog event
type ActiveEvent struct {
	EventDefinition
	TurnsRemaining int `json:"turns_remaining"`
	TriggeredAt    int `json:"triggered_at"`
}

// EventHistoryEntry records every trigger for analytics
type EventHistoryEntry struct {
	EventID     string `json:"event_id"`
	TriggeredAt int    `json:"triggered_at"`
	Duration    int    `json:"duration"`
}

// GameState is the full, serialisable state of one farm
type GameState struct {
	Seed         int64               `json:"seed"`
	Fish         []*Fish             `json:"fish"`
	Plants       []*Plant            `json:"plants"`
	System       *AquaponicsSystem   `json:"system"`
	Money        float64             `json:"money"`
	GameTime     int                 `json:"game_time"`
	BillsAccrued Bills               `json:"bills_accrued"`
	LastBillPaid int                 `json:"last_bill_paid"`
	Debt         float64             `json:"debt"`
	Equipment    map[string]int      `json:"equipment"`
	FishFood     int                 `json:"fish_food"`
	Modifiers    Modifiers           `json:"modifiers"`
	MaxFish      int                 `json:"max_fish"`
	MaxPlants    int                 `json:"max_plants"`
	ActiveEvent  *ActiveEvent        `json:"active_event,omitempty"`
	EventEffects EventEffects        `json:"event_effects"`
	EventHistory []EventHistoryEntry `json:"event_history"`
	LastAction   *ActionResult       `json:"last_action,omitempty"`
	MoveCount    int                 `json:"move_count"`
}

// FishCount is the number of individual fish across all flocks
func (g *GameState) FishCount() int {
	total := 0
	for _, f := range g.Fish {
		total += f.Count
	}
	return total
}

// NetWorth is money minus outstanding debt
func (g *GameState) NetWorth() float64 {
	return g.Money - g.Debt
}

// PlantByID returns the plant and its arena index, or nil and -1
func (g *GameState) PlantByID(id string) (*Plant, int) {
	for i, p := range g.Plants {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

// EquipmentUnits counts owned units, optionally skipping some ids
func (g *GameState) EquipmentUnits(skip ...string) int {
	total := 0
	for id, n := range g.Equipment {
		excluded := false
		for _, s := range skip {
			if s == id {
				excluded = true
				break
			}
		}
		if !excluded {
			total += n
		}
	}
	return total
}

// Clone returns a deep copy through the serialised form, which is the
// persistence contract for game state.
func (g *GameState) Clone() (*GameState, error) {
	data, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game state: %w", err)
	}
	var out GameState
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}
	return &out, nil
}
