package domain

import (
	"time"

	"github.com/google/uuid"
)

// Move names accepted by the engine dispatcher
const (
	MoveBuyEquipment        = "buyEquipment"
	MoveBuyFish             = "buyFish"
	MoveBuyPlantSeeds       = "buyPlantSeeds"
	MoveBuyFishFood         = "buyFishFood"
	MoveSellFish            = "sellFish"
	MoveSellPlants          = "sellPlants"
	MoveFeedFish            = "feedFish"
	MoveProgressTurn        = "progressTurn"
	MoveSkipTurn            = "skipTurn"
	MoveRepairSystem        = "repairSystem"
	MoveGetMarketPrices     = "getMarketPrices"
	MoveGetEquipmentCatalog = "getEquipmentCatalog"
	MoveTriggerEvent        = "triggerEvent"
)

// Move is a named move with positional arguments
type Move struct {
	Name string `json:"name"`
	Args []any  `json:"args"`
}

// Match is a persisted game session
type Match struct {
	ID        uuid.UUID  `json:"id"`
	Label     string     `json:"label,omitempty"`
	State     *GameState `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// MatchSummary is the list view of a match
type MatchSummary struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label,omitempty"`
	GameTime  int       `json:"game_time"`
	Money     float64   `json:"money"`
	UpdatedAt time.Time `json:"updated_at"`
}
