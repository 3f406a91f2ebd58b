package domain

// SaleLine is one sold fish flock or plant
type SaleLine struct {
	Type    string  `json:"type"`
	ID      string  `json:"id,omitempty"`
	Index   int     `json:"index"`
	Count   int     `json:"count"`
	Size    float64 `json:"size"`
	Health  float64 `json:"health"`
	Value   float64 `json:"value"`
	Quality string  `json:"quality,omitempty"`
}

// UtilityCosts is one day of accrued utilities
type UtilityCosts struct {
	Electricity float64 `json:"electricity"`
	Water       float64 `json:"water"`
}

// BillPayment describes a settlement attempt
type BillPayment struct {
	Electricity float64 `json:"electricity"`
	Water       float64 `json:"water"`
	Total       float64 `json:"total"`
	Paid        bool    `json:"paid"`
	Debt        float64 `json:"debt"`
}

// FishStress breaks down environmental stress, each in [0, 1]
type FishStress struct {
	Temperature float64 `json:"temperature"`
	Ammonia     float64 `json:"ammonia"`
	Oxygen      float64 `json:"oxygen"`
	Overall     float64 `json:"overall"`
}

// FeedResult is the outcome of one feeding
type FeedResult struct {
	FoodUsed  float64    `json:"food_used"`
	Growth    float64    `json:"growth"`
	FoodRatio float64    `json:"food_ratio"`
	Stress    FishStress `json:"stress"`
	Health    float64    `json:"health"`
	Size      float64    `json:"size"`
}

// MarketPrices lists current sale prices: fish per lb, plants per head
type MarketPrices struct {
	Fish          map[string]float64 `json:"fish"`
	Plants        map[string]float64 `json:"plants"`
	TransportCost float64            `json:"transport_cost"`
}

// ActionResult describes the last move applied to a game, successful or not
type ActionResult struct {
	Type              string        `json:"type"`
	Success           bool          `json:"success"`
	Reason            string        `json:"reason,omitempty"`
	Error             string        `json:"error,omitempty"`
	Suggestion        string        `json:"suggestion,omitempty"`
	Day               int           `json:"day"`
	Item              string        `json:"item,omitempty"`
	Cost              float64       `json:"cost,omitempty"`
	Quantity          int           `json:"quantity,omitempty"`
	Count             int           `json:"count,omitempty"`
	Benefits          []string      `json:"benefits,omitempty"`
	FishSold          []SaleLine    `json:"fish_sold,omitempty"`
	PlantsSold        []SaleLine    `json:"plants_sold,omitempty"`
	TotalValue        float64       `json:"total_value,omitempty"`
	PassiveIncome     float64       `json:"passive_income,omitempty"`
	TransportCost     float64       `json:"transport_cost,omitempty"`
	DailyUtilityCosts *UtilityCosts `json:"daily_utility_costs,omitempty"`
	BillPayment       *BillPayment  `json:"bill_payment,omitempty"`
	EventRepaired     string        `json:"event_repaired,omitempty"`
	EventTriggered    string        `json:"event_triggered,omitempty"`
	Feed              *FeedResult   `json:"feed,omitempty"`
	Turn              *TurnLogEntry `json:"turn,omitempty"`
	Prices            *MarketPrices `json:"prices,omitempty"`
	Catalog           []Equipment   `json:"catalog,omitempty"`
}
