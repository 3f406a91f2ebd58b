package domain

// Event categories
const (
	EventTypeTechnical = "technical"
	EventTypeSocial    = "social"
)

// Event severities
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// DurationUntilRepaired marks an event that only ends through repairSystem
const DurationUntilRepaired = 999

// Equipment categories
const (
	EquipmentTypeMonitoring = "monitoring"
	EquipmentTypeSystem     = "system"
	EquipmentTypeGrowing    = "growing"
	EquipmentTypeConsumable = "consumable"
)

// Range is a closed numeric interval
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies inside the interval
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// TemperatureRange is the survivable band with the optimal band inside it
type TemperatureRange struct {
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Optimal Range   `json:"optimal" yaml:"optimal"`
}

// FishSpecies is a static catalog entry keyed by species id
type FishSpecies struct {
	ID                    string           `json:"id" yaml:"id"`
	TempRange             TemperatureRange `json:"temp_range" yaml:"temp_range"`
	AmmoniaToleranceMax   float64          `json:"ammonia_tolerance_max" yaml:"ammonia_tolerance_max"`
	OxygenMin             float64          `json:"oxygen_min" yaml:"oxygen_min"`
	ProteinRequirement    Range            `json:"protein_requirement" yaml:"protein_requirement"`
	HarvestWeight         float64          `json:"harvest_weight" yaml:"harvest_weight"`
	HarvestTime           int              `json:"harvest_time" yaml:"harvest_time"`
	MarketValue           float64          `json:"market_value" yaml:"market_value"`
	FingerlingCost        float64          `json:"fingerling_cost" yaml:"fingerling_cost"`
	Availability          string           `json:"availability" yaml:"availability"`
	AmmoniaProductionRate float64          `json:"ammonia_production_rate" yaml:"ammonia_production_rate"`
	FoodConsumptionRate   float64          `json:"food_consumption_rate" yaml:"food_consumption_rate"`
}

// BaseGrowthRate is grams gained per fish per day under ideal conditions
func (s FishSpecies) BaseGrowthRate() float64 {
	if s.HarvestTime <= 0 {
		return 0
	}
	return s.HarvestWeight / float64(s.HarvestTime)
}

// NutrientRequirements are per-plant minimum levels in mg/L
type NutrientRequirements struct {
	Nitrogen   float64 `json:"nitrogen" yaml:"nitrogen"`
	Phosphorus float64 `json:"phosphorus" yaml:"phosphorus"`
	Potassium  float64 `json:"potassium" yaml:"potassium"`
	Calcium    float64 `json:"calcium" yaml:"calcium"`
	Magnesium  float64 `json:"magnesium" yaml:"magnesium"`
	Iron       float64 `json:"iron" yaml:"iron"`
}

// Total sums every requirement
func (n NutrientRequirements) Total() float64 {
	return n.Nitrogen + n.Phosphorus + n.Potassium + n.Calcium + n.Magnesium + n.Iron
}

// PlantSpecies is a static catalog entry keyed by species id
type PlantSpecies struct {
	ID                   string               `json:"id" yaml:"id"`
	Category             string               `json:"category" yaml:"category"`
	DensityPerM2         int                  `json:"density_per_m2" yaml:"density_per_m2"`
	GrowthPeriodWeeks    int                  `json:"growth_period_weeks" yaml:"growth_period_weeks"`
	OptimalPH            float64              `json:"optimal_ph" yaml:"optimal_ph"`
	NutrientRequirements NutrientRequirements `json:"nutrient_requirements" yaml:"nutrient_requirements"`
	ValuePerHead         float64              `json:"value_per_head" yaml:"value_per_head"`
	SeedCost             float64              `json:"seed_cost" yaml:"seed_cost"`
}

// GrowthPeriodDays is the growth period expressed in days
func (s PlantSpecies) GrowthPeriodDays() int {
	return s.GrowthPeriodWeeks * 7
}

// Equipment is a purchasable catalog item
type Equipment struct {
	ID          string  `json:"id" yaml:"id"`
	Cost        float64 `json:"cost" yaml:"cost"`
	Type        string  `json:"type" yaml:"type"`
	Description string  `json:"description" yaml:"description"`
	Units       int     `json:"units,omitempty" yaml:"units,omitempty"` // granted per purchase, consumables only
}

// EventEffects is what an event does while it is active
type EventEffects struct {
	LightsDisabled               bool    `json:"lights_disabled,omitempty" yaml:"lights_disabled,omitempty"`
	WaterLossPerTurn             float64 `json:"water_loss_per_turn,omitempty" yaml:"water_loss_per_turn,omitempty"`
	CirculationStopped           bool    `json:"circulation_stopped,omitempty" yaml:"circulation_stopped,omitempty"`
	BiofilterEfficiencyReduction float64 `json:"biofilter_efficiency_reduction,omitempty" yaml:"biofilter_efficiency_reduction,omitempty"`
	TransportCost                float64 `json:"transport_cost,omitempty" yaml:"transport_cost,omitempty"`
	Message                      string  `json:"message,omitempty" yaml:"message,omitempty"`
}

// EventDefinition is a static catalog entry for a random event
type EventDefinition struct {
	ID          string       `json:"id" yaml:"id"`
	Type        string       `json:"type" yaml:"type"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Cause       string       `json:"cause,omitempty" yaml:"cause,omitempty"`
	Effects     EventEffects `json:"effects" yaml:"effects"`
	Duration    int          `json:"duration" yaml:"duration"`
	Probability float64      `json:"probability" yaml:"probability"`
	Severity    string       `json:"severity" yaml:"severity"`
	RepairCost  *float64     `json:"repair_cost,omitempty" yaml:"repair_cost,omitempty"`
}

// Repairable reports whether the event can be ended by paying for a repair
func (e EventDefinition) Repairable() bool {
	return e.RepairCost != nil
}
