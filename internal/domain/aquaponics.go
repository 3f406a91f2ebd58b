package domain

// WaterChemistry holds the dissolved state of the shared tank water.
// Nitrogen compounds and nutrient pools are in mg/L.
type WaterChemistry struct {
	Ammonia         float64 `json:"ammonia"`
	Nitrite         float64 `json:"nitrite"`
	Nitrate         float64 `json:"nitrate"`
	PH              float64 `json:"ph"`
	Temperature     float64 `json:"temperature"`
	DissolvedOxygen float64 `json:"dissolved_oxygen"`
	Phosphorus      float64 `json:"phosphorus"`
	Potassium       float64 `json:"potassium"`
	Calcium         float64 `json:"calcium"`
	Magnesium       float64 `json:"magnesium"`
	Iron            float64 `json:"iron"`
}

// Fish is a flock of one species. Count is the flock size, not an identity.
type Fish struct {
	Type   string  `json:"type"`
	Count  int     `json:"count"`
	Health float64 `json:"health"`
	Size   float64 `json:"size"`
	Age    int     `json:"age"`
}

// Deficiency records a nutrient shortfall observed during a single growth day
type Deficiency struct {
	Nutrient string `json:"nutrient"`
	Symptom  string `json:"symptom"`
	Severity string `json:"severity"`
}

// Plant is owned by GameState.Plants; grow beds only reference it by ID.
type Plant struct {
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	BedID        string       `json:"bed_id"`
	Size         float64      `json:"size"`
	Health       float64      `json:"health"`
	DaysGrown    int          `json:"days_grown"`
	WeeksGrown   int          `json:"weeks_grown"`
	Maturity     float64      `json:"maturity"`
	Deficiencies []Deficiency `json:"deficiencies"`
}

// GrowBed is a planting area. PlantIDs keeps insertion order.
type GrowBed struct {
	ID        string   `json:"id"`
	PlantType string   `json:"plant_type"`
	Capacity  int      `json:"capacity"`
	PlantIDs  []string `json:"plant_ids"`
}

// Tank holds the water body and the biofilter that cycles it.
type Tank struct {
	VolumeLiters                float64        `json:"volume_liters"`
	CurrentWaterLevel           float64        `json:"current_water_level"`
	Water                       WaterChemistry `json:"water"`
	BiofilterEfficiency         float64        `json:"biofilter_efficiency"`
	BaselineBiofilterEfficiency float64        `json:"baseline_biofilter_efficiency"`
}

// Light is the grow light over the beds
type Light struct {
	HoursPerDay  float64 `json:"hours_per_day"`
	IntensityPAR float64 `json:"intensity_par"`
	IsOn         bool    `json:"is_on"`
	CostPerHour  float64 `json:"cost_per_hour"`
}

// NutrientUsage is the per-nutrient amount drawn from the tank in one day
type NutrientUsage struct {
	Nitrogen   float64 `json:"nitrogen"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
	Calcium    float64 `json:"calcium"`
	Magnesium  float64 `json:"magnesium"`
	Iron       float64 `json:"iron"`
}

// PlantGrowthReport is one plant's outcome inside a bed report
type PlantGrowthReport struct {
	PlantID      string       `json:"plant_id"`
	Success      bool         `json:"success"`
	Reason       string       `json:"reason,omitempty"`
	GrowthRate   float64      `json:"growth_rate"`
	Maturity     float64      `json:"maturity"`
	Health       float64      `json:"health"`
	Deficiencies []Deficiency `json:"deficiencies,omitempty"`
}

// BedGrowthReport summarises one grow bed for a day
type BedGrowthReport struct {
	BedID       string              `json:"bed_id"`
	PlantCount  int                 `json:"plant_count"`
	TotalGrowth float64             `json:"total_growth"`
	Plants      []PlantGrowthReport `json:"plants"`
}

// LightStatus is the light as observed by the tick
type LightStatus struct {
	Available        bool    `json:"available"`
	HoursPerDay      float64 `json:"hours_per_day"`
	IntensityPAR     float64 `json:"intensity_par"`
	DailyCost        float64 `json:"daily_cost"`
	GrowthMultiplier float64 `json:"growth_multiplier"`
}

// TurnLogEntry is an append-only diagnostic record of one system tick.
// It is never replayed.
type TurnLogEntry struct {
	Day              int               `json:"day"`
	Water            WaterChemistry    `json:"water"`
	AmmoniaProduced  float64           `json:"ammonia_produced"`
	NutrientDemand   float64           `json:"nutrient_demand"`
	TotalGrowth      float64           `json:"total_growth"`
	NutrientUsage    NutrientUsage     `json:"nutrient_usage"`
	Beds             []BedGrowthReport `json:"beds"`
	Light            LightStatus       `json:"light"`
	BiofilterApplied float64           `json:"biofilter_applied"`
}

// AquaponicsSystem is the physical installation: one tank, beds and a light
type AquaponicsSystem struct {
	Tank     Tank                `json:"tank"`
	GrowBeds map[string]*GrowBed `json:"grow_beds"`
	Light    Light               `json:"light"`
	Log      []TurnLogEntry      `json:"log"`
}
