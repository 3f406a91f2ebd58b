// Package plant implements daily growth, nutrient deficiencies and harvest
// valuation for plants. Species data is always passed in explicitly.
package plant

import (
	"math"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

// GrowResult is the outcome of one growth day
type GrowResult struct {
	Success           bool
	Reason            string
	GrowthRate        float64
	PHPenalty         float64
	NutrientPenalties map[string]float64
	Deficiencies      []domain.Deficiency
	DaysGrown         int
	WeeksGrown        int
	Maturity          float64
	Health            float64
}

// HarvestResult is the outcome of harvesting a plant
type HarvestResult struct {
	Success bool
	Reason  string
	Value   float64
	Quality string
	Health  float64
}

// New creates a seedling
func New(id, species, bedID string) *domain.Plant {
	return &domain.Plant{
		ID:           id,
		Type:         species,
		BedID:        bedID,
		Size:         InitialSize,
		Health:       MaxHealth,
		Maturity:     0,
		Deficiencies: []domain.Deficiency{},
	}
}

// Grow advances a plant by one day against the given water
func Grow(p *domain.Plant, sp domain.PlantSpecies, w domain.WaterChemistry, lightAvailable bool) GrowResult {
	return GrowBoosted(p, sp, w, lightAvailable, 1)
}

// GrowBoosted is Grow with a biomass multiplier from lighting and equipment.
// The boost scales size gain only; growth rate and maturity are unaffected.
func GrowBoosted(p *domain.Plant, sp domain.PlantSpecies, w domain.WaterChemistry, lightAvailable bool, boost float64) GrowResult {
	if !lightAvailable {
		return GrowResult{
			Success:      false,
			Reason:       ReasonNoLight,
			Deficiencies: p.Deficiencies,
			DaysGrown:    p.DaysGrown,
			WeeksGrown:   p.WeeksGrown,
			Maturity:     p.Maturity,
			Health:       p.Health,
		}
	}

	phPenalty := PHPenalty(sp.OptimalPH, w.PH)
	penalties, deficiencies := NutrientPenalties(sp.NutrientRequirements, w)

	totalPenalty := phPenalty
	for _, v := range penalties {
		totalPenalty += v
	}
	growthRate := math.Max(0, 1-totalPenalty)

	p.DaysGrown++
	p.WeeksGrown = p.DaysGrown / daysPerWeek
	if days := sp.GrowthPeriodDays(); days > 0 {
		p.Maturity = math.Min(MaxMaturity, p.Maturity+(MaxMaturity/float64(days))*growthRate)
	}
	p.Size += growthRate * math.Max(0, boost)
	p.Health = math.Max(0, p.Health-totalPenalty*healthLossPerPenalty)
	p.Deficiencies = deficiencies

	return GrowResult{
		Success:           true,
		GrowthRate:        growthRate,
		PHPenalty:         phPenalty,
		NutrientPenalties: penalties,
		Deficiencies:      deficiencies,
		DaysGrown:         p.DaysGrown,
		WeeksGrown:        p.WeeksGrown,
		Maturity:          p.Maturity,
		Health:            p.Health,
	}
}

// PHPenalty is the growth penalty for pH away from the species optimum
func PHPenalty(optimal, ph float64) float64 {
	deviation := math.Abs(ph - optimal)
	switch {
	case deviation > phSevereDeviation:
		return phSeverePenalty
	case deviation > phMildDeviation:
		return phMildPenalty
	default:
		return 0
	}
}

// NutrientPenalties scores each nutrient below requirement. Nitrogen is read
// from nitrate. The deficiency list follows a fixed nutrient order.
func NutrientPenalties(req domain.NutrientRequirements, w domain.WaterChemistry) (map[string]float64, []domain.Deficiency) {
	levels := map[string][2]float64{
		NutrientNitrogen:   {w.Nitrate, req.Nitrogen},
		NutrientPhosphorus: {w.Phosphorus, req.Phosphorus},
		NutrientPotassium:  {w.Potassium, req.Potassium},
		NutrientCalcium:    {w.Calcium, req.Calcium},
		NutrientMagnesium:  {w.Magnesium, req.Magnesium},
		NutrientIron:       {w.Iron, req.Iron},
	}

	penalties := make(map[string]float64)
	deficiencies := []domain.Deficiency{}

	for _, rule := range nutrientRules {
		lv := levels[rule.nutrient]
		level, required := lv[0], lv[1]
		if required <= 0 || level >= required {
			continue
		}

		penalty := (1 - math.Max(0, level)/required) * rule.weight
		penalties[rule.nutrient] = penalty
		deficiencies = append(deficiencies, domain.Deficiency{
			Nutrient: rule.nutrient,
			Symptom:  rule.symptom,
			Severity: rule.severity(penalty),
		})
	}
	return penalties, deficiencies
}

func (r nutrientRule) severity(penalty float64) string {
	switch {
	case penalty >= r.severe:
		return SeveritySevere
	case penalty >= r.moderate:
		return SeverityModerate
	default:
		return SeverityMild
	}
}

// CanHarvest reports whether the growth period has elapsed
func CanHarvest(p *domain.Plant, sp domain.PlantSpecies) bool {
	return p.WeeksGrown >= sp.GrowthPeriodWeeks
}

// MarketValue is the per-head value scaled by health, or 0 when immature
func MarketValue(p *domain.Plant, sp domain.PlantSpecies) float64 {
	if !CanHarvest(p, sp) {
		return 0
	}
	return sp.ValuePerHead * (p.Health / MaxHealth)
}

// Harvest values a plant and grades its quality. It does not remove the
// plant from any collection.
func Harvest(p *domain.Plant, sp domain.PlantSpecies) HarvestResult {
	if !CanHarvest(p, sp) {
		return HarvestResult{Success: false, Reason: ReasonNotReady, Health: p.Health}
	}
	return HarvestResult{
		Success: true,
		Value:   MarketValue(p, sp),
		Quality: Quality(p.Health),
		Health:  p.Health,
	}
}

// Quality grades a plant by health
func Quality(health float64) string {
	switch {
	case health >= excellentHealth:
		return QualityExcellent
	case health >= goodHealth:
		return QualityGood
	case health >= fairHealth:
		return QualityFair
	default:
		return QualityPoor
	}
}
