// Package fish implements growth, stress and valuation for fish flocks.
// Species data is always passed in explicitly.
package fish

import (
	"math"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

// Environment is the water a flock experiences while feeding
type Environment struct {
	Temperature     float64
	Ammonia         float64
	DissolvedOxygen float64
}

// New creates a flock of fingerlings
func New(species string, count int) *domain.Fish {
	return &domain.Fish{
		Type:   species,
		Count:  count,
		Health: MaxHealth,
		Size:   InitialSize,
		Age:    0,
	}
}

// Feed runs one feeding. Growth scales with the food ratio and the
// absence of stress; poor feeding or stress costs health, otherwise
// the flock recovers.
func Feed(f *domain.Fish, sp domain.FishSpecies, foodAvailable float64, env Environment) domain.FeedResult {
	required := float64(f.Count) * sp.FoodConsumptionRate
	foodRatio := 0.0
	if required > 0 {
		foodRatio = math.Min(math.Max(0, foodAvailable)/required, 1)
	}

	stress := CalculateStress(sp, env)
	growth := sp.BaseGrowthRate() * foodRatio * (1 - stress.Overall) * float64(f.Count)

	f.Size += growth
	f.Age++

	if foodRatio < healthyFoodRatio || stress.Overall > stressThreshold {
		f.Health -= (1-foodRatio)*hungerHealthLoss + stress.Overall*stressHealthLoss
	} else {
		f.Health += healthRecovery
	}
	f.Health = math.Max(MinHealth, math.Min(MaxHealth, f.Health))

	return domain.FeedResult{
		FoodUsed:  required * foodRatio,
		Growth:    growth,
		FoodRatio: foodRatio,
		Stress:    stress,
		Health:    f.Health,
		Size:      f.Size,
	}
}

// CalculateStress scores temperature, ammonia and oxygen stress in [0, 1]
// and averages them.
func CalculateStress(sp domain.FishSpecies, env Environment) domain.FishStress {
	s := domain.FishStress{
		Temperature: temperatureStress(sp.TempRange, env.Temperature),
		Ammonia:     ammoniaStress(sp.AmmoniaToleranceMax, env.Ammonia),
		Oxygen:      oxygenStress(sp.OxygenMin, env.DissolvedOxygen),
	}
	s.Overall = (s.Temperature + s.Ammonia + s.Oxygen) / 3
	return s
}

func temperatureStress(r domain.TemperatureRange, t float64) float64 {
	switch {
	case r.Optimal.Contains(t):
		return 0
	case t <= r.Min || t >= r.Max:
		return 1
	case t < r.Optimal.Min:
		return ramp(r.Optimal.Min-t, r.Optimal.Min-r.Min)
	default:
		return ramp(t-r.Optimal.Max, r.Max-r.Optimal.Max)
	}
}

func ammoniaStress(tolerance, ammonia float64) float64 {
	switch {
	case ammonia <= safeAmmonia:
		return 0
	case ammonia >= tolerance:
		return 1
	default:
		return ramp(ammonia-safeAmmonia, tolerance-safeAmmonia)
	}
}

func oxygenStress(minimum, oxygen float64) float64 {
	switch {
	case oxygen >= minimum:
		return 0
	case oxygen <= lethalOxygen:
		return 1
	default:
		return ramp(minimum-oxygen, minimum-lethalOxygen)
	}
}

// ramp is distance/span clamped to [0, 1]; a zero span is a hard step
func ramp(distance, span float64) float64 {
	if span <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, distance/span))
}

// Waste is the ammonia a flock releases per day
func Waste(f *domain.Fish, sp domain.FishSpecies) float64 {
	return float64(f.Count) * sp.AmmoniaProductionRate
}

// IsHarvestable reports whether the flock reached 80% of harvest weight
func IsHarvestable(f *domain.Fish, sp domain.FishSpecies) bool {
	return f.Size >= sp.HarvestWeight*harvestThreshold
}

// MarketValue prices a harvestable flock by weight and health
func MarketValue(f *domain.Fish, sp domain.FishSpecies) float64 {
	if !IsHarvestable(f, sp) {
		return 0
	}
	pounds := f.Size / 1000 * PoundsPerKilogram
	return float64(f.Count) * pounds * sp.MarketValue * (f.Health / MaxHealth)
}
