// Package water models the nitrogen cycle and nutrient pools of the tank water.
package water

import (
	"math"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

const (
	MinPH = 6.0
	MaxPH = 8.0

	// phDriftPerUnit is the pH change per unit of unabsorbed ammonia input
	phDriftPerUnit = 0.01
)

// New returns freshly cycled water at the default set point
func New() domain.WaterChemistry {
	return domain.WaterChemistry{
		Ammonia:         0,
		Nitrite:         0,
		Nitrate:         10,
		PH:              7.0,
		Temperature:     22,
		DissolvedOxygen: 8.0,
		Phosphorus:      5,
		Potassium:       40,
		Calcium:         60,
		Magnesium:       20,
		Iron:            2,
	}
}

// Update runs one day of the nitrogen cycle. Ammonia from fish waste is
// converted to nitrite and then nitrate at the biofilter efficiency; what
// the bacteria do not convert is flushed, so nothing carries over to the
// next day. pH drifts down with the gap between input and plant uptake.
func Update(w *domain.WaterChemistry, ammoniaInput, plantAbsorption, biofilterEfficiency float64) {
	ammoniaInput = math.Max(0, ammoniaInput)
	plantAbsorption = math.Max(0, plantAbsorption)
	eff := clamp(biofilterEfficiency, 0, 1)

	w.Ammonia += ammoniaInput
	w.Nitrite = w.Ammonia * eff
	w.Nitrate += w.Nitrite * eff
	w.Ammonia = 0
	w.Nitrite = 0

	w.PH -= phDriftPerUnit * (ammoniaInput - plantAbsorption)
	w.PH = clamp(w.PH, MinPH, MaxPH)
}

// Status returns a display copy rounded for reporting
func Status(w domain.WaterChemistry) domain.WaterChemistry {
	return domain.WaterChemistry{
		Ammonia:         round(w.Ammonia, 2),
		Nitrite:         round(w.Nitrite, 2),
		Nitrate:         round(w.Nitrate, 2),
		PH:              round(w.PH, 1),
		Temperature:     round(w.Temperature, 1),
		DissolvedOxygen: round(w.DissolvedOxygen, 1),
		Phosphorus:      round(w.Phosphorus, 1),
		Potassium:       round(w.Potassium, 1),
		Calcium:         round(w.Calcium, 1),
		Magnesium:       round(w.Magnesium, 1),
		Iron:            round(w.Iron, 2),
	}
}

// Deduct removes plant uptake from the nutrient pools, never below zero
func Deduct(w *domain.WaterChemistry, usage domain.NutrientUsage) {
	w.Nitrate = math.Max(0, w.Nitrate-usage.Nitrogen)
	w.Phosphorus = math.Max(0, w.Phosphorus-usage.Phosphorus)
	w.Potassium = math.Max(0, w.Potassium-usage.Potassium)
	w.Calcium = math.Max(0, w.Calcium-usage.Calcium)
	w.Magnesium = math.Max(0, w.Magnesium-usage.Magnesium)
	w.Iron = math.Max(0, w.Iron-usage.Iron)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
