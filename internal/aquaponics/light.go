package aquaponics

import (
	"math"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

// NewLight returns a grow light on the default photoperiod
func NewLight() domain.Light {
	return domain.Light{
		HoursPerDay:  DefaultLightHours,
		IntensityPAR: BaseIntensityPAR,
		IsOn:         true,
		CostPerHour:  DefaultLightCostPerHour,
	}
}

// DailyCost is the running cost of the light for a full day
func DailyCost(l domain.Light) float64 {
	return round2(l.HoursPerDay * l.CostPerHour)
}

// GrowthMultiplier scales plant growth with intensity, capped at 2x
func GrowthMultiplier(l domain.Light) float64 {
	return math.Min(l.IntensityPAR/BaseIntensityPAR, MaxLightMultiplier)
}

// Available reports whether plants get light today
func Available(l domain.Light, disabled bool) bool {
	return l.IsOn && !disabled && l.HoursPerDay > 0
}

// Status summarises the light as seen by a tick
func Status(l domain.Light, disabled bool) domain.LightStatus {
	return domain.LightStatus{
		Available:        Available(l, disabled),
		HoursPerDay:      l.HoursPerDay,
		IntensityPAR:     l.IntensityPAR,
		DailyCost:        DailyCost(l),
		GrowthMultiplier: round2(GrowthMultiplier(l)),
	}
}
