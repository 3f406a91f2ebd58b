package aquaponics

import (
	"math"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/fish"
	"github.com/osse101/AquaponicsSim_Go/internal/water"
)

// NewTank creates a full tank of freshly cycled water
func NewTank(volumeLiters float64) domain.Tank {
	return domain.Tank{
		VolumeLiters:                volumeLiters,
		CurrentWaterLevel:           volumeLiters,
		Water:                       water.New(),
		BiofilterEfficiency:         DefaultBiofilterEfficiency,
		BaselineBiofilterEfficiency: DefaultBiofilterEfficiency,
	}
}

// FishWaste sums the ammonia released by every flock. Flocks of species
// missing from the catalog contribute nothing.
func FishWaste(flocks []*domain.Fish, species Species) float64 {
	total := 0.0
	for _, f := range flocks {
		sp, ok := species.FishSpecies(f.Type)
		if !ok {
			continue
		}
		total += fish.Waste(f, sp)
	}
	return total
}

// Drain removes up to liters of water, never below empty
func Drain(t *domain.Tank, liters float64) float64 {
	lost := math.Min(t.CurrentWaterLevel, math.Max(0, liters))
	t.CurrentWaterLevel -= lost
	return lost
}

// Refill tops the tank back up to its volume
func Refill(t *domain.Tank) {
	t.CurrentWaterLevel = t.VolumeLiters
}

// WaterLevelPercent is the fill level as a percentage of volume
func WaterLevelPercent(t domain.Tank) float64 {
	if t.VolumeLiters <= 0 {
		return 0
	}
	return t.CurrentWaterLevel / t.VolumeLiters * 100
}
