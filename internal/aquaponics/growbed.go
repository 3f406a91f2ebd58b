package aquaponics

import (
	"fmt"
	"sort"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/plant"
)

// NewGrowBed creates an empty bed. A non-positive capacity uses the default.
func NewGrowBed(id, plantType string, capacity int) *domain.GrowBed {
	if capacity <= 0 {
		capacity = DefaultBedCapacity
	}
	return &domain.GrowBed{
		ID:        id,
		PlantType: plantType,
		Capacity:  capacity,
		PlantIDs:  []string{},
	}
}

// FreeSlots is the number of plants the bed can still take
func FreeSlots(b *domain.GrowBed) int {
	return b.Capacity - len(b.PlantIDs)
}

// AddPlant registers a plant id with the bed
func AddPlant(b *domain.GrowBed, plantID string) error {
	if len(b.PlantIDs) >= b.Capacity {
		return fmt.Errorf("%w: bed %s holds %d", domain.ErrGrowBedFull, b.ID, b.Capacity)
	}
	for _, id := range b.PlantIDs {
		if id == plantID {
			return fmt.Errorf("%w: plant %s already in bed %s", domain.ErrInvalidArgument, plantID, b.ID)
		}
	}
	b.PlantIDs = append(b.PlantIDs, plantID)
	return nil
}

// RemovePlant drops a plant id from the bed, preserving order
func RemovePlant(b *domain.GrowBed, plantID string) bool {
	for i, id := range b.PlantIDs {
		if id == plantID {
			b.PlantIDs = append(b.PlantIDs[:i], b.PlantIDs[i+1:]...)
			return true
		}
	}
	return false
}

// NutrientDemand is the bed's absorption potential for the day
func NutrientDemand(b *domain.GrowBed) float64 {
	return float64(len(b.PlantIDs)) * nutrientDemandPerPlant
}

// SortedBedIDs returns bed ids in a stable order
func SortedBedIDs(beds map[string]*domain.GrowBed) []string {
	ids := make([]string, 0, len(beds))
	for id := range beds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// GrowAll grows every plant in the bed against the same water and returns the
// bed report with the nutrients the growth consumed. multiplier scales biomass
// and the reported total growth.
func GrowAll(b *domain.GrowBed, plants map[string]*domain.Plant, species Species, w domain.WaterChemistry, lightAvailable bool, multiplier float64) (domain.BedGrowthReport, domain.NutrientUsage) {
	report := domain.BedGrowthReport{
		BedID:      b.ID,
		PlantCount: len(b.PlantIDs),
		Plants:     make([]domain.PlantGrowthReport, 0, len(b.PlantIDs)),
	}
	var usage domain.NutrientUsage

	for _, id := range b.PlantIDs {
		p, ok := plants[id]
		if !ok {
			continue
		}
		sp, ok := species.PlantSpecies(p.Type)
		if !ok {
			continue
		}

		res := plant.GrowBoosted(p, sp, w, lightAvailable, multiplier)
		report.Plants = append(report.Plants, domain.PlantGrowthReport{
			PlantID:      p.ID,
			Success:      res.Success,
			Reason:       res.Reason,
			GrowthRate:   res.GrowthRate,
			Maturity:     res.Maturity,
			Health:       res.Health,
			Deficiencies: res.Deficiencies,
		})
		if !res.Success {
			continue
		}

		report.TotalGrowth += res.GrowthRate * multiplier
		rate := res.GrowthRate * consumptionPerGrowth
		req := sp.NutrientRequirements
		usage.Nitrogen += req.Nitrogen * rate
		usage.Phosphorus += req.Phosphorus * rate
		usage.Potassium += req.Potassium * rate
		usage.Calcium += req.Calcium * rate
		usage.Magnesium += req.Magnesium * rate
		usage.Iron += req.Iron * rate
	}

	report.TotalGrowth = round2(report.TotalGrowth)
	return report, usage
}
