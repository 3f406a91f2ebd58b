// Package aquaponics ties the tank, grow beds and light into the daily
// system tick that fish and plants share.
package aquaponics

import (
	"math"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/water"
)

// Species resolves catalog entries for organisms stored in state
type Species interface {
	FishSpecies(id string) (domain.FishSpecies, bool)
	PlantSpecies(id string) (domain.PlantSpecies, bool)
}

// TurnInput is everything outside the installation that a tick needs
type TurnInput struct {
	Day    int
	Fish   []*domain.Fish
	Plants []*domain.Plant
	// BiofilterEfficiency is the effective conversion rate for the day,
	// after equipment and event adjustments
	BiofilterEfficiency float64
	LightsDisabled      bool
	// GrowthBoost is the equipment growth modifier; 1 means none
	GrowthBoost float64
}

// System wraps the persisted installation with the species tables it needs
type System struct {
	*domain.AquaponicsSystem
	species Species
}

// NewSystem builds a default installation: a full 1000 L tank, no beds
// and a grow light on a 16 hour photoperiod.
func NewSystem() *domain.AquaponicsSystem {
	return &domain.AquaponicsSystem{
		Tank:     NewTank(DefaultTankVolume),
		GrowBeds: make(map[string]*domain.GrowBed),
		Light:    NewLight(),
		Log:      []domain.TurnLogEntry{},
	}
}

// Wrap attaches species lookups to a persisted installation
func Wrap(sys *domain.AquaponicsSystem, species Species) *System {
	if sys.GrowBeds == nil {
		sys.GrowBeds = make(map[string]*domain.GrowBed)
	}
	return &System{AquaponicsSystem: sys, species: species}
}

// ProcessTurn runs one day of the shared loop: fish waste is cycled through
// the biofilter, every bed grows against the updated water, and the
// nutrients the plants took up are removed from the tank.
func (s *System) ProcessTurn(in TurnInput) domain.TurnLogEntry {
	bedIDs := SortedBedIDs(s.GrowBeds)

	demand := 0.0
	for _, id := range bedIDs {
		demand += NutrientDemand(s.GrowBeds[id])
	}

	efficiency := math.Max(0, math.Min(1, in.BiofilterEfficiency))
	ammonia := FishWaste(in.Fish, s.species)
	water.Update(&s.Tank.Water, ammonia, demand, efficiency)

	plants := make(map[string]*domain.Plant, len(in.Plants))
	for _, p := range in.Plants {
		plants[p.ID] = p
	}

	boost := in.GrowthBoost
	if boost <= 0 {
		boost = 1
	}
	lightAvailable := Available(s.Light, in.LightsDisabled)
	multiplier := boost * GrowthMultiplier(s.Light)

	var (
		usage       domain.NutrientUsage
		totalGrowth float64
		reports     = make([]domain.BedGrowthReport, 0, len(bedIDs))
	)
	for _, id := range bedIDs {
		report, used := GrowAll(s.GrowBeds[id], plants, s.species, s.Tank.Water, lightAvailable, multiplier)
		reports = append(reports, report)
		totalGrowth += report.TotalGrowth
		usage = addUsage(usage, used)
	}

	water.Deduct(&s.Tank.Water, usage)

	entry := domain.TurnLogEntry{
		Day:              in.Day,
		Water:            water.Status(s.Tank.Water),
		AmmoniaProduced:  round3(ammonia),
		NutrientDemand:   round3(demand),
		TotalGrowth:      round2(totalGrowth),
		NutrientUsage:    roundUsage(usage),
		Beds:             reports,
		Light:            Status(s.Light, in.LightsDisabled),
		BiofilterApplied: efficiency,
	}
	s.Log = append(s.Log, entry)
	return entry
}

// PlantCount is the number of plants registered across all beds
func (s *System) PlantCount() int {
	total := 0
	for _, b := range s.GrowBeds {
		total += len(b.PlantIDs)
	}
	return total
}

func addUsage(a, b domain.NutrientUsage) domain.NutrientUsage {
	return domain.NutrientUsage{
		Nitrogen:   a.Nitrogen + b.Nitrogen,
		Phosphorus: a.Phosphorus + b.Phosphorus,
		Potassium:  a.Potassium + b.Potassium,
		Calcium:    a.Calcium + b.Calcium,
		Magnesium:  a.Magnesium + b.Magnesium,
		Iron:       a.Iron + b.Iron,
	}
}

func roundUsage(u domain.NutrientUsage) domain.NutrientUsage {
	return domain.NutrientUsage{
		Nitrogen:   round3(u.Nitrogen),
		Phosphorus: round3(u.Phosphorus),
		Potassium:  round3(u.Potassium),
		Calcium:    round3(u.Calcium),
		Magnesium:  round3(u.Magnesium),
		Iron:       round3(u.Iron),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
