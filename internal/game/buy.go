package game

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/osse101/AquaponicsSim_Go/internal/aquaponics"
	"github.com/osse101/AquaponicsSim_Go/internal/catalog"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/fish"
	"github.com/osse101/AquaponicsSim_Go/internal/plant"
)

// BuyEquipment purchases qty units of an equipment item and applies its
// benefits. Consumables go to the food store instead of the inventory.
func (e *Engine) BuyEquipment(ctx context.Context, g *domain.GameState, item string, qty int) (*domain.ActionResult, error) {
	eq, ok := e.catalog.Equipment(item)
	if !ok {
		err := fmt.Errorf(ErrMsgUnknownFmt, domain.ErrUnknownEquipment, item)
		return e.rejectWithSuggestion(ctx, g, domain.MoveBuyEquipment, err, e.catalog.Suggest(catalog.KindEquipment, item))
	}
	if qty <= 0 {
		return e.reject(ctx, g, domain.MoveBuyEquipment, fmt.Errorf(ErrMsgNotPositiveFmt, domain.ErrInvalidQuantity, qty))
	}
	cost := eq.Cost * float64(qty)
	if err := checkFunds(g, cost); err != nil {
		return e.reject(ctx, g, domain.MoveBuyEquipment, err)
	}

	g.Money -= cost
	res := &domain.ActionResult{
		Type:     domain.MoveBuyEquipment,
		Item:     eq.ID,
		Cost:     cost,
		Quantity: qty,
	}
	if eq.Type == domain.EquipmentTypeConsumable {
		g.FishFood += eq.Units * qty
		res.Count = eq.Units * qty
		return e.commit(ctx, g, res)
	}

	if g.Equipment == nil {
		g.Equipment = make(map[string]int)
	}
	g.Equipment[eq.ID] += qty
	res.Benefits = applyBenefits(g, eq.ID, qty)
	return e.commit(ctx, g, res)
}

func applyBenefits(g *domain.GameState, item string, qty int) []string {
	n := float64(qty)
	switch item {
	case catalog.EquipmentWaterPump:
		g.Modifiers.CirculationEfficiency += CirculationPerWaterPump * n
		return []string{BenefitCirculation}
	case catalog.EquipmentAirPump:
		g.Modifiers.OxygenLevel += OxygenPerAirPump * n
		if g.System != nil {
			g.System.Tank.Water.DissolvedOxygen = g.Modifiers.OxygenLevel
		}
		return []string{BenefitOxygen}
	case catalog.EquipmentBiofilter:
		if g.System != nil {
			tank := &g.System.Tank
			tank.BaselineBiofilterEfficiency = math.Min(1, tank.BaselineBiofilterEfficiency+EfficiencyPerBiofilter*n)
			tank.BiofilterEfficiency = math.Min(1, tank.BiofilterEfficiency+EfficiencyPerBiofilter*n)
		}
		return []string{BenefitBiofilter}
	case catalog.EquipmentGrowLight:
		g.Modifiers.PlantGrowthRate += GrowthPerGrowLight * n
		return []string{BenefitGrowth}
	case catalog.EquipmentGrowBed:
		g.MaxPlants += PlantSlotsPerGrowBed * qty
		return []string{fmt.Sprintf(BenefitPlantCapacityFmt, PlantSlotsPerGrowBed*qty)}
	case catalog.EquipmentFishTank:
		g.MaxFish += FishSlotsPerFishTank * qty
		return []string{fmt.Sprintf(BenefitFishCapacityFmt, FishSlotsPerFishTank*qty)}
	}
	return nil
}

// BuyFish adds a flock of fingerlings
func (e *Engine) BuyFish(ctx context.Context, g *domain.GameState, species string, count int) (*domain.ActionResult, error) {
	sp, ok := e.catalog.FishSpecies(species)
	if !ok {
		err := fmt.Errorf(ErrMsgUnknownFmt, domain.ErrUnknownSpecies, species)
		return e.rejectWithSuggestion(ctx, g, domain.MoveBuyFish, err, e.catalog.Suggest(catalog.KindFish, species))
	}
	if count <= 0 {
		return e.reject(ctx, g, domain.MoveBuyFish, fmt.Errorf(ErrMsgNotPositiveFmt, domain.ErrInvalidQuantity, count))
	}
	if g.FishCount()+count > g.MaxFish {
		err := fmt.Errorf("%w: %d of %d slots used", domain.ErrFishCapacityExceeded, g.FishCount(), g.MaxFish)
		return e.reject(ctx, g, domain.MoveBuyFish, err)
	}
	cost := sp.FingerlingCost * float64(count)
	if err := checkFunds(g, cost); err != nil {
		return e.reject(ctx, g, domain.MoveBuyFish, err)
	}

	g.Money -= cost
	g.Fish = append(g.Fish, fish.New(sp.ID, count))

	return e.commit(ctx, g, &domain.ActionResult{
		Type:  domain.MoveBuyFish,
		Item:  sp.ID,
		Count: count,
		Cost:  cost,
	})
}

// BuyPlantSeeds plants count seeds of a species into a bed, creating the
// bed on first use.
func (e *Engine) BuyPlantSeeds(ctx context.Context, g *domain.GameState, species, bedID string, count int) (*domain.ActionResult, error) {
	sp, ok := e.catalog.PlantSpecies(species)
	if !ok {
		err := fmt.Errorf(ErrMsgUnknownFmt, domain.ErrUnknownSpecies, species)
		return e.rejectWithSuggestion(ctx, g, domain.MoveBuyPlantSeeds, err, e.catalog.Suggest(catalog.KindPlant, species))
	}
	if count <= 0 {
		return e.reject(ctx, g, domain.MoveBuyPlantSeeds, fmt.Errorf(ErrMsgNotPositiveFmt, domain.ErrInvalidQuantity, count))
	}
	if bedID == "" {
		bedID = DefaultBedID
	}
	sys, err := e.system(g)
	if err != nil {
		return nil, err
	}
	cost := sp.SeedCost * float64(count)
	if err := checkFunds(g, cost); err != nil {
		return e.reject(ctx, g, domain.MoveBuyPlantSeeds, err)
	}

	bed, exists := sys.GrowBeds[bedID]
	if !exists {
		bed = aquaponics.NewGrowBed(bedID, sp.ID, aquaponics.DefaultBedCapacity)
	}
	if free := aquaponics.FreeSlots(bed); free < count {
		err := fmt.Errorf("%w: %s has %d free slots", domain.ErrGrowBedFull, bedID, free)
		return e.reject(ctx, g, domain.MoveBuyPlantSeeds, err)
	}
	if len(g.Plants)+count > g.MaxPlants {
		err := fmt.Errorf("%w: %d of %d slots used", domain.ErrPlantCapacity, len(g.Plants), g.MaxPlants)
		return e.reject(ctx, g, domain.MoveBuyPlantSeeds, err)
	}

	// all checks passed; nothing below can fail
	if !exists {
		sys.GrowBeds[bedID] = bed
	}
	for i := 0; i < count; i++ {
		p := plant.New(uuid.NewString(), sp.ID, bedID)
		_ = aquaponics.AddPlant(bed, p.ID)
		g.Plants = append(g.Plants, p)
	}
	g.Money -= cost

	return e.commit(ctx, g, &domain.ActionResult{
		Type:  domain.MoveBuyPlantSeeds,
		Item:  sp.ID,
		Count: count,
		Cost:  cost,
	})
}

// BuyFishFood buys qty bags of food
func (e *Engine) BuyFishFood(ctx context.Context, g *domain.GameState, qty int) (*domain.ActionResult, error) {
	eq, ok := e.catalog.Equipment(catalog.EquipmentFishFood)
	if !ok {
		return e.reject(ctx, g, domain.MoveBuyFishFood, fmt.Errorf(ErrMsgUnknownFmt, domain.ErrUnknownEquipment, catalog.EquipmentFishFood))
	}
	if qty <= 0 {
		return e.reject(ctx, g, domain.MoveBuyFishFood, fmt.Errorf(ErrMsgNotPositiveFmt, domain.ErrInvalidQuantity, qty))
	}
	cost := eq.Cost * float64(qty)
	if err := checkFunds(g, cost); err != nil {
		return e.reject(ctx, g, domain.MoveBuyFishFood, err)
	}

	units := eq.Units * qty
	g.Money -= cost
	g.FishFood += units

	return e.commit(ctx, g, &domain.ActionResult{
		Type:     domain.MoveBuyFishFood,
		Item:     eq.ID,
		Cost:     cost,
		Quantity: qty,
		Count:    units,
	})
}

func checkFunds(g *domain.GameState, cost float64) error {
	if g.Money < cost {
		return fmt.Errorf(ErrMsgCannotAffordFmt, domain.ErrInsufficientFunds, cost, g.Money)
	}
	return nil
}
