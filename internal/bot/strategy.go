package bot

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/osse101/AquaponicsSim_Go/internal/catalog"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/game"
)

// Profile is the risk appetite of a strategy
type Profile struct {
	RiskTolerance  float64 `json:"risk_tolerance"`
	MinMoneyBuffer float64 `json:"min_money_buffer"`
}

type purchaseFunc func(b *Bot, g *domain.GameState) *domain.Move

type strategyDef struct {
	profile  func(rng *rand.Rand) Profile
	purchase purchaseFunc
}

var strategies = map[Strategy]strategyDef{
	Conservative: {
		profile:  fixedProfile(0.2, 200),
		purchase: conservativePurchase,
	},
	Aggressive: {
		profile:  fixedProfile(0.9, 50),
		purchase: aggressivePurchase,
	},
	Balanced: {
		profile:  fixedProfile(0.5, 100),
		purchase: balancedPurchase,
	},
	Random: {
		profile: func(rng *rand.Rand) Profile {
			return Profile{RiskTolerance: rng.Float64()}
		},
		purchase: randomPurchase,
	},
}

// Strategies lists every built-in strategy in a stable order
func Strategies() []Strategy {
	return []Strategy{Conservative, Aggressive, Balanced, Random}
}

// ParseStrategy validates a strategy name
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(name)
	if _, ok := strategies[s]; !ok {
		return "", fmt.Errorf(ErrMsgUnknownStrategyFmt, domain.ErrUnknownStrategy, name)
	}
	return s, nil
}

func fixedProfile(risk, buffer float64) func(*rand.Rand) Profile {
	return func(*rand.Rand) Profile {
		return Profile{RiskTolerance: risk, MinMoneyBuffer: buffer}
	}
}

func conservativePurchase(b *Bot, g *domain.GameState) *domain.Move {
	available := b.available(g)
	if available < conservativeMinAvailable {
		return nil
	}
	if len(g.Fish) < conservativeFishLots && b.fishRoom(g) >= conservativeFishBatch &&
		available >= conservativeFishBatch*b.fingerlingCost(catalog.FishTilapia) {
		return buyFish(catalog.FishTilapia, conservativeFishBatch)
	}
	if len(g.Plants) < conservativePlantTarget && b.plantRoom(g) >= conservativeSeedBatch &&
		available >= conservativeSeedBatch*b.seedCost() {
		return buySeeds(conservativeSeedBatch)
	}
	return nil
}

func aggressivePurchase(b *Bot, g *domain.GameState) *domain.Move {
	available := b.available(g)
	if available < aggressiveMinAvailable {
		return nil
	}
	// batches shrink to the room left; below the minimum the bot moves on
	if n := min(affordable(available, b.fingerlingCost(catalog.FishBarramundi)), aggressiveMaxFishBatch, b.fishRoom(g)); len(g.Fish) < aggressiveFishLots && n >= aggressiveMinFishBatch {
		return buyFish(catalog.FishBarramundi, n)
	}
	if n := min(affordable(available, b.seedCost()), aggressiveMaxSeedBatch, b.plantRoom(g)); len(g.Plants) < aggressivePlantTarget && n >= aggressiveMinSeedBatch {
		return buySeeds(n)
	}
	if g.Money >= aggressiveGrowLightCash && g.Equipment[catalog.EquipmentGrowLight] == 0 {
		return buyEquipment(catalog.EquipmentGrowLight)
	}
	return nil
}

func balancedPurchase(b *Bot, g *domain.GameState) *domain.Move {
	available := b.available(g)
	if available < balancedMinAvailable {
		return nil
	}
	if len(g.Fish) < balancedFishLots {
		species := catalog.FishTilapia
		if len(g.Fish)%2 == 1 {
			species = catalog.FishBarramundi
		}
		if b.fishRoom(g) >= balancedFishBatch && available >= balancedFishBatch*b.fingerlingCost(species) {
			return buyFish(species, balancedFishBatch)
		}
	}
	if n := min(affordable(available, b.seedCost()), balancedMaxSeedBatch, b.plantRoom(g)); len(g.Plants) < balancedPlantTarget && n >= balancedMinSeedBatch {
		return buySeeds(n)
	}
	if pump := b.equipmentCost(catalog.EquipmentWaterPump); available >= pump && g.Equipment[catalog.EquipmentWaterPump] == 0 {
		return buyEquipment(catalog.EquipmentWaterPump)
	}
	return nil
}

// randomPurchase builds the affordable options and picks one uniformly
func randomPurchase(b *Bot, g *domain.GameState) *domain.Move {
	if g.Money < randomMinMoney {
		return nil
	}

	var choices []*domain.Move
	fishRoom, plantRoom := b.fishRoom(g), b.plantRoom(g)
	if fishRoom > 0 && g.Money >= randomTilapiaReserve*b.fingerlingCost(catalog.FishTilapia) {
		choices = append(choices, buyFish(catalog.FishTilapia, min(b.rng.Intn(randomMaxTilapia)+1, fishRoom)))
	}
	if fishRoom > 0 && g.Money >= b.fingerlingCost(catalog.FishBarramundi) {
		choices = append(choices, buyFish(catalog.FishBarramundi, min(b.rng.Intn(randomMaxBarramundi)+1, fishRoom)))
	}
	if plantRoom > 0 && g.Money >= randomSeedReserve*b.seedCost() {
		choices = append(choices, buySeeds(min(b.rng.Intn(randomMaxSeeds)+1, plantRoom)))
	}
	for _, id := range []string{
		catalog.EquipmentWaterPump,
		catalog.EquipmentAirPump,
		catalog.EquipmentGrowLight,
		catalog.EquipmentBiofilter,
	} {
		if g.Money >= b.equipmentCost(id) {
			choices = append(choices, buyEquipment(id))
		}
	}

	if len(choices) == 0 {
		return nil
	}
	return choices[b.rng.Intn(len(choices))]
}

func affordable(available, unitCost float64) int {
	if unitCost <= 0 {
		return 0
	}
	return int(math.Floor(available / unitCost))
}

func buyFish(species string, count int) *domain.Move {
	return &domain.Move{Name: domain.MoveBuyFish, Args: []any{species, count}}
}

func buySeeds(count int) *domain.Move {
	return &domain.Move{Name: domain.MoveBuyPlantSeeds, Args: []any{catalog.PlantRomaine, game.DefaultBedID, count}}
}

func buyEquipment(id string) *domain.Move {
	return &domain.Move{Name: domain.MoveBuyEquipment, Args: []any{id, 1}}
}
