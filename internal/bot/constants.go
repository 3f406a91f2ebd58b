package bot

// Strategy names a purchasing profile
type Strategy string

const (
	Conservative Strategy = "conservative"
	Aggressive   Strategy = "aggressive"
	Balanced     Strategy = "balanced"
	Random       Strategy = "random"
)

// Feeding thresholds shared by every strategy
const (
	MinFoodUnits   = 5
	MaxFeedPerMeal = 10
)

// RandomHarvestDeferChance is how often the random bot leaves ready stock in place
const RandomHarvestDeferChance = 0.3

const (
	conservativeMinAvailable = 50.0
	conservativeFishLots     = 2
	conservativeFishBatch    = 2
	conservativePlantTarget  = 5
	conservativeSeedBatch    = 3

	aggressiveMinAvailable  = 10.0
	aggressiveFishLots      = 10
	aggressiveMinFishBatch  = 3
	aggressiveMaxFishBatch  = 5
	aggressivePlantTarget   = 20
	aggressiveMinSeedBatch  = 5
	aggressiveMaxSeedBatch  = 10
	aggressiveGrowLightCash = 150.0

	balancedMinAvailable = 20.0
	balancedFishLots     = 5
	balancedFishBatch    = 2
	balancedPlantTarget  = 10
	balancedMinSeedBatch = 2
	balancedMaxSeedBatch = 5

	randomMinMoney       = 10.0
	randomMaxTilapia     = 3
	randomMaxBarramundi  = 2
	randomMaxSeeds       = 5
	randomTilapiaReserve = 2
	randomSeedReserve    = 2
)

const (
	ErrMsgUnknownStrategyFmt = "%w: %q"

	LogMsgMoveFailed = "Bot move rejected"
)
