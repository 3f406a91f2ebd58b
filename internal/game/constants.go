package game

// Starting state of a new farm
const (
	StartingMoney     = 5000.0
	StartingMaxFish   = 20
	StartingMaxPlants = 10

	StartingCirculation = 1.0
	StartingOxygen      = 8.0
	StartingGrowthRate  = 1.0

	DefaultBedID = "bed1"
)

// Equipment benefits, per unit bought
const (
	CirculationPerWaterPump = 0.1
	OxygenPerAirPump        = 0.5
	EfficiencyPerBiofilter  = 0.05
	GrowthPerGrowLight      = 0.1
	PlantSlotsPerGrowBed    = 5
	FishSlotsPerFishTank    = 10
)

// Utilities and billing
const (
	BillingCycleDays = 30

	BaseElectricityCost   = 2.00
	ElectricityPerUnit    = 0.10
	BaseWaterCost         = 0.50
	WaterCostPerLiter     = 0.001
	LeakSurchargePerLiter = 0.01
)

// PassiveIncome is credited by skipTurn
const PassiveIncome = 5.0

// PumpFailureOxygenDrop is how far dissolved oxygen falls while circulation is stopped
const PumpFailureOxygenDrop = 2.0

// Benefit descriptions recorded on equipment purchases
const (
	BenefitCirculation      = "Improved water circulation"
	BenefitOxygen           = "Increased oxygen levels"
	BenefitBiofilter        = "Improved nitrogen cycle efficiency"
	BenefitGrowth           = "Improved plant growth rate"
	BenefitPlantCapacityFmt = "Added %d plant growing capacity"
	BenefitFishCapacityFmt  = "Added %d fish capacity"
)

// Error message formats
const (
	ErrMsgSuggestionFmt   = "%w (did you mean %q?)"
	ErrMsgArgumentFmt     = "%w: argument %d: %s"
	ErrMsgNotPositiveFmt  = "%w: %d must be positive"
	ErrMsgCannotAffordFmt = "%w: need $%.2f, have $%.2f"
	ErrMsgUnknownFmt      = "%w: %s"
)

// Log messages
const (
	LogMsgMoveApplied    = "Move applied"
	LogMsgMoveRejected   = "Move rejected"
	LogMsgEventTriggered = "Random event triggered"
	LogMsgEventEnded     = "Random event ended"
	LogMsgBillSettled    = "Utility bill settled"
	LogMsgBillUnpaid     = "Utility bill could not be paid in full"
	LogMsgFeedSkipped    = "Feed skipped, no flock at index"
)
