package fish

const (
	MinHealth   = 1.0
	MaxHealth   = 10.0
	InitialSize = 1.0

	PoundsPerKilogram = 2.20462

	harvestThreshold = 0.8

	healthyFoodRatio = 0.8
	stressThreshold  = 0.3
	hungerHealthLoss = 2.0
	stressHealthLoss = 3.0
	healthRecovery   = 0.5

	// Ammonia below safeAmmonia causes no stress; oxygen at or below
	// lethalOxygen is maximal stress regardless of species.
	safeAmmonia  = 0.5
	lethalOxygen = 2.0
)
