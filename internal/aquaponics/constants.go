package aquaponics

const (
	DefaultTankVolume          = 1000.0
	DefaultBiofilterEfficiency = 0.8
	DefaultBedCapacity         = 16

	DefaultLightHours       = 16.0
	DefaultLightCostPerHour = 0.05
	BaseIntensityPAR        = 300.0
	MaxLightMultiplier      = 2.0

	nutrientDemandPerPlant = 0.05
	consumptionPerGrowth   = 0.1
)
