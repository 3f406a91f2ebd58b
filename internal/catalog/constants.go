package catalog

import "errors"

const (
	dataDir      = "data"
	schemaDir    = "schemas"
	dataSuffix   = ".yaml"
	schemaSuffix = ".schema.json"

	fileFishSpecies  = "fish_species"
	filePlantSpecies = "plant_species"
	fileEquipment    = "equipment"
	fileEvents       = "events"
)

// Well-known catalog ids referenced by game rules
const (
	EquipmentPHMeter     = "phMeter"
	EquipmentThermometer = "thermometer"
	EquipmentOxygenMeter = "oxygenMeter"
	EquipmentWaterPump   = "waterPump"
	EquipmentAirPump     = "airPump"
	EquipmentBiofilter   = "biofilter"
	EquipmentGrowLight   = "growLight"
	EquipmentGrowBed     = "growBed"
	EquipmentFishFood    = "fishFood"
	EquipmentFishTank    = "fishTank"

	FishTilapia    = "tilapia"
	FishBarramundi = "barramundi"

	PlantRomaine = "ParrisIslandRomaine"

	EventPowerOutage   = "powerOutage"
	EventWaterLeak     = "waterLeak"
	EventPumpFailure   = "pumpFailure"
	EventFilterClog    = "filterClog"
	EventGasPriceSpike = "gasPriceSpike"
	EventMarketDay     = "marketDay"
)

var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrDuplicateEntry = errors.New("duplicate catalog entry")
)
