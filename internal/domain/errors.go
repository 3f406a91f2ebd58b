package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog / validation errors
	ErrMsgUnknownSpecies   = "unknown species"
	ErrMsgUnknownEquipment = "unknown equipment"
	ErrMsgUnknownEvent     = "unknown event"
	ErrMsgMoveNotFound     = "move not found"
	ErrMsgInvalidQuantity  = "invalid quantity"
	ErrMsgInvalidArgument  = "invalid argument"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Harvest errors
	ErrMsgFishNotFound         = "fish not found"
	ErrMsgPlantNotFound        = "plant not found"
	ErrMsgNotHarvestable       = "not ready for harvest"
	ErrMsgNoHarvestableFish    = "no fish ready for harvest"
	ErrMsgNoHarvestablePlants  = "no plants ready for harvest"
	ErrMsgGrowBedFull          = "grow bed at capacity"
	ErrMsgFishCapacityExceeded = "fish capacity exceeded"
	ErrMsgPlantCapacity        = "plant capacity exceeded"

	// Repair errors
	ErrMsgNoActiveEvent      = "no active event to repair"
	ErrMsgEventNotRepairable = "event is not repairable"

	// Match / system errors
	ErrMsgMatchNotFound   = "match not found"
	ErrMsgDatabaseError   = "database error"
	ErrMsgSystemMissing   = "aquaponics system not set up"
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgUnknownStrategy = "unknown strategy"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUnknownSpecies   = errors.New(ErrMsgUnknownSpecies)
	ErrUnknownEquipment = errors.New(ErrMsgUnknownEquipment)
	ErrUnknownEvent     = errors.New(ErrMsgUnknownEvent)
	ErrMoveNotFound     = errors.New(ErrMsgMoveNotFound)
	ErrInvalidQuantity  = errors.New(ErrMsgInvalidQuantity)
	ErrInvalidArgument  = errors.New(ErrMsgInvalidArgument)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrFishNotFound         = errors.New(ErrMsgFishNotFound)
	ErrPlantNotFound        = errors.New(ErrMsgPlantNotFound)
	ErrNotHarvestable       = errors.New(ErrMsgNotHarvestable)
	ErrNoHarvestableFish    = errors.New(ErrMsgNoHarvestableFish)
	ErrNoHarvestablePlants  = errors.New(ErrMsgNoHarvestablePlants)
	ErrGrowBedFull          = errors.New(ErrMsgGrowBedFull)
	ErrFishCapacityExceeded = errors.New(ErrMsgFishCapacityExceeded)
	ErrPlantCapacity        = errors.New(ErrMsgPlantCapacity)

	ErrNoActiveEvent      = errors.New(ErrMsgNoActiveEvent)
	ErrEventNotRepairable = errors.New(ErrMsgEventNotRepairable)

	ErrMatchNotFound   = errors.New(ErrMsgMatchNotFound)
	ErrDatabaseError   = errors.New(ErrMsgDatabaseError)
	ErrSystemMissing   = errors.New(ErrMsgSystemMissing)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrUnknownStrategy = errors.New(ErrMsgUnknownStrategy)
)

// Machine-readable rejection reasons recorded in ActionResult.Reason
const (
	ReasonUnknownSpecies        = "unknown_species"
	ReasonUnknownEquipment      = "unknown_equipment"
	ReasonUnknownEvent          = "unknown_event"
	ReasonInvalidQuantity       = "invalid_quantity"
	ReasonInvalidArgument       = "invalid_argument"
	ReasonInsufficientFunds     = "insufficient_funds"
	ReasonFishNotFound          = "fish_not_found"
	ReasonPlantNotFound         = "plant_not_found"
	ReasonNotHarvestable        = "not_harvestable"
	ReasonNoHarvestableFish     = "no_harvestable_fish"
	ReasonNoHarvestablePlants   = "no_harvestable_plants"
	ReasonGrowBedFull           = "grow_bed_full"
	ReasonFishCapacityExceeded  = "fish_capacity_exceeded"
	ReasonPlantCapacityExceeded = "plant_capacity_exceeded"
	ReasonNoActiveEvent         = "no_active_event"
	ReasonEventNotRepairable    = "event_not_repairable"
)

var rejectionReasons = []struct {
	err    error
	reason string
}{
	{ErrUnknownSpecies, ReasonUnknownSpecies},
	{ErrUnknownEquipment, ReasonUnknownEquipment},
	{ErrUnknownEvent, ReasonUnknownEvent},
	{ErrInvalidQuantity, ReasonInvalidQuantity},
	{ErrInvalidArgument, ReasonInvalidArgument},
	{ErrInsufficientFunds, ReasonInsufficientFunds},
	{ErrFishNotFound, ReasonFishNotFound},
	{ErrPlantNotFound, ReasonPlantNotFound},
	{ErrNotHarvestable, ReasonNotHarvestable},
	{ErrNoHarvestableFish, ReasonNoHarvestableFish},
	{ErrNoHarvestablePlants, ReasonNoHarvestablePlants},
	{ErrGrowBedFull, ReasonGrowBedFull},
	{ErrFishCapacityExceeded, ReasonFishCapacityExceeded},
	{ErrPlantCapacity, ReasonPlantCapacityExceeded},
	{ErrNoActiveEvent, ReasonNoActiveEvent},
	{ErrEventNotRepairable, ReasonEventNotRepairable},
}

// RejectionReason returns the machine reason for a move rejection, or "" when err
// is not a validation or business-rule failure.
func RejectionReason(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range rejectionReasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ""
}

// IsRejection reports whether err is a recoverable move rejection rather than an
// integrity failure that must abort the request.
func IsRejection(err error) bool {
	return RejectionReason(err) != ""
}
