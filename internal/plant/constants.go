package plant

const (
	MaxHealth   = 100.0
	MaxMaturity = 100.0
	InitialSize = 1.0

	daysPerWeek = 7

	// healthLossPerPenalty converts a day's summed growth penalties to health points
	healthLossPerPenalty = 10.0
)

// Failure reasons
const (
	ReasonNoLight  = "No light available"
	ReasonNotReady = "Plant not ready for harvest"
)

// pH deviation from the species optimum and the growth penalty it costs
const (
	phSevereDeviation = 1.0
	phMildDeviation   = 0.5
	phSeverePenalty   = 0.30
	phMildPenalty     = 0.15
)

// Deficiency severities
const (
	SeveritySevere   = "severe"
	SeverityModerate = "moderate"
	SeverityMild     = "mild"
)

// Harvest quality tiers by health
const (
	QualityExcellent = "excellent"
	QualityGood      = "good"
	QualityFair      = "fair"
	QualityPoor      = "poor"

	excellentHealth = 80.0
	goodHealth      = 60.0
	fairHealth      = 40.0
)

// Nutrient names as reported in deficiencies
const (
	NutrientNitrogen   = "nitrogen"
	NutrientPhosphorus = "phosphorus"
	NutrientPotassium  = "potassium"
	NutrientCalcium    = "calcium"
	NutrientMagnesium  = "magnesium"
	NutrientIron       = "iron"
)

// nutrientRule describes how a shortfall of one nutrient is penalised.
// A shortfall of x (fraction below requirement) costs x * weight of growth;
// the resulting penalty at or above severe/moderate picks the severity tier.
type nutrientRule struct {
	nutrient string
	symptom  string
	weight   float64
	severe   float64
	moderate float64
}

var nutrientRules = []nutrientRule{
	{NutrientNitrogen, "yellowing_leaves", 0.40, 0.25, 0.10},
	{NutrientPhosphorus, "burnt_edges", 0.30, 0.20, 0.08},
	{NutrientPotassium, "scorched_margins_with_black_spots", 0.30, 0.20, 0.08},
	{NutrientCalcium, "tip_burn_and_deformed_leaves", 0.25, 0.15, 0.06},
	{NutrientMagnesium, "chlorosis_on_old_leaves", 0.20, 0.12, 0.05},
	{NutrientIron, "chlorosis_on_new_leaves", 0.25, 0.15, 0.06},
}
