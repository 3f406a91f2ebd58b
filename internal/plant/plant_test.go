package plant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

func romaine() domain.PlantSpecies {
	return domain.PlantSpecies{
		ID:                "ParrisIslandRomaine",
		GrowthPeriodWeeks: 4,
		OptimalPH:         6.5,
		NutrientRequirements: domain.NutrientRequirements{
			Nitrogen: 5, Phosphorus: 3, Potassium: 30,
			Calcium: 50, Magnesium: 15, Iron: 1,
		},
		ValuePerHead: 2.0,
		SeedCost:     1.0,
	}
}

func optimalWater() domain.WaterChemistry {
	return domain.WaterChemistry{
		PH: 6.5, Nitrate: 10, Phosphorus: 5, Potassium: 40,
		Calcium: 60, Magnesium: 20, Iron: 2,
		Temperature: 22, DissolvedOxygen: 8,
	}
}

func growDays(p *domain.Plant, w domain.WaterChemistry, days int) {
	for i := 0; i < days; i++ {
		Grow(p, romaine(), w, true)
	}
}

func TestNew(t *testing.T) {
	p := New("plant_1", "ParrisIslandRomaine", "bed1")

	assert.Equal(t, "plant_1", p.ID)
	assert.Equal(t, "bed1", p.BedID)
	assert.Equal(t, 100.0, p.Health)
	assert.Equal(t, 0, p.WeeksGrown)
	assert.Equal(t, 0.0, p.Maturity)
	assert.Empty(t, p.Deficiencies)
}

func TestGrow_OptimalConditions(t *testing.T) {
	p := New("plant_1", "ParrisIslandRomaine", "bed1")

	res := Grow(p, romaine(), optimalWater(), true)

	assert.True(t, res.Success)
	assert.Equal(t, 1.0, res.GrowthRate)
	assert.Equal(t, 0.0, res.PHPenalty)
	assert.Empty(t, res.Deficiencies)
	assert.Equal(t, 1, p.DaysGrown)
	assert.Equal(t, 0, res.WeeksGrown)
	assert.InDelta(t, 100.0/28.0, res.Maturity, 1e-9)
	assert.Equal(t, 100.0, res.Health)
	assert.Equal(t, 2.0, p.Size)
}

func TestGrow_ReachesMaturity(t *testing.T) {
	p := New("plant_1", "ParrisIslandRomaine", "bed1")

	growDays(p, optimalWater(), 28)

	assert.Equal(t, 28, p.DaysGrown)
	assert.Equal(t, 4, p.WeeksGrown)
	assert.InDelta(t, 100.0, p.Maturity, 1e-6)
	assert.LessOrEqual(t, p.Maturity, 100.0)
	assert.True(t, CanHarvest(p, romaine()))
	assert.Equal(t, 100.0, p.Health)
}

func TestCanHarvest_Boundary(t *testing.T) {
	p := New("plant_1", "ParrisIslandRomaine", "bed1")

	growDays(p, optimalWater(), 27)
	assert.False(t, CanHarvest(p, romaine()))
	assert.Equal(t, 0.0, MarketValue(p, romaine()))

	growDays(p, optimalWater(), 1)
	assert.True(t, CanHarvest(p, romaine()))
}

func TestGrow_NoLight(t *testing.T) {
	p := New("plant_1", "ParrisIslandRomaine", "bed1")
	p.Deficiencies = []domain.Deficiency{{Nutrient: NutrientIron, Symptom: "chlorosis_on_new_leaves", Severity: SeverityMild}}

	res := Grow(p, romaine(), optimalWater(), false)

	assert.False(t, res.Success)
	assert.Equal(t, "No light available", res.Reason)
	assert.Equal(t, 0.0, res.GrowthRate)
	assert.Equal(t, 0, p.DaysGrown)
	assert.Equal(t, 0.0, p.Maturity)
	assert.Len(t, p.Deficiencies, 1, "deficiencies are preserved without light")
}

func TestGrow_PHPenalty(t *testing.T) {
	tests := []struct {
		name        string
		ph          float64
		wantPenalty float64
		wantRate    float64
	}{
		{"at optimum", 6.5, 0, 1.0},
		{"half unit off", 7.0, 0, 1.0},
		{"mild deviation", 7.1, 0.15, 0.85},
		{"severe deviation", 5.4, 0.30, 0.70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("plant_1", "ParrisIslandRomaine", "bed1")
			w := optimalWater()
			w.PH = tt.ph

			res := Grow(p, romaine(), w, true)

			assert.Equal(t, tt.wantPenalty, res.PHPenalty)
			assert.InDelta(t, tt.wantRate, res.GrowthRate, 1e-9)
		})
	}
}

func TestGrow_BadPHReducesHealth(t *testing.T) {
	p := New("plant_1", "ParrisIslandRomaine", "bed1")
	w := optimalWater()
	w.PH = 5.0

	growDays(p, w, 4)

	assert.Less(t, p.Health, 100.0)
}

func TestGrow_SingleDeficiencies(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(w *domain.WaterChemistry)
		nutrient string
		symptom  string
	}{
		{"nitrogen", func(w *domain.WaterChemistry) { w.Nitrate = 2 }, NutrientNitrogen, "yellowing_leaves"},
		{"phosphorus", func(w *domain.WaterChemistry) { w.Phosphorus = 1 }, NutrientPhosphorus, "burnt_edges"},
		{"potassium", func(w *domain.WaterChemistry) { w.Potassium = 15 }, NutrientPotassium, "scorched_margins_with_black_spots"},
		{"calcium", func(w *domain.WaterChemistry) { w.Calcium = 25 }, NutrientCalcium, "tip_burn_and_deformed_leaves"},
		{"magnesium", func(w *domain.WaterChemistry) { w.Magnesium = 7 }, NutrientMagnesium, "chlorosis_on_old_leaves"},
		{"iron", func(w *domain.WaterChemistry) { w.Iron = 0.4 }, NutrientIron, "chlorosis_on_new_leaves"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("plant_1", "ParrisIslandRomaine", "bed1")
			w := optimalWater()
			tt.mutate(&w)

			res := Grow(p, romaine(), w, true)

			require.Len(t, res.Deficiencies, 1)
			assert.Equal(t, tt.nutrient, res.Deficiencies[0].Nutrient)
			assert.Equal(t, tt.symptom, res.Deficiencies[0].Symptom)
			assert.NotEmpty(t, res.Deficiencies[0].Severity)
			assert.Greater(t, res.NutrientPenalties[tt.nutrient], 0.0)
			assert.Less(t, res.GrowthRate, 1.0)
		})
	}
}

func TestGrow_NitrogenSeverityTiers(t *testing.T) {
	tests := []struct {
		nitrate float64
		want    string
	}{
		{0.5, SeveritySevere},
		{3.0, SeverityModerate},
		{4.5, SeverityMild},
	}

	for _, tt := range tests {
		p := New("plant_1", "ParrisIslandRomaine", "bed1")
		w := optimalWater()
		w.Nitrate = tt.nitrate

		res := Grow(p, romaine(), w, true)

		require.Len(t, res.Deficiencies, 1)
		assert.Equal(t, tt.want, res.Deficiencies[0].Severity, "nitrate %.1f", tt.nitrate)
	}
}

func TestGrow_MultipleDeficienciesCompound(t *testing.T) {
	p := New("plant_1", "ParrisIslandRomaine", "bed1")
	w := optimalWater()
	w.Nitrate = 1
	w.Phosphorus = 0.5
	w.Potassium = 10

	res := Grow(p, romaine(), w, true)

	assert.Less(t, res.GrowthRate, 0.5)
	assert.Len(t, res.Deficiencies, 3)
	assert.Equal(t, []string{NutrientNitrogen, NutrientPhosphorus, NutrientPotassium},
		[]string{res.Deficiencies[0].Nutrient, res.Deficiencies[1].Nutrient, res.Deficiencies[2].Nutrient})
}

func TestGrow_MultipleDeficienciesReduceHealth(t *testing.T) {
	p := New("plant_1", "ParrisIslandRomaine", "bed1")
	w := optimalWater()
	w.Nitrate = 1
	w.Phosphorus = 0.5
	w.Iron = 0.3

	growDays(p, w, 3)

	assert.Less(t, p.Health, 90.0)
}

func TestGrow_DeficienciesReplacedDaily(t *testing.T) {
	p := New("plant_1", "ParrisIslandRomaine", "bed1")
	w := optimalWater()
	w.Iron = 0.2

	Grow(p, romaine(), w, true)
	require.Len(t, p.Deficiencies, 1)

	Grow(p, romaine(), optimalWater(), true)
	assert.Empty(t, p.Deficiencies)
}

func TestGrow_NeverNegative(t *testing.T) {
	p := New("plant_1", "ParrisIslandRomaine", "bed1")
	w := domain.WaterChemistry{PH: 5.0}

	for i := 0; i < 30; i++ {
		res := Grow(p, romaine(), w, true)
		assert.GreaterOrEqual(t, res.GrowthRate, 0.0)
	}
	assert.Equal(t, 30, p.DaysGrown)
	assert.Equal(t, 0.0, p.Health)
	assert.Equal(t, 0.0, p.Maturity)
}

func TestGrowBoosted_ScalesSizeOnly(t *testing.T) {
	p := New("plant_1", "ParrisIslandRomaine", "bed1")

	res := GrowBoosted(p, romaine(), optimalWater(), true, 1.5)

	assert.Equal(t, 1.0, res.GrowthRate)
	assert.InDelta(t, 2.5, p.Size, 1e-9)
	assert.InDelta(t, 100.0/28.0, p.Maturity, 1e-9)
}

func TestHarvest(t *testing.T) {
	t.Run("immature", func(t *testing.T) {
		p := New("plant_1", "ParrisIslandRomaine", "bed1")

		res := Harvest(p, romaine())

		assert.False(t, res.Success)
		assert.Equal(t, "Plant not ready for harvest", res.Reason)
		assert.Equal(t, 0.0, res.Value)
	})

	t.Run("healthy at full value", func(t *testing.T) {
		p := New("plant_1", "ParrisIslandRomaine", "bed1")
		growDays(p, optimalWater(), 28)

		res := Harvest(p, romaine())

		assert.True(t, res.Success)
		assert.Equal(t, 2.0, res.Value)
		assert.Equal(t, QualityExcellent, res.Quality)
		assert.Equal(t, 100.0, res.Health)
	})

	t.Run("deficient loses value", func(t *testing.T) {
		p := New("plant_1", "ParrisIslandRomaine", "bed1")
		w := optimalWater()
		w.Nitrate = 1
		w.Phosphorus = 0.5
		growDays(p, w, 28)

		res := Harvest(p, romaine())

		assert.True(t, res.Success)
		assert.Less(t, res.Value, 2.0)
		assert.NotEqual(t, QualityExcellent, res.Quality)
	})
}

func TestQuality(t *testing.T) {
	assert.Equal(t, QualityExcellent, Quality(85))
	assert.Equal(t, QualityExcellent, Quality(80))
	assert.Equal(t, QualityGood, Quality(70))
	assert.Equal(t, QualityFair, Quality(50))
	assert.Equal(t, QualityPoor, Quality(30))
}
