package water

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

func TestNew_Defaults(t *testing.T) {
	w := New()

	assert.Equal(t, 0.0, w.Ammonia)
	assert.Equal(t, 0.0, w.Nitrite)
	assert.Equal(t, 10.0, w.Nitrate)
	assert.Equal(t, 7.0, w.PH)
	assert.Equal(t, 22.0, w.Temperature)
	assert.Equal(t, 8.0, w.DissolvedOxygen)
	assert.Equal(t, 40.0, w.Potassium)
	assert.Equal(t, 2.0, w.Iron)
}

func TestUpdate_ConvertsAmmoniaToNitrate(t *testing.T) {
	w := New()

	Update(&w, 2.0, 2.0, 0.8)

	// 2.0 ammonia -> 1.6 nitrite -> 1.28 nitrate
	assert.InDelta(t, 11.28, w.Nitrate, 1e-9)
	assert.Equal(t, 0.0, w.Ammonia)
	assert.Equal(t, 0.0, w.Nitrite)
	assert.InDelta(t, 7.0, w.PH, 1e-9)
}

func TestUpdate_PHDrift(t *testing.T) {
	tests := []struct {
		name       string
		input      float64
		absorption float64
		wantPH     float64
	}{
		{"excess ammonia acidifies", 10, 0, 6.9},
		{"excess uptake raises pH", 0, 20, 7.2},
		{"balanced", 5, 5, 7.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			Update(&w, tt.input, tt.absorption, 0.8)
			assert.InDelta(t, tt.wantPH, w.PH, 1e-9)
		})
	}
}

func TestUpdate_PHStaysInRangeUnderRepeatedExtremes(t *testing.T) {
	low := New()
	high := New()

	for i := 0; i < 1000; i++ {
		Update(&low, 500, 0, 1)
		Update(&high, 0, 500, 1)

		assert.GreaterOrEqual(t, low.PH, MinPH)
		assert.LessOrEqual(t, low.PH, MaxPH)
		assert.GreaterOrEqual(t, high.PH, MinPH)
		assert.LessOrEqual(t, high.PH, MaxPH)
	}

	assert.Equal(t, MinPH, low.PH)
	assert.Equal(t, MaxPH, high.PH)
}

func TestUpdate_SanitisesInputs(t *testing.T) {
	w := New()

	Update(&w, -4, -3, 1.7)

	assert.Equal(t, 10.0, w.Nitrate)
	assert.Equal(t, 7.0, w.PH)

	Update(&w, 1, 1, -1)
	assert.Equal(t, 10.0, w.Nitrate, "negative efficiency converts nothing")
}

func TestStatus_Rounding(t *testing.T) {
	w := domain.WaterChemistry{
		Ammonia:         0.12345,
		Nitrite:         0.006,
		Nitrate:         12.3456,
		PH:              6.849,
		Temperature:     22.04,
		DissolvedOxygen: 7.96,
		Phosphorus:      4.44,
		Potassium:       39.96,
		Calcium:         60.01,
		Magnesium:       19.99,
		Iron:            1.234,
	}

	s := Status(w)

	assert.Equal(t, 0.12, s.Ammonia)
	assert.Equal(t, 0.01, s.Nitrite)
	assert.Equal(t, 12.35, s.Nitrate)
	assert.Equal(t, 6.8, s.PH)
	assert.Equal(t, 22.0, s.Temperature)
	assert.Equal(t, 8.0, s.DissolvedOxygen)
	assert.Equal(t, 4.4, s.Phosphorus)
	assert.Equal(t, 40.0, s.Potassium)
	assert.Equal(t, 1.23, s.Iron)
	assert.Equal(t, 0.12345, w.Ammonia, "status must not mutate the source")
}

func TestDeduct_FloorsAtZero(t *testing.T) {
	w := New()

	Deduct(&w, domain.NutrientUsage{Nitrogen: 4, Phosphorus: 10, Iron: 0.5})

	assert.Equal(t, 6.0, w.Nitrate)
	assert.Equal(t, 0.0, w.Phosphorus)
	assert.Equal(t, 1.5, w.Iron)
	assert.Equal(t, 40.0, w.Potassium)
}
