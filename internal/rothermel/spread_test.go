package rothermel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Standard high-load, dry climate grass (dense tall grass)
func grassBed() *FuelBed {
	return NewFuelBed(2000, 1, 3, 0.15)
}

func grassRate(moisture float64) float64 {
	return RateOfSpread(8000, 0.0555, 0.010, 32, 2000, 1, 3, 0.15, moisture, 0)
}

func TestRateOfSpreadReferenceScenarios(t *testing.T) {
	t.Run("current climate at 8% moisture", func(t *testing.T) {
		rate := grassRate(0.08)
		assert.Equal(t, 10.557, math.Round(rate*1000)/1000)
	})

	t.Run("projected climate at 7% moisture", func(t *testing.T) {
		rate := grassRate(0.07)
		assert.Equal(t, 11.084, math.Round(rate*1000)/1000)
	})
}

func TestRateOfSpreadNonNegative(t *testing.T) {
	for _, moisture := range []float64{0, 0.02, 0.05, 0.08, 0.10, 0.14} {
		assert.GreaterOrEqual(t, grassRate(moisture), 0.0, "moisture %.2f", moisture)
	}
}

func TestRateOfSpreadZeroWhenNoCombustion(t *testing.T) {
	t.Run("moisture above extinction", func(t *testing.T) {
		assert.Equal(t, 0.0, grassRate(0.16))
		assert.Equal(t, 0.0, grassRate(0.30))
	})

	t.Run("no fuel load", func(t *testing.T) {
		rate := RateOfSpread(8000, 0.0555, 0.010, 32, 2000, 0, 3, 0.15, 0.08, 0)
		assert.Equal(t, 0.0, rate)
	})
}

func TestRateOfSpreadMonotonicInMoisture(t *testing.T) {
	// Wetter fuel must always spread slower, up to extinction
	prev := grassRate(0)
	for moisture := 0.01; moisture < 0.15; moisture += 0.01 {
		rate := grassRate(moisture)
		assert.Less(t, rate, prev, "rate must strictly decrease at moisture %.2f", moisture)
		prev = rate
	}
}

func TestRateOfSpreadIdempotent(t *testing.T) {
	first := grassRate(0.08)
	second := grassRate(0.08)
	assert.Equal(t, first, second)
}

func TestRateOfSpreadIgnoresWind(t *testing.T) {
	// The no-wind form accepts a wind velocity but never applies it
	calm := RateOfSpread(8000, 0.0555, 0.010, 32, 2000, 1, 3, 0.15, 0.08, 0)
	windy := RateOfSpread(8000, 0.0555, 0.010, 32, 2000, 1, 3, 0.15, 0.08, 880)
	assert.Equal(t, calm, windy)
}

func TestNewFuelBedDefaults(t *testing.T) {
	bed := grassBed()

	assert.Equal(t, StdHeatContent, bed.HeatContent)
	assert.Equal(t, StdTotalMineral, bed.TotalMineral)
	assert.Equal(t, StdEffectiveMineral, bed.EffectiveMineral)
	assert.Equal(t, StdParticleDensity, bed.ParticleDensity)
	assert.Equal(t, 2000.0, bed.SAVRatio)
	assert.Equal(t, 3.0, bed.Depth)
}

func TestSpreadMatchesRateOfSpread(t *testing.T) {
	// The worksheet path and the pure function are the same arithmetic
	for _, moisture := range []float64{0, 0.04, 0.07, 0.08, 0.12} {
		result, err := grassBed().Spread(moisture)
		require.NoError(t, err)
		assert.Equal(t, grassRate(moisture), result.Rate, "moisture %.2f", moisture)
	}
}

func TestSpreadIntermediates(t *testing.T) {
	result, err := grassBed().Spread(0.08)
	require.NoError(t, err)

	assert.True(t, result.CanSustain)
	assert.InDelta(t, 1.0/3.0, result.BulkDensity, 1e-12)
	assert.InDelta(t, 0.9445, result.NetFuelLoad, 1e-12)
	assert.InDelta(t, 1.0/96.0, result.PackingRatio, 1e-12)
	assert.InDelta(t, 339.28, result.HeatPreignition, 1e-9)
	assert.Greater(t, result.ReactionIntensity, 0.0)
	assert.Greater(t, result.PropagatingFlux, 0.0)
	assert.Greater(t, result.HeatingNumber, 0.0)
}

func TestSpreadMoistureDamping(t *testing.T) {
	t.Run("oven-dry fuel attains maximum damping coefficient", func(t *testing.T) {
		result, err := grassBed().Spread(0)
		require.NoError(t, err)
		assert.Equal(t, 1.0, result.MoistureDamping)
	})

	t.Run("damping decreases toward extinction", func(t *testing.T) {
		wetter, err := grassBed().Spread(0.12)
		require.NoError(t, err)
		drier, err := grassBed().Spread(0.06)
		require.NoError(t, err)
		assert.Less(t, wetter.MoistureDamping, drier.MoistureDamping)
	})
}

func TestSpreadNoCombustion(t *testing.T) {
	result, err := grassBed().Spread(0.20)
	require.NoError(t, err)

	assert.False(t, result.CanSustain)
	assert.Equal(t, 0.0, result.Rate)
	assert.Contains(t, result.Message, "cannot sustain")
}

func TestSpreadValidation(t *testing.T) {
	t.Run("zero SAV ratio", func(t *testing.T) {
		bed := NewFuelBed(0, 1, 3, 0.15)
		_, err := bed.Spread(0.08)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid fuel bed")
	})

	t.Run("zero depth", func(t *testing.T) {
		bed := NewFuelBed(2000, 1, 0, 0.15)
		_, err := bed.Spread(0.08)
		require.Error(t, err)
	})

	t.Run("zero moisture of extinction", func(t *testing.T) {
		bed := NewFuelBed(2000, 1, 3, 0)
		_, err := bed.Spread(0.08)
		require.Error(t, err)
	})

	t.Run("non-positive effective mineral content", func(t *testing.T) {
		bed := grassBed()
		bed.EffectiveMineral = 0
		_, err := bed.Spread(0.08)
		require.Error(t, err)
	})

	t.Run("negative moisture", func(t *testing.T) {
		_, err := grassBed().Spread(-0.01)
		require.Error(t, err)
	})
}
