package fuelmodel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gofsm/internal/rothermel"
)

func TestLookup(t *testing.T) {
	t.Run("known model", func(t *testing.T) {
		model, ok := Lookup("GR7")
		require.True(t, ok)
		assert.Equal(t, 2000.0, model.SAVRatio)
		assert.Equal(t, 1.0, model.FuelLoad)
		assert.Equal(t, 3.0, model.Depth)
		assert.Equal(t, 0.15, model.MoistureExtinction)
	})

	t.Run("unknown model", func(t *testing.T) {
		_, ok := Lookup("99")
		assert.False(t, ok)
	})
}

func TestStandardModelsAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range StandardModels {
		assert.False(t, seen[m.ID], "duplicate model ID %s", m.ID)
		seen[m.ID] = true

		assert.NotEmpty(t, m.Description)
		assert.Positive(t, m.SAVRatio, "model %s", m.ID)
		assert.Positive(t, m.FuelLoad, "model %s", m.ID)
		assert.Positive(t, m.Depth, "model %s", m.ID)
		assert.Positive(t, m.MoistureExtinction, "model %s", m.ID)
	}
}

func TestBedUsesStandardParticleProperties(t *testing.T) {
	model, ok := Lookup("3")
	require.True(t, ok)

	bed := model.Bed()
	assert.Equal(t, rothermel.StdHeatContent, bed.HeatContent)
	assert.Equal(t, rothermel.StdTotalMineral, bed.TotalMineral)
	assert.Equal(t, rothermel.StdEffectiveMineral, bed.EffectiveMineral)
	assert.Equal(t, rothermel.StdParticleDensity, bed.ParticleDensity)
	assert.Equal(t, model.SAVRatio, bed.SAVRatio)
	assert.Equal(t, model.MoistureExtinction, bed.MoistureExtinction)
}

func TestModelRateMatchesCore(t *testing.T) {
	model, ok := Lookup("GR7")
	require.True(t, ok)

	rate := model.RateOfSpread(0.08)
	want := rothermel.RateOfSpread(8000, 0.0555, 0.010, 32, 2000, 1, 3, 0.15, 0.08, 0)
	assert.Equal(t, want, rate)
	assert.Equal(t, 10.557, math.Round(rate*1000)/1000)
}

func TestFastestSpread(t *testing.T) {
	t.Run("returns the maximum over the catalog", func(t *testing.T) {
		rate, governing := FastestSpread(StandardModels, 0.08)
		require.Positive(t, rate)

		for _, m := range StandardModels {
			assert.GreaterOrEqual(t, rate, m.RateOfSpread(0.08))
		}
		assert.Equal(t, rate, governing.RateOfSpread(0.08))
	})

	t.Run("all models extinguished", func(t *testing.T) {
		rate, governing := FastestSpread(StandardModels, 0.60)
		assert.Equal(t, 0.0, rate)
		assert.Empty(t, governing.ID)
	})
}
