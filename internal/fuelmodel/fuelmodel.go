package fuelmodel

import (
	"github.com/alexiusacademia/gofsm/internal/rothermel"
)

// FuelModel represents a stylized single-class surface fuel model
type FuelModel struct {
	ID          string
	Description string
	// Fuel bed parameters
	SAVRatio           float64 // σ - surface-area-to-volume ratio (ft²/ft³)
	FuelLoad           float64 // w_0 - oven-dry fuel load (lb/ft²)
	Depth              float64 // δ - fuel bed depth (ft)
	MoistureExtinction float64 // M_x - dead fuel moisture of extinction (fraction)
}

// StandardModels are stylized grass and brush fuel models, reduced to a
// single dead fuel class. They are preset conveniences for the CLI, not a
// certified fuel model database.
var StandardModels = []FuelModel{
	{
		ID:                 "1",
		Description:        "Short grass",
		SAVRatio:           3500,
		FuelLoad:           0.034,
		Depth:              1.0,
		MoistureExtinction: 0.12,
	},
	{
		ID:                 "2",
		Description:        "Timber grass and understory",
		SAVRatio:           3000,
		FuelLoad:           0.092,
		Depth:              1.0,
		MoistureExtinction: 0.15,
	},
	{
		ID:                 "3",
		Description:        "Tall grass",
		SAVRatio:           1500,
		FuelLoad:           0.138,
		Depth:              2.5,
		MoistureExtinction: 0.25,
	},
	{
		ID:                 "4",
		Description:        "Chaparral",
		SAVRatio:           2000,
		FuelLoad:           0.230,
		Depth:              6.0,
		MoistureExtinction: 0.20,
	},
	{
		ID:                 "GR7",
		Description:        "High-load, dry climate grass (dense tall grass)",
		SAVRatio:           2000,
		FuelLoad:           1.0,
		Depth:              3.0,
		MoistureExtinction: 0.15,
	},
}

// Lookup finds a standard fuel model by its ID
func Lookup(id string) (FuelModel, bool) {
	for _, m := range StandardModels {
		if m.ID == id {
			return m, true
		}
	}
	return FuelModel{}, false
}

// Bed builds a fuel bed from the model parameters using the standard fuel
// particle properties
func (m FuelModel) Bed() *rothermel.FuelBed {
	return rothermel.NewFuelBed(m.SAVRatio, m.FuelLoad, m.Depth, m.MoistureExtinction)
}

// RateOfSpread computes the no-wind spread rate (ft/s) for the model at the
// given fuel moisture content
func (m FuelModel) RateOfSpread(moisture float64) float64 {
	return rothermel.RateOfSpread(
		rothermel.StdHeatContent,
		rothermel.StdTotalMineral,
		rothermel.StdEffectiveMineral,
		rothermel.StdParticleDensity,
		m.SAVRatio,
		m.FuelLoad,
		m.Depth,
		m.MoistureExtinction,
		moisture,
		0,
	)
}

// FastestSpread finds the model with the highest spread rate at the given
// moisture content
func FastestSpread(models []FuelModel, moisture float64) (float64, FuelModel) {
	var maxRate float64
	var governing FuelModel

	for _, m := range models {
		rate := m.RateOfSpread(moisture)
		if rate > maxRate {
			maxRate = rate
			governing = m
		}
	}

	return maxRate, governing
}
