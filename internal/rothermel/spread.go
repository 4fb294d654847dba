package rothermel

import (
	"fmt"
	"math"
)

// RateOfSpread computes the steady-state rate of surface fire spread (ft/s)
// using the Rothermel model with no wind and no slope:
//
//	R = I_R·ξ / (ρ_b·ε·Q_ig)
//
// Inputs:
//
//	h     - low heat content (Btu/lb)
//	sT    - total mineral content (lb minerals / lb fuel)
//	sE    - effective mineral content (lb minerals - lb silica, per lb fuel)
//	rhoP  - oven-dry particle density (lb/ft³)
//	sigma - surface-area-to-volume ratio (ft²/ft³)
//	w0    - oven-dry fuel load (lb/ft²)
//	delta - fuel bed depth (ft)
//	mX    - dead fuel moisture of extinction (fraction)
//	mF    - fuel moisture content (fraction)
//	u     - midflame wind velocity (ft/min); accepted but unused in the
//	        no-wind form
//
// The function performs no input validation: it is total over the physical
// domain (sigma, delta, rhoP, sE, mX all positive) and out-of-domain inputs
// propagate naturally as NaN or Inf. If the reaction intensity is zero or
// negative the fuel cannot sustain combustion and the spread rate is zero.
func RateOfSpread(h, sT, sE, rhoP, sigma, w0, delta, mX, mF, u float64) float64 {
	// Reaction intensity
	rM := mF / mX
	etaM := 1.0 - 2.59*rM + 5.11*math.Pow(rM, 2.0) - 3.52*math.Pow(rM, 3.0)
	etaS := 0.174 * math.Pow(sE, -0.19)
	wN := w0 * (1 - sT)
	a := 133.0 * math.Pow(sigma, -0.7913)
	rhoB := w0 / delta
	beta := rhoB / rhoP
	betaOp := 3.348 * math.Pow(sigma, -0.8189)
	gammaMax := math.Pow(sigma, 1.5) / (495 + 0.0594*math.Pow(sigma, 1.5))
	gamma := gammaMax * math.Pow(beta/betaOp, a) * math.Exp(a*(1-beta/betaOp))
	iR := gamma * wN * h * etaM * etaS

	// Propagating flux ratio
	xi := math.Exp((0.792+0.681*math.Pow(sigma, 0.5))*(beta+0.1)) / (192.0 + 0.2595*sigma)

	// Effective heating number
	epsilon := math.Exp(-138.0 / sigma)

	// Heat of preignition
	qIg := 250.0 + 1116.0*mF

	if iR <= 0 {
		return 0
	}
	return (iR * xi) / (rhoB * epsilon * qIg)
}

// FuelBed represents a uniform single-class surface fuel bed
type FuelBed struct {
	// Fuel particle properties
	HeatContent      float64 // h - low heat content (Btu/lb)
	TotalMineral     float64 // S_T - total mineral content (fraction)
	EffectiveMineral float64 // S_e - effective mineral content (fraction)
	ParticleDensity  float64 // ρ_p - oven-dry particle density (lb/ft³)

	// Fuel bed properties
	SAVRatio float64 // σ - surface-area-to-volume ratio (ft²/ft³)
	FuelLoad float64 // w_0 - oven-dry fuel load (lb/ft²)
	Depth    float64 // δ - fuel bed depth (ft)

	// Moisture
	MoistureExtinction float64 // M_x - dead fuel moisture of extinction (fraction)
	Moisture           float64 // M_f - fuel moisture content (fraction)

	// Wind (ft/min) - carried for the full model signature, unused in the
	// no-wind form
	WindSpeed float64
}

// NewFuelBed creates a fuel bed with the standard fuel particle properties
func NewFuelBed(savRatio, fuelLoad, depth, moistureExtinction float64) *FuelBed {
	return &FuelBed{
		HeatContent:        StdHeatContent,
		TotalMineral:       StdTotalMineral,
		EffectiveMineral:   StdEffectiveMineral,
		ParticleDensity:    StdParticleDensity,
		SAVRatio:           savRatio,
		FuelLoad:           fuelLoad,
		Depth:              depth,
		MoistureExtinction: moistureExtinction,
	}
}

// SpreadResult holds the results of a spread rate calculation
type SpreadResult struct {
	// Moisture and mineral damping
	MoistureRatio   float64 // M_f / M_x
	MoistureDamping float64 // η_M
	MineralDamping  float64 // η_S

	// Fuel bed properties
	NetFuelLoad         float64 // w_n (lb/ft²)
	BulkDensity         float64 // ρ_b (lb/ft³)
	PackingRatio        float64 // β
	OptimumPackingRatio float64 // β_op

	// Reaction
	ShapeParameter      float64 // A - reaction velocity exponent
	MaxReactionVelocity float64 // Γ_max - reaction velocity at optimum packing
	ReactionVelocity    float64 // Γ - actual reaction velocity
	ReactionIntensity   float64 // I_R - heat release rate of the fire front

	// Heat sink
	PropagatingFlux float64 // ξ - propagating flux ratio
	HeatingNumber   float64 // ε - effective heating number
	HeatPreignition float64 // Q_ig (Btu/lb)

	// Result
	Rate       float64 // R - rate of spread (ft/s)
	CanSustain bool    // I_R > 0
	Message    string
}

// Spread calculates the rate of spread for a given fuel moisture content.
// Unlike RateOfSpread it validates the fuel bed and exposes every
// intermediate quantity of the model for reporting.
func (f *FuelBed) Spread(moisture float64) (*SpreadResult, error) {
	f.Moisture = moisture

	if f.SAVRatio <= 0 || f.Depth <= 0 {
		return nil, fmt.Errorf("invalid fuel bed: σ=%.2f, depth=%.2f", f.SAVRatio, f.Depth)
	}
	if f.ParticleDensity <= 0 || f.EffectiveMineral <= 0 {
		return nil, fmt.Errorf("invalid fuel particle properties: ρ_p=%.2f, S_e=%.4f", f.ParticleDensity, f.EffectiveMineral)
	}
	if f.MoistureExtinction <= 0 {
		return nil, fmt.Errorf("invalid moisture of extinction: M_x=%.4f", f.MoistureExtinction)
	}
	if moisture < 0 {
		return nil, fmt.Errorf("invalid moisture content: M_f=%.4f", moisture)
	}

	result := &SpreadResult{}

	// Damping coefficients
	result.MoistureRatio = moisture / f.MoistureExtinction
	rM := result.MoistureRatio
	result.MoistureDamping = 1.0 - 2.59*rM + 5.11*math.Pow(rM, 2.0) - 3.52*math.Pow(rM, 3.0)
	result.MineralDamping = 0.174 * math.Pow(f.EffectiveMineral, -0.19)

	// Fuel bed geometry
	result.NetFuelLoad = f.FuelLoad * (1 - f.TotalMineral)
	result.BulkDensity = f.FuelLoad / f.Depth
	result.PackingRatio = result.BulkDensity / f.ParticleDensity
	result.OptimumPackingRatio = 3.348 * math.Pow(f.SAVRatio, -0.8189)

	// Reaction velocity and intensity
	result.ShapeParameter = 133.0 * math.Pow(f.SAVRatio, -0.7913)
	result.MaxReactionVelocity = math.Pow(f.SAVRatio, 1.5) / (495 + 0.0594*math.Pow(f.SAVRatio, 1.5))
	relPacking := result.PackingRatio / result.OptimumPackingRatio
	result.ReactionVelocity = result.MaxReactionVelocity *
		math.Pow(relPacking, result.ShapeParameter) *
		math.Exp(result.ShapeParameter*(1-relPacking))
	result.ReactionIntensity = result.ReactionVelocity * result.NetFuelLoad *
		f.HeatContent * result.MoistureDamping * result.MineralDamping

	// Heat source and sink terms
	result.PropagatingFlux = math.Exp((0.792+0.681*math.Pow(f.SAVRatio, 0.5))*(result.PackingRatio+0.1)) /
		(192.0 + 0.2595*f.SAVRatio)
	result.HeatingNumber = math.Exp(-138.0 / f.SAVRatio)
	result.HeatPreignition = 250.0 + 1116.0*moisture

	result.CanSustain = result.ReactionIntensity > 0
	if !result.CanSustain {
		result.Rate = 0
		result.Message = "Fuel cannot sustain combustion (moisture at or above extinction)"
		return result, nil
	}

	result.Rate = (result.ReactionIntensity * result.PropagatingFlux) /
		(result.BulkDensity * result.HeatingNumber * result.HeatPreignition)
	result.Message = "Steady-state spread (no wind, no slope)"

	return result, nil
}
