package rothermel

// Standard fuel particle properties
//
// Rothermel's stylized fuel models all assume the same particle chemistry;
// only the fuel bed geometry and moisture limits vary between models.

const (
	// StdHeatContent is the low heat content of dead fuel (Btu/lb)
	StdHeatContent = 8000.0

	// StdTotalMineral is the total mineral content (lb minerals / lb fuel)
	StdTotalMineral = 0.0555

	// StdEffectiveMineral is the silica-free mineral content (fraction)
	StdEffectiveMineral = 0.010

	// StdParticleDensity is the oven-dry particle density (lb/ft³)
	StdParticleDensity = 32.0
)
