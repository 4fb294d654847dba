package rothermel

// BurnedArea estimates the area burned (ft²) by a fire spreading at a
// constant rate (ft/s) for the given number of hours. The model is a plain
// rate × time product with no growth-shape or wind-driven ellipse; the
// function performs no validation, so negative inputs simply produce a
// negative area.
func BurnedArea(spreadRate, hours float64) float64 {
	return spreadRate * 3600 * hours
}
