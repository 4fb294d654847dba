package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gofsm/internal/rothermel"
)

// SpreadCurveData holds data for drawing a moisture-response curve
type SpreadCurveData struct {
	Bed *rothermel.FuelBed

	// Operating point
	Moisture float64 // M_f (fraction)
	Rate     float64 // spread rate at the operating point (ft/s)

	// Sampling resolution, defaults to 60 points when zero
	Points int
}

// sampleCurve evaluates the spread rate from zero moisture up to the
// moisture of extinction
func sampleCurve(data SpreadCurveData) ([]float64, float64) {
	n := data.Points
	if n <= 0 {
		n = 60
	}

	step := data.Bed.MoistureExtinction / float64(n)
	rates := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		mF := float64(i) * step
		rates = append(rates, rothermel.RateOfSpread(
			data.Bed.HeatContent,
			data.Bed.TotalMineral,
			data.Bed.EffectiveMineral,
			data.Bed.ParticleDensity,
			data.Bed.SAVRatio,
			data.Bed.FuelLoad,
			data.Bed.Depth,
			data.Bed.MoistureExtinction,
			mF,
			0,
		))
	}
	return rates, step
}

// DrawMoistureCurve creates an ASCII chart of spread rate against fuel
// moisture content, from oven-dry fuel to the moisture of extinction
func DrawMoistureCurve(data SpreadCurveData) string {
	var sb strings.Builder

	rates, _ := sampleCurve(data)

	sb.WriteString("\n")
	sb.WriteString("  SPREAD RATE vs FUEL MOISTURE\n")
	sb.WriteString("  ────────────────────────────\n\n")

	chart := asciigraph.Plot(rates,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("M_f from 0 to M_x = %.2f (rate in ft/s)", data.Bed.MoistureExtinction)),
	)
	sb.WriteString(chart)
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Operating point: M_f = %.3f  →  R = %.3f ft/s\n", data.Moisture, data.Rate))
	sb.WriteString(fmt.Sprintf("  Rate falls to zero at M_f = M_x = %.3f\n", data.Bed.MoistureExtinction))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
