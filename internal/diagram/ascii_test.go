package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gofsm/internal/rothermel"
)

func TestDrawMoistureCurve(t *testing.T) {
	bed := rothermel.NewFuelBed(2000, 1, 3, 0.15)
	result, err := bed.Spread(0.08)
	require.NoError(t, err)

	out := DrawMoistureCurve(SpreadCurveData{
		Bed:      bed,
		Moisture: 0.08,
		Rate:     result.Rate,
	})

	assert.Contains(t, out, "SPREAD RATE vs FUEL MOISTURE")
	assert.Contains(t, out, "Operating point: M_f = 0.080")
	assert.Contains(t, out, "M_x = 0.150")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RATE OF SPREAD", []string{"R = 0.267 ft/s"})

	assert.Contains(t, out, "RATE OF SPREAD")
	assert.Contains(t, out, "R = 0.267 ft/s")
	assert.Contains(t, out, "╔")
	assert.Contains(t, out, "╚")
}
