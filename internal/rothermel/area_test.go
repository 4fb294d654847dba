package rothermel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBurnedArea(t *testing.T) {
	t.Run("exact rate times seconds times hours", func(t *testing.T) {
		for _, tc := range []struct{ rate, hours float64 }{
			{0.5, 2.5},
			{0.267, 6},
			{0.296, 6},
		} {
			assert.Equal(t, tc.rate*3600*tc.hours, BurnedArea(tc.rate, tc.hours))
		}
	})

	t.Run("reference six hour burns", func(t *testing.T) {
		assert.InDelta(t, 5767.2, BurnedArea(0.267, 6), 1e-9)
		assert.InDelta(t, 6393.6, BurnedArea(0.296, 6), 1e-9)
	})

	t.Run("drier scenario burns more area", func(t *testing.T) {
		added := BurnedArea(0.296, 6) - BurnedArea(0.267, 6)
		assert.InDelta(t, 626.4, added, 1e-9)
		assert.Positive(t, added)
	})

	t.Run("no validation of inputs", func(t *testing.T) {
		assert.Equal(t, 0.0, BurnedArea(0, 6))
		assert.Equal(t, 0.0, BurnedArea(0.267, 0))
		assert.Equal(t, -7200.0, BurnedArea(-1, 2))
		assert.Equal(t, -7200.0, BurnedArea(1, -2))
	})
}
