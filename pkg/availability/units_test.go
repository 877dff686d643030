package availability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBase(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		unit   string
		want   float64
		base   Base
	}{
		{"grams to kg", 500, "g", 0.5, BaseMass},
		{"kg identity", 2, "kg", 2, BaseMass},
		{"ml to l", 250, "ml", 0.25, BaseVolume},
		{"cl to l", 50, "cl", 0.5, BaseVolume},
		{"l identity", 1.5, "l", 1.5, BaseVolume},
		{"pieces identity", 3, "pz", 3, BaseCount},
		{"uova counts as pieces", 6, "uova", 6, BaseCount},
		{"case insensitive", 100, "G", 0.1, BaseMass},
		{"unknown unit defaults to count", 2, "bustine", 2, BaseCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, base := ToBase(tt.amount, tt.unit)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.base, base)
		})
	}
}

func TestToBaseMalformedAmounts(t *testing.T) {
	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -5} {
		got, _ := ToBase(amount, "g")
		assert.Zero(t, got)
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		from   string
		to     string
		want   float64
		ok     bool
	}{
		{"same unit identity", 300, "g", "g", 300, true},
		{"kg to g", 1, "kg", "g", 1000, true},
		{"g to kg", 250, "g", "kg", 0.25, true},
		{"ml to l", 500, "ml", "l", 0.5, true},
		{"l to ml", 2, "l", "ml", 2000, true},
		{"cl to ml", 33, "cl", "ml", 330, true},
		{"pezzi to pz", 4, "pezzi", "pz", 4, true},
		{"cross family mass to count", 1, "kg", "pz", 0, false},
		{"cross family volume to mass", 1, "l", "kg", 0, false},
		{"unknown unit pairing", 1, "bustine", "g", 0, false},
		{"identical unknown units pass through", 2, "bustine", "bustine", 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Convert(tt.amount, tt.from, tt.to)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestRoundForDisplay(t *testing.T) {
	assert.Equal(t, 250.0, roundForDisplay(249.7, "g"))
	assert.Equal(t, 0.3, roundForDisplay(0.25, "kg"))
	assert.Equal(t, 1.0, roundForDisplay(1.4, "pz"))
	assert.Equal(t, 0.5, roundForDisplay(0.52, "l"))
}
