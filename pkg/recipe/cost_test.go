package recipe

import (
	"testing"

	"dispensa-backend/domain"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCostKnownPrices(t *testing.T) {
	cost := EstimateCost([]domain.RecipeIngredient{
		{Name: "Guanciale", Amount: 150, Unit: "g"},
		{Name: "Uova", Amount: 4, Unit: "pz"},
	})

	// 0.15 kg * 18 + 4 pz * 0.40
	assert.InDelta(t, 4.30, cost, 1e-9)
}

func TestEstimateCostUnitInvariant(t *testing.T) {
	grams := EstimateCost([]domain.RecipeIngredient{{Name: "Farina 00", Amount: 500, Unit: "g"}})
	kilos := EstimateCost([]domain.RecipeIngredient{{Name: "Farina 00", Amount: 0.5, Unit: "kg"}})

	assert.InDelta(t, grams, kilos, 1e-9)
}

func TestEstimateCostDefaultPrice(t *testing.T) {
	// Unknown ingredient with an unknown unit prices at the count default.
	cost := EstimateCost([]domain.RecipeIngredient{{Name: "Zafferano", Amount: 1, Unit: "bustina"}})

	assert.InDelta(t, 0.80, cost, 1e-9)
}

func TestEstimateCostEmpty(t *testing.T) {
	assert.Zero(t, EstimateCost(nil))
}

func TestCostPerServing(t *testing.T) {
	assert.InDelta(t, 2.5, CostPerServing(10, 4), 1e-9)
	assert.InDelta(t, 10, CostPerServing(10, 0), 1e-9)
}
