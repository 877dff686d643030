package availability

import (
	"testing"

	"dispensa-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileAliasMatch(t *testing.T) {
	stock := []domain.StockItem{{Name: "Pomodori", Quantity: 500, Unit: "g"}}

	rec := Reconcile(stock, "Pomodoro", 300, "g")

	assert.InDelta(t, 500, rec.Available, 1e-9)
	assert.Zero(t, rec.Missing)
}

func TestReconcileCrossUnitConversion(t *testing.T) {
	stock := []domain.StockItem{{Name: "Farina", Quantity: 1, Unit: "kg"}}

	rec := Reconcile(stock, "Farina 00", 300, "g")

	assert.InDelta(t, 1000, rec.Available, 1e-9)
	assert.Zero(t, rec.Missing)
}

func TestReconcileShortfallNeverNegative(t *testing.T) {
	stocks := [][]domain.StockItem{
		nil,
		{{Name: "Pomodori", Quantity: 10, Unit: "kg"}},
		{{Name: "Pomodori", Quantity: 10, Unit: "pz"}},
		{{Name: "Latte", Quantity: 2, Unit: "l"}},
	}
	for _, stock := range stocks {
		rec := Reconcile(stock, "Pomodoro", 300, "g")
		assert.GreaterOrEqual(t, rec.Missing, 0.0)
	}
}

func TestReconcileUnitFamilyMismatchContributesZero(t *testing.T) {
	stock := []domain.StockItem{{Name: "Uova", Quantity: 6, Unit: "pz"}}

	rec := Reconcile(stock, "Uova", 0.3, "kg")

	assert.Zero(t, rec.Available)
	assert.InDelta(t, 0.3, rec.Missing, 1e-9)
}

func TestReconcileToleranceRounding(t *testing.T) {
	stock := []domain.StockItem{{Name: "Farina", Quantity: 99.99999, Unit: "g"}}

	rec := Reconcile(stock, "Farina", 100, "g")

	assert.Zero(t, rec.Missing)
}

func TestReconcileMalformedRequirement(t *testing.T) {
	rec := Reconcile(nil, "Farina", -5, "g")
	assert.Zero(t, rec.Missing)
}

func ingredients(names ...string) []domain.RecipeIngredient {
	out := make([]domain.RecipeIngredient, 0, len(names))
	for _, n := range names {
		out = append(out, domain.RecipeIngredient{Name: n, Amount: 100, Unit: "g"})
	}
	return out
}

func TestComputeEmptyPantry(t *testing.T) {
	ings := ingredients("Farina", "Uova", "Latte", "Zucchero")

	res := Compute(ings, 4, 4, nil, nil)

	assert.Equal(t, 0, res.Percent)
	assert.Len(t, res.MissingIngredients, 4)
}

func TestComputePercentBounds(t *testing.T) {
	stock := []domain.StockItem{{Name: "Farina", Quantity: 10, Unit: "kg"}}
	ings := ingredients("Farina", "Uova", "Latte")

	res := Compute(ings, 4, 4, stock, nil)

	assert.GreaterOrEqual(t, res.Percent, 0)
	assert.LessOrEqual(t, res.Percent, 100)
	assert.Equal(t, 33, res.Percent)
}

func TestComputeAllOptional(t *testing.T) {
	ings := []domain.RecipeIngredient{
		{Name: "Basilico", Amount: 10, Unit: "g", Optional: true},
		{Name: "Pepe", Amount: 2, Unit: "g", Optional: true},
	}

	res := Compute(ings, 2, 2, nil, nil)

	assert.Equal(t, 100, res.Percent)
	assert.Empty(t, res.MissingIngredients)
}

func TestComputeOptionalIgnoredAmongOthers(t *testing.T) {
	stock := []domain.StockItem{
		{Name: "Farina", Quantity: 1, Unit: "kg"},
		{Name: "Uova", Quantity: 6, Unit: "uova"},
	}
	ings := []domain.RecipeIngredient{
		{Name: "Farina", Amount: 300, Unit: "g"},
		{Name: "Uova", Amount: 2, Unit: "pz"},
		{Name: "Basilico", Amount: 10, Unit: "g", Optional: true},
	}

	res := Compute(ings, 4, 4, stock, nil)

	assert.Equal(t, 100, res.Percent)
	assert.Empty(t, res.MissingIngredients)
}

func TestComputeNoIngredientsVacuouslyAvailable(t *testing.T) {
	res := Compute(nil, 4, 4, nil, nil)
	assert.Equal(t, 100, res.Percent)
	assert.Empty(t, res.MissingIngredients)
}

func TestComputeNoIngredientsStaticFallback(t *testing.T) {
	static := 65
	res := Compute(nil, 4, 4, nil, &static)
	assert.Equal(t, 65, res.Percent)
}

func TestComputeStaticFallbackIgnoredWhenIngredientsPresent(t *testing.T) {
	static := 10
	ings := []domain.RecipeIngredient{
		{Name: "Basilico", Amount: 10, Unit: "g", Optional: true},
	}

	// Present-but-all-optional must take the vacuous 100, not the fallback.
	res := Compute(ings, 2, 2, nil, &static)
	assert.Equal(t, 100, res.Percent)
}

func TestComputeServingScaling(t *testing.T) {
	stock := []domain.StockItem{{Name: "Riso", Quantity: 400, Unit: "g"}}
	ings := []domain.RecipeIngredient{{Name: "Riso", Amount: 320, Unit: "g"}}

	res := Compute(ings, 4, 8, stock, nil)

	require.Len(t, res.MissingIngredients, 1)
	assert.InDelta(t, 640, res.MissingIngredients[0].Amount, 1e-9)
	assert.Equal(t, 0, res.Percent)
}

func TestComputeTinyRequirementWithinTolerance(t *testing.T) {
	ings := []domain.RecipeIngredient{{Name: "Zafferano", Amount: 0.0001, Unit: "kg"}}

	res := Compute(ings, 1, 1, nil, nil)

	assert.Equal(t, 100, res.Percent)
	assert.Empty(t, res.MissingIngredients)
}
