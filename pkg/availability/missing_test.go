package availability

import (
	"testing"

	"dispensa-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectMissingEmptyPantry(t *testing.T) {
	ings := []domain.RecipeIngredient{
		{Name: "Cipolla", Amount: 1, Unit: "pz"},
		{Name: "Farina", Amount: 300, Unit: "g"},
		{Name: "Basilico", Amount: 10, Unit: "g", Optional: true},
	}

	items := CollectMissing(ings, 4, 4, nil)

	require.Len(t, items, 2)
	assert.Equal(t, domain.MissingItem{Name: "Cipolla", Quantity: 1, Unit: "pz"}, items[0])
	assert.Equal(t, domain.MissingItem{Name: "Farina", Quantity: 300, Unit: "g"}, items[1])
}

func TestCollectMissingPartialStock(t *testing.T) {
	stock := []domain.StockItem{{Name: "Farina 00", Quantity: 100, Unit: "g"}}
	ings := []domain.RecipeIngredient{{Name: "Farina", Amount: 0.3, Unit: "kg"}}

	items := CollectMissing(ings, 1, 1, stock)

	require.Len(t, items, 1)
	assert.Equal(t, "kg", items[0].Unit)
	assert.InDelta(t, 0.2, items[0].Quantity, 1e-9)
}

func TestCollectMissingRoundsDisplayUnits(t *testing.T) {
	stock := []domain.StockItem{{Name: "Latte", Quantity: 123.4, Unit: "ml"}}
	ings := []domain.RecipeIngredient{{Name: "Latte", Amount: 500, Unit: "ml"}}

	items := CollectMissing(ings, 1, 1, stock)

	require.Len(t, items, 1)
	assert.Equal(t, 377.0, items[0].Quantity)
}

func TestCollectMissingShortfallSurvivesRounding(t *testing.T) {
	stock := []domain.StockItem{{Name: "Farina", Quantity: 299.6, Unit: "g"}}
	ings := []domain.RecipeIngredient{{Name: "Farina", Amount: 300, Unit: "g"}}

	items := CollectMissing(ings, 1, 1, stock)

	require.Len(t, items, 1)
	assert.Equal(t, 1.0, items[0].Quantity)
}

func TestCollectMissingFreshListEachCall(t *testing.T) {
	ings := []domain.RecipeIngredient{{Name: "Cipolla", Amount: 1, Unit: "pz"}}

	first := CollectMissing(ings, 1, 1, nil)
	second := CollectMissing(ings, 1, 1, nil)

	require.Len(t, first, 1)
	first[0].Quantity = 99
	assert.Equal(t, 1.0, second[0].Quantity)
}

func TestCollectMissingUsesKeyWhenNameAbsent(t *testing.T) {
	ings := []domain.RecipeIngredient{{Key: "guanciale", Amount: 150, Unit: "g"}}

	items := CollectMissing(ings, 1, 1, nil)

	require.Len(t, items, 1)
	assert.Equal(t, "guanciale", items[0].Name)
}
