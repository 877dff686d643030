package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackIngredientsMatchesTitleSubstring(t *testing.T) {
	ingredients := FallbackIngredients("Spaghetti alla Carbonara")

	require.Len(t, ingredients, 5)

	names := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		names = append(names, ing.Name)
	}
	assert.Contains(t, names, "Guanciale")
	assert.Contains(t, names, "Pecorino Romano")
}

func TestFallbackIngredientsCaseInsensitive(t *testing.T) {
	assert.NotNil(t, FallbackIngredients("PIZZA MARGHERITA"))
}

func TestFallbackIngredientsUnknownTitle(t *testing.T) {
	assert.Nil(t, FallbackIngredients("Insalata mista"))
}

func TestFallbackIngredientsReturnsCopy(t *testing.T) {
	first := FallbackIngredients("Minestrone di verdure")
	require.NotEmpty(t, first)
	first[0].Amount = 999

	second := FallbackIngredients("Minestrone di verdure")
	assert.NotEqual(t, 999.0, second[0].Amount)
}
