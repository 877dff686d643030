package recipe

import (
	"testing"

	"dispensa-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientsOfStructuredList(t *testing.T) {
	row := &entities.Recipe{
		Title:       "Pizza Margherita",
		Ingredients: `[{"name":"Farina 00","amount":500,"unit":"g"}]`,
	}

	ingredients := IngredientsOf(row)

	require.Len(t, ingredients, 1)
	assert.Equal(t, "Farina 00", ingredients[0].Name)
}

func TestIngredientsOfFallsBackToTitle(t *testing.T) {
	row := &entities.Recipe{Title: "Risotto alla Milanese"}

	ingredients := IngredientsOf(row)

	assert.NotEmpty(t, ingredients)
}

func TestIngredientsOfMalformedJSONFallsBack(t *testing.T) {
	row := &entities.Recipe{
		Title:       "Spaghetti alla Carbonara",
		Ingredients: `{"not":"a list"`,
	}

	assert.NotEmpty(t, IngredientsOf(row))
}

func TestIngredientsOfNothingKnown(t *testing.T) {
	row := &entities.Recipe{Title: "Insalata mista"}

	ingredients := IngredientsOf(row)

	require.NotNil(t, ingredients)
	assert.Empty(t, ingredients)
}

func TestNutritionOfMissing(t *testing.T) {
	assert.Zero(t, nutritionOf(&entities.Recipe{}).Calories)
}
