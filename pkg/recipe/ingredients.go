package recipe

import (
	"encoding/json"

	"dispensa-backend/domain"
	"dispensa-backend/entities"
)

// IngredientsOf decodes the structured ingredient list of a recipe row,
// falling back to the title-keyword list when the row carries none.
// Returns an empty slice when neither source yields anything, so the
// availability engine can apply its own vacuous/static-percent rules.
func IngredientsOf(recipe *entities.Recipe) []domain.RecipeIngredient {
	if recipe == nil {
		return []domain.RecipeIngredient{}
	}

	if recipe.Ingredients != "" {
		var ingredients []domain.RecipeIngredient
		if err := json.Unmarshal([]byte(recipe.Ingredients), &ingredients); err == nil && len(ingredients) > 0 {
			return ingredients
		}
	}

	if fallback := FallbackIngredients(recipe.Title); fallback != nil {
		return fallback
	}
	return []domain.RecipeIngredient{}
}

func nutritionOf(recipe *entities.Recipe) domain.NutritionFacts {
	var facts domain.NutritionFacts
	if recipe.NutritionFacts != "" {
		_ = json.Unmarshal([]byte(recipe.NutritionFacts), &facts)
	}
	return facts
}
