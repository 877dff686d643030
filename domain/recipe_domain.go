package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes       = "success get recipes"
	MessageSuccessGetRecipeDetail  = "success get recipe detail"
	MessageSuccessGetMissingItems  = "success get missing items"
	MessageSuccessImportCatalog    = "catalog imported successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedGetMissingItems = "failed to get missing items"
	MessageFailedImportCatalog   = "failed to import catalog"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrCatalogUnavailable = errors.New("recipe catalog unavailable")
)

type (
	// RecipeIngredient is one requirement line of a recipe, scaled for the
	// recipe's base serving count. Some catalog entries carry only a key,
	// some only a display name.
	RecipeIngredient struct {
		Name     string  `json:"name"`
		Key      string  `json:"key,omitempty"`
		Amount   float64 `json:"amount"`
		Unit     string  `json:"unit"`
		Optional bool    `json:"optional,omitempty"`
	}

	NutritionFacts struct {
		Calories      int `json:"calories"`
		Protein       int `json:"protein"`
		Carbohydrates int `json:"carbohydrates"`
		Fat           int `json:"fat"`
	}

	Recipe struct {
		ID                  string    `json:"id"`
		Title               string    `json:"title"`
		Description         string    `json:"description,omitempty"`
		ImageURL            string    `json:"image_url,omitempty"`
		Servings            int       `json:"servings"`
		CookingTimeMinutes  int       `json:"cooking_time_minutes"`
		Difficulty          string    `json:"difficulty,omitempty"`
		AvailabilityPercent int       `json:"availability_percent"`
		CreatedAt           time.Time `json:"created_at"`
	}

	// IngredientStatus pairs a requirement with its reconciliation against
	// the current pantry snapshot.
	IngredientStatus struct {
		RecipeIngredient
		Available float64 `json:"available"`
		Missing   float64 `json:"missing"`
		Satisfied bool    `json:"satisfied"`
	}

	RecipeDetail struct {
		Recipe
		TargetServings     int                `json:"target_servings"`
		Ingredients        []IngredientStatus `json:"ingredients"`
		MissingItems       []MissingItem      `json:"missing_items"`
		NutritionFacts     NutritionFacts     `json:"nutrition_facts"`
		CaloriesPerServing int                `json:"calories_per_serving"`
		CostPerServing     float64            `json:"cost_per_serving"`
		EstimatedCost      float64            `json:"estimated_cost"`
	}

	// MissingItem is a shortfall expressed in the ingredient's display unit,
	// ready to become a shopping-list entry.
	MissingItem struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}

	RecipeListResponse struct {
		Recipes []Recipe `json:"recipes"`
		Total   int64    `json:"total"`
	}

	ImportCatalogResponse struct {
		Imported int    `json:"imported"`
		Source   string `json:"source"`
	}
)
