package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	ImageURL           string    `json:"image_url,omitempty"`
	Servings           int       `json:"servings"`
	CookingTimeMinutes int       `json:"cooking_time_minutes"`
	Difficulty         string    `json:"difficulty"`
	Ingredients        string    `json:"ingredients" gorm:"type:text"` // JSON array of domain.RecipeIngredient
	NutritionFacts     string    `json:"nutrition_facts" gorm:"type:text"`
	EstimatedCost      float64   `json:"estimated_cost"`

	// IngredientAvailability is a precomputed percentage carried by some
	// catalog entries that lack a structured ingredient list. It is only
	// consulted when Ingredients is empty.
	IngredientAvailability *int `json:"ingredient_availability,omitempty"`

	Timestamp
}
