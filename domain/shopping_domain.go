package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetShoppingList   = "shopping list retrieved successfully"
	MessageSuccessAddShoppingEntry  = "shopping entry added successfully"
	MessageSuccessEnqueueMissing    = "missing ingredients added to shopping list"
	MessageSuccessUpdateEntry       = "shopping entry updated successfully"
	MessageSuccessToggleEntry       = "shopping entry toggled successfully"
	MessageSuccessPurchaseEntry     = "shopping entry marked as purchased"
	MessageSuccessDeleteEntry       = "shopping entry deleted successfully"
	MessageSuccessClearCompleted    = "completed entries cleared successfully"

	MessageFailedGetShoppingList  = "failed to retrieve shopping list"
	MessageFailedAddShoppingEntry = "failed to add shopping entry"
	MessageFailedEnqueueMissing   = "failed to add missing ingredients"
	MessageFailedUpdateEntry      = "failed to update shopping entry"
	MessageFailedToggleEntry      = "failed to toggle shopping entry"
	MessageFailedPurchaseEntry    = "failed to mark shopping entry as purchased"
	MessageFailedDeleteEntry      = "failed to delete shopping entry"
	MessageFailedClearCompleted   = "failed to clear completed entries"

	ErrShoppingEntryNotFound = errors.New("shopping entry not found")
	ErrNothingMissing        = errors.New("recipe has no missing ingredients")
)

type (
	AddShoppingEntryRequest struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity" validate:"min=0"`
		Unit     string  `json:"unit" validate:"required"`
	}

	EnqueueMissingRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Servings int    `json:"servings" validate:"omitempty,min=1"`
	}

	UpdateShoppingEntryRequest struct {
		Quantity *float64 `json:"quantity" validate:"omitempty,min=0"`
		Price    *float64 `json:"price" validate:"omitempty,min=0"`
	}

	ShoppingEntryResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Quantity   float64   `json:"quantity"`
		Unit       string    `json:"unit"`
		Checked    bool      `json:"checked"`
		FromRecipe string    `json:"from_recipe,omitempty"`
		Price      *float64  `json:"price,omitempty"`
		DateAdded  time.Time `json:"date_added"`
	}

	PurchaseEntryRequest struct {
		Location string `json:"location" validate:"omitempty,oneof=pantry fridge freezer"`
	}
)
