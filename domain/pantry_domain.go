package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"
	MessageSuccessGetPantryItems   = "pantry items retrieved successfully"
	MessageSuccessBulkMove         = "pantry items moved successfully"
	MessageSuccessMarkUsed         = "pantry items marked as used"
	MessageSuccessBulkDelete       = "pantry items deleted successfully"
	MessageSuccessExpiryDigest     = "expiry digest sent successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedDeletePantryItem = "failed to delete pantry item"
	MessageFailedGetPantryItems   = "failed to retrieve pantry items"
	MessageFailedBulkMove         = "failed to move pantry items"
	MessageFailedMarkUsed         = "failed to mark pantry items as used"
	MessageFailedBulkDelete       = "failed to delete pantry items"
	MessageFailedExpiryDigest     = "failed to send expiry digest"

	ErrPantryItemNotFound = errors.New("pantry item not found")
	ErrInvalidLocation    = errors.New("location must be pantry, fridge or freezer")
	ErrInvalidDate        = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrNegativeQuantity   = errors.New("quantity must not be negative")
)

type (
	AddPantryItemRequest struct {
		Name           string  `json:"name" validate:"required"`
		Quantity       float64 `json:"quantity" validate:"min=0"`
		Unit           string  `json:"unit" validate:"required"`
		Location       string  `json:"location" validate:"omitempty,oneof=pantry fridge freezer"`
		Category       string  `json:"category" validate:"omitempty"`
		Notes          string  `json:"notes" validate:"omitempty"`
		ExpirationDate string  `json:"expiration_date" validate:"omitempty"`
		PurchaseDate   string  `json:"purchase_date" validate:"omitempty"`
	}

	UpdatePantryItemRequest struct {
		Name           string   `json:"name" validate:"omitempty"`
		Quantity       *float64 `json:"quantity" validate:"omitempty,min=0"`
		Unit           string   `json:"unit" validate:"omitempty"`
		Location       string   `json:"location" validate:"omitempty,oneof=pantry fridge freezer"`
		Category       string   `json:"category" validate:"omitempty"`
		Notes          string   `json:"notes" validate:"omitempty"`
		ExpirationDate string   `json:"expiration_date" validate:"omitempty"`
		PurchaseDate   string   `json:"purchase_date" validate:"omitempty"`
	}

	PantryItemResponse struct {
		ID             string     `json:"id"`
		Name           string     `json:"name"`
		Quantity       float64    `json:"quantity"`
		Unit           string     `json:"unit"`
		Location       string     `json:"location,omitempty"`
		Category       string     `json:"category,omitempty"`
		Notes          string     `json:"notes,omitempty"`
		ExpirationDate *time.Time `json:"expiration_date,omitempty"`
		PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
		CreatedAt      time.Time  `json:"created_at"`
	}

	BulkMoveRequest struct {
		IDs      []string `json:"ids" validate:"required,min=1,dive,uuid"`
		Location string   `json:"location" validate:"required,oneof=pantry fridge freezer"`
	}

	MarkUsedRequest struct {
		IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
	}

	BulkDeleteRequest struct {
		IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
	}

	ExpiryDigestRequest struct {
		Email      string `json:"email" validate:"required,email"`
		WithinDays int    `json:"within_days" validate:"omitempty,min=1"`
	}

	// StockItem is the pantry snapshot row consumed by the availability engine.
	// Services map entities to this shape so the engine never touches storage.
	StockItem struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}
)
