package entities

import (
	"time"

	"github.com/google/uuid"
)

type PantryItem struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name           string     `json:"name"`
	Quantity       float64    `json:"quantity"`
	Unit           string     `json:"unit"`
	Location       string     `json:"location,omitempty"` // "pantry", "fridge", "freezer"
	Category       string     `json:"category,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	ExpirationDate *time.Time `gorm:"type:timestamp" json:"expiration_date,omitempty"`
	PurchaseDate   *time.Time `gorm:"type:timestamp" json:"purchase_date,omitempty"`

	Timestamp
}
