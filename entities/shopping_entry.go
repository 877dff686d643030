package entities

import (
	"time"

	"github.com/google/uuid"
)

type ShoppingEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	Checked    bool      `json:"checked"`
	FromRecipe string    `json:"from_recipe,omitempty"`
	Price      *float64  `json:"price,omitempty"`
	DateAdded  time.Time `gorm:"type:timestamp" json:"date_added"`

	Timestamp
}
