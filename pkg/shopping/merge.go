package shopping

import (
	"strings"
	"time"

	"dispensa-backend/domain"
	"dispensa-backend/entities"
	"dispensa-backend/pkg/availability"

	"github.com/google/uuid"
)

// mergeKey identifies a purchasable item: normalized name plus the unit
// token as written. Textually different but equivalent units stay
// distinct entries on purpose; no conversion happens at merge time.
func mergeKey(name, unit string) string {
	return availability.Key(name) + "|" + strings.ToLower(strings.TrimSpace(unit))
}

// Merge appends missing items to a shopping list, summing quantities into
// an existing entry when the merge key already appears and creating a
// fresh unchecked entry otherwise. Repeated merges of the same items sum
// again: the list models accumulated intent to buy, not a set.
func Merge(existing []entities.ShoppingEntry, items []domain.MissingItem, fromRecipe string) []entities.ShoppingEntry {
	merged := make([]entities.ShoppingEntry, len(existing))
	copy(merged, existing)

	for _, item := range items {
		key := mergeKey(item.Name, item.Unit)

		found := false
		for i := range merged {
			if mergeKey(merged[i].Name, merged[i].Unit) == key {
				merged[i].Quantity += item.Quantity
				found = true
				break
			}
		}
		if found {
			continue
		}

		merged = append(merged, entities.ShoppingEntry{
			ID:         uuid.New(),
			Name:       item.Name,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
			Checked:    false,
			FromRecipe: fromRecipe,
			DateAdded:  time.Now(),
		})
	}

	return merged
}
