package availability

import (
	"dispensa-backend/domain"
)

// CollectMissing re-runs reconciliation per non-optional ingredient and
// emits the positive shortfalls in the ingredient's display unit, rounded
// for display. Returns a fresh list on every call.
func CollectMissing(ingredients []domain.RecipeIngredient, baseServings, targetServings int, stock []domain.StockItem) []domain.MissingItem {
	if baseServings <= 0 {
		baseServings = 1
	}
	if targetServings <= 0 {
		targetServings = baseServings
	}
	scale := float64(targetServings) / float64(baseServings)

	items := make([]domain.MissingItem, 0)
	for _, ing := range ingredients {
		if ing.Optional {
			continue
		}
		scaled := sanitize(ing.Amount) * scale
		rec := Reconcile(stock, DisplayName(ing), scaled, ing.Unit)
		if rec.Missing == 0 {
			continue
		}

		qty := roundForDisplay(rec.Missing, ing.Unit)
		if qty == 0 {
			// A real shortfall must survive display rounding.
			qty = displayStep(ing.Unit)
		}
		items = append(items, domain.MissingItem{
			Name:     DisplayName(ing),
			Quantity: qty,
			Unit:     ing.Unit,
		})
	}
	return items
}

func displayStep(unit string) float64 {
	switch normalizeUnit(unit) {
	case "kg", "l", "lt":
		return 0.1
	default:
		return 1
	}
}
