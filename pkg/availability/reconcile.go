package availability

import (
	"math"

	"dispensa-backend/domain"
)

// Tolerance under which a shortfall counts as fully satisfied, so that
// unit round-trips never flag a recipe as missing an ingredient.
const Tolerance = 1e-4

type Reconciliation struct {
	Available float64
	Missing   float64
}

// Reconcile sums the matching pantry stock for one required ingredient,
// converted into the required unit, and computes the shortfall. Stock in
// an unrelated unit family contributes nothing.
func Reconcile(stock []domain.StockItem, ingredientName string, requiredQty float64, requiredUnit string) Reconciliation {
	requiredQty = sanitize(requiredQty)

	var available float64
	for _, item := range stock {
		if !Matches(item.Name, ingredientName) {
			continue
		}
		qty, ok := Convert(item.Quantity, item.Unit, requiredUnit)
		if !ok {
			continue
		}
		available += qty
	}

	missing := requiredQty - available
	if missing <= Tolerance {
		missing = 0
	}
	return Reconciliation{Available: available, Missing: missing}
}

// Result is the recipe-level aggregation over every non-optional
// ingredient of a recipe.
type Result struct {
	Percent            int
	MissingIngredients []domain.RecipeIngredient
	Statuses           []domain.IngredientStatus
}

// Compute runs the reconciler over a recipe's ingredient list against the
// given pantry snapshot, scaled linearly to targetServings. Optional
// ingredients are reported in Statuses but never counted. With no
// structured ingredients at all the recipe falls back to its precomputed
// staticPercent when present, otherwise it is vacuously fully available.
func Compute(ingredients []domain.RecipeIngredient, baseServings, targetServings int, stock []domain.StockItem, staticPercent *int) Result {
	if len(ingredients) == 0 {
		percent := 100
		if staticPercent != nil {
			percent = clampPercent(*staticPercent)
		}
		return Result{Percent: percent, MissingIngredients: []domain.RecipeIngredient{}, Statuses: []domain.IngredientStatus{}}
	}

	if baseServings <= 0 {
		baseServings = 1
	}
	if targetServings <= 0 {
		targetServings = baseServings
	}
	scale := float64(targetServings) / float64(baseServings)

	considered, present := 0, 0
	missing := make([]domain.RecipeIngredient, 0)
	statuses := make([]domain.IngredientStatus, 0, len(ingredients))

	for _, ing := range ingredients {
		scaled := sanitize(ing.Amount) * scale
		rec := Reconcile(stock, DisplayName(ing), scaled, ing.Unit)

		status := domain.IngredientStatus{
			RecipeIngredient: ing,
			Available:        rec.Available,
			Missing:          rec.Missing,
			Satisfied:        rec.Missing == 0,
		}
		status.Amount = scaled
		statuses = append(statuses, status)

		if ing.Optional {
			continue
		}
		considered++
		if rec.Missing == 0 {
			present++
		} else {
			scaledIng := ing
			scaledIng.Amount = scaled
			missing = append(missing, scaledIng)
		}
	}

	percent := 100
	if considered > 0 {
		percent = int(math.Round(float64(present) / float64(considered) * 100))
	}
	return Result{Percent: percent, MissingIngredients: missing, Statuses: statuses}
}

// DisplayName prefers the human label and falls back to the canonical key
// for catalog entries that carry only one of the two.
func DisplayName(ing domain.RecipeIngredient) string {
	if ing.Name != "" {
		return ing.Name
	}
	return ing.Key
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
