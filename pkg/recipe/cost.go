package recipe

import (
	"math"

	"dispensa-backend/domain"
	"dispensa-backend/pkg/availability"
)

// Rough market prices in EUR per canonical base unit, keyed by ingredient
// root. Ordered so names touching more than one alias family price the
// same on every run; anything unlisted falls back to the family default.
var ingredientPrices = []struct {
	root    string
	perBase float64
}{
	{"guanciale", 18},
	{"pecorino", 15},
	{"parmigiano", 16},
	{"mozzarella", 9},
	{"macinato", 10},
	{"pollo", 8},
	{"riso", 3},
	{"pasta", 2},
	{"farina", 1.2},
	{"pomodoro", 2.5},
	{"latte", 1.4},
	{"olio", 8},
	{"burro", 10},
	{"uova", 0.4},
	{"cipolla", 0.5},
	{"aglio", 0.3},
	{"brodo", 1},
}

var defaultPricePerBase = map[availability.Base]float64{
	availability.BaseMass:   5,
	availability.BaseVolume: 2.5,
	availability.BaseCount:  0.8,
}

// EstimateCost rolls ingredient quantities up into an estimated recipe
// cost, converting each requirement into its canonical base first so
// gram- and kilogram-denominated lines price identically.
func EstimateCost(ingredients []domain.RecipeIngredient) float64 {
	var total float64
	for _, ing := range ingredients {
		baseQty, base := availability.ToBase(ing.Amount, ing.Unit)
		total += baseQty * priceFor(availability.DisplayName(ing), base)
	}
	return math.Round(total*100) / 100
}

// CostPerServing divides an estimated cost across a serving count.
func CostPerServing(total float64, servings int) float64 {
	if servings <= 0 {
		servings = 1
	}
	return math.Round(total/float64(servings)*100) / 100
}

func priceFor(name string, base availability.Base) float64 {
	for _, entry := range ingredientPrices {
		if availability.Matches(name, entry.root) {
			return entry.perBase
		}
	}
	return defaultPricePerBase[base]
}
