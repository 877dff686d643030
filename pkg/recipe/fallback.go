package recipe

import (
	"strings"

	"dispensa-backend/domain"
)

// titleFallbacks derives an ingredient list for demo catalog entries that
// carry none, matched by substring on the lowered recipe title. This is a
// stopgap for unstructured data, deliberately isolated here so it can be
// dropped once every catalog entry ships structured ingredients.
var titleFallbacks = map[string][]domain.RecipeIngredient{
	"carbonara": {
		{Name: "Spaghetti", Amount: 400, Unit: "g"},
		{Name: "Guanciale", Amount: 150, Unit: "g"},
		{Name: "Uova", Amount: 4, Unit: "pz"},
		{Name: "Pecorino Romano", Amount: 100, Unit: "g"},
		{Name: "Pepe nero", Amount: 5, Unit: "g", Optional: true},
	},
	"amatriciana": {
		{Name: "Bucatini", Amount: 400, Unit: "g"},
		{Name: "Guanciale", Amount: 150, Unit: "g"},
		{Name: "Pomodori pelati", Amount: 400, Unit: "g"},
		{Name: "Pecorino Romano", Amount: 80, Unit: "g"},
	},
	"ragù": {
		{Name: "Carne macinata", Amount: 500, Unit: "g"},
		{Name: "Passata di pomodoro", Amount: 700, Unit: "ml"},
		{Name: "Cipolla", Amount: 1, Unit: "pz"},
		{Name: "Carota", Amount: 1, Unit: "pz"},
		{Name: "Sedano", Amount: 1, Unit: "pz"},
		{Name: "Vino rosso", Amount: 100, Unit: "ml", Optional: true},
	},
	"risotto": {
		{Name: "Riso Carnaroli", Amount: 320, Unit: "g"},
		{Name: "Brodo vegetale", Amount: 1, Unit: "l"},
		{Name: "Cipolla", Amount: 1, Unit: "pz"},
		{Name: "Burro", Amount: 50, Unit: "g"},
		{Name: "Parmigiano Reggiano", Amount: 80, Unit: "g"},
		{Name: "Vino bianco", Amount: 100, Unit: "ml", Optional: true},
	},
	"margherita": {
		{Name: "Farina 00", Amount: 500, Unit: "g"},
		{Name: "Passata di pomodoro", Amount: 300, Unit: "ml"},
		{Name: "Mozzarella", Amount: 250, Unit: "g"},
		{Name: "Basilico", Amount: 10, Unit: "g", Optional: true},
		{Name: "Olio extravergine di oliva", Amount: 30, Unit: "ml"},
	},
	"lasagne": {
		{Name: "Sfoglia per lasagne", Amount: 250, Unit: "g"},
		{Name: "Carne macinata", Amount: 400, Unit: "g"},
		{Name: "Passata di pomodoro", Amount: 500, Unit: "ml"},
		{Name: "Latte", Amount: 500, Unit: "ml"},
		{Name: "Burro", Amount: 50, Unit: "g"},
		{Name: "Farina", Amount: 50, Unit: "g"},
		{Name: "Parmigiano Reggiano", Amount: 100, Unit: "g"},
	},
	"minestrone": {
		{Name: "Patate", Amount: 2, Unit: "pz"},
		{Name: "Carote", Amount: 2, Unit: "pz"},
		{Name: "Zucchine", Amount: 2, Unit: "pz"},
		{Name: "Fagioli", Amount: 200, Unit: "g"},
		{Name: "Cipolla", Amount: 1, Unit: "pz"},
		{Name: "Brodo vegetale", Amount: 1.5, Unit: "l"},
	},
	"cotoletta": {
		{Name: "Petto di pollo", Amount: 400, Unit: "g"},
		{Name: "Uova", Amount: 2, Unit: "pz"},
		{Name: "Pangrattato", Amount: 150, Unit: "g"},
		{Name: "Burro", Amount: 80, Unit: "g"},
	},
}

// FallbackIngredients returns the keyword-derived ingredient list for a
// recipe title, or nil when no known dish matches.
func FallbackIngredients(title string) []domain.RecipeIngredient {
	lowered := strings.ToLower(title)
	for keyword, ingredients := range titleFallbacks {
		if strings.Contains(lowered, keyword) {
			out := make([]domain.RecipeIngredient, len(ingredients))
			copy(out, ingredients)
			return out
		}
	}
	return nil
}
