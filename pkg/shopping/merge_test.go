package shopping

import (
	"testing"

	"dispensa-backend/domain"
	"dispensa-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSumsSameKey(t *testing.T) {
	items := []domain.MissingItem{{Name: "Pomodori", Quantity: 2, Unit: "kg"}}

	list := Merge(nil, items, "")
	list = Merge(list, items, "")

	require.Len(t, list, 1)
	assert.InDelta(t, 4, list[0].Quantity, 1e-9)
}

func TestMergeAcrossRecipes(t *testing.T) {
	first := []domain.MissingItem{{Name: "Cipolla", Quantity: 1, Unit: "pz"}}
	second := []domain.MissingItem{{Name: "Cipolla", Quantity: 1, Unit: "pz"}}

	list := Merge(nil, first, "Risotto alla Milanese")
	list = Merge(list, second, "Minestrone di verdure")

	require.Len(t, list, 1)
	assert.InDelta(t, 2, list[0].Quantity, 1e-9)
}

func TestMergeNormalizedNameKey(t *testing.T) {
	existing := Merge(nil, []domain.MissingItem{{Name: "Passata di Pomodoro", Quantity: 300, Unit: "ml"}}, "")

	list := Merge(existing, []domain.MissingItem{{Name: "passata pomodoro!", Quantity: 200, Unit: "ml"}}, "")

	require.Len(t, list, 1)
	assert.InDelta(t, 500, list[0].Quantity, 1e-9)
}

func TestMergeDifferentUnitsStayDistinct(t *testing.T) {
	list := Merge(nil, []domain.MissingItem{{Name: "Farina", Quantity: 500, Unit: "g"}}, "")
	list = Merge(list, []domain.MissingItem{{Name: "Farina", Quantity: 1, Unit: "kg"}}, "")

	// Equivalent families are still distinct merge keys; no conversion
	// happens at merge time.
	assert.Len(t, list, 2)
}

func TestMergeNewEntryDefaults(t *testing.T) {
	list := Merge(nil, []domain.MissingItem{{Name: "Guanciale", Quantity: 150, Unit: "g"}}, "Spaghetti alla Carbonara")

	require.Len(t, list, 1)
	entry := list[0]
	assert.False(t, entry.Checked)
	assert.Equal(t, "Spaghetti alla Carbonara", entry.FromRecipe)
	assert.NotEqual(t, entry.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.False(t, entry.DateAdded.IsZero())
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	existing := []entities.ShoppingEntry{{Name: "Latte", Quantity: 1, Unit: "l"}}

	_ = Merge(existing, []domain.MissingItem{{Name: "Latte", Quantity: 2, Unit: "l"}}, "")

	assert.InDelta(t, 1, existing[0].Quantity, 1e-9)
}
