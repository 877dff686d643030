package shopping

import (
	"context"
	"errors"
	"strings"
	"time"

	"dispensa-backend/domain"
	"dispensa-backend/entities"
	"dispensa-backend/pkg/availability"
	"dispensa-backend/pkg/pantry"
	"dispensa-backend/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingService interface {
		GetShoppingList(ctx context.Context) ([]domain.ShoppingEntryResponse, error)
		AddEntry(ctx context.Context, req domain.AddShoppingEntryRequest) ([]domain.ShoppingEntryResponse, error)
		EnqueueMissing(ctx context.Context, req domain.EnqueueMissingRequest) ([]domain.ShoppingEntryResponse, error)
		UpdateEntry(ctx context.Context, id string, req domain.UpdateShoppingEntryRequest) error
		ToggleEntry(ctx context.Context, id string) (bool, error)
		PurchaseEntry(ctx context.Context, id string, req domain.PurchaseEntryRequest) (domain.PantryItemResponse, error)
		DeleteEntry(ctx context.Context, id string) error
		ClearCompleted(ctx context.Context) (int64, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		recipeRepository   recipe.RecipeRepository
		pantryRepository   pantry.PantryRepository
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, recipeRepository recipe.RecipeRepository, pantryRepository pantry.PantryRepository) ShoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		recipeRepository:   recipeRepository,
		pantryRepository:   pantryRepository,
	}
}

func toEntryResponse(entry entities.ShoppingEntry) domain.ShoppingEntryResponse {
	return domain.ShoppingEntryResponse{
		ID:         entry.ID.String(),
		Name:       entry.Name,
		Quantity:   entry.Quantity,
		Unit:       entry.Unit,
		Checked:    entry.Checked,
		FromRecipe: entry.FromRecipe,
		Price:      entry.Price,
		DateAdded:  entry.DateAdded,
	}
}

func toEntryResponses(entries []entities.ShoppingEntry) []domain.ShoppingEntryResponse {
	out := make([]domain.ShoppingEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toEntryResponse(entry))
	}
	return out
}

func (s *shoppingService) GetShoppingList(ctx context.Context) ([]domain.ShoppingEntryResponse, error) {
	entries, err := s.shoppingRepository.GetEntries(ctx)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}

// AddEntry routes manual adds through the same merge queue as recipe
// shortfalls, so a manual "Pomodori 1 kg" tops up an existing entry.
func (s *shoppingService) AddEntry(ctx context.Context, req domain.AddShoppingEntryRequest) ([]domain.ShoppingEntryResponse, error) {
	entries, err := s.shoppingRepository.GetEntries(ctx)
	if err != nil {
		return nil, err
	}

	merged := Merge(entries, []domain.MissingItem{{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	}}, "")

	if err := s.shoppingRepository.SaveEntries(ctx, merged); err != nil {
		return nil, err
	}
	return toEntryResponses(merged), nil
}

func (s *shoppingService) EnqueueMissing(ctx context.Context, req domain.EnqueueMissingRequest) ([]domain.ShoppingEntryResponse, error) {
	recipeRow, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	pantryItems, err := s.pantryRepository.GetAllItems(ctx)
	if err != nil {
		return nil, err
	}
	stock := make([]domain.StockItem, 0, len(pantryItems))
	for _, item := range pantryItems {
		stock = append(stock, domain.StockItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
		})
	}

	servings := req.Servings
	if servings <= 0 {
		servings = recipeRow.Servings
	}

	missing := availability.CollectMissing(recipe.IngredientsOf(recipeRow), recipeRow.Servings, servings, stock)
	if len(missing) == 0 {
		return nil, domain.ErrNothingMissing
	}

	entries, err := s.shoppingRepository.GetEntries(ctx)
	if err != nil {
		return nil, err
	}

	merged := Merge(entries, missing, recipeRow.Title)
	if err := s.shoppingRepository.SaveEntries(ctx, merged); err != nil {
		return nil, err
	}
	return toEntryResponses(merged), nil
}

func (s *shoppingService) UpdateEntry(ctx context.Context, id string, req domain.UpdateShoppingEntryRequest) error {
	entry, err := s.shoppingRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingEntryNotFound
		}
		return err
	}

	if req.Quantity != nil {
		entry.Quantity = *req.Quantity
	}
	if req.Price != nil {
		entry.Price = req.Price
	}

	return s.shoppingRepository.SaveEntry(ctx, entry)
}

func (s *shoppingService) ToggleEntry(ctx context.Context, id string) (bool, error) {
	entry, err := s.shoppingRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrShoppingEntryNotFound
		}
		return false, err
	}

	entry.Checked = !entry.Checked
	if err := s.shoppingRepository.SaveEntry(ctx, entry); err != nil {
		return false, err
	}
	return entry.Checked, nil
}

// PurchaseEntry checks the entry off and upserts its quantity into the
// pantry: an existing item with the same normalized name and unit is
// topped up, otherwise a new pantry item is created.
func (s *shoppingService) PurchaseEntry(ctx context.Context, id string, req domain.PurchaseEntryRequest) (domain.PantryItemResponse, error) {
	entry, err := s.shoppingRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrShoppingEntryNotFound
		}
		return domain.PantryItemResponse{}, err
	}

	entry.Checked = true
	if err := s.shoppingRepository.SaveEntry(ctx, entry); err != nil {
		return domain.PantryItemResponse{}, err
	}

	location := req.Location
	if location == "" {
		location = domain.LocationPantry
	}

	items, err := s.pantryRepository.GetAllItems(ctx)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	entryKey := availability.Key(entry.Name)
	entryUnit := strings.ToLower(strings.TrimSpace(entry.Unit))
	for _, item := range items {
		if availability.Key(item.Name) != entryKey || strings.ToLower(strings.TrimSpace(item.Unit)) != entryUnit {
			continue
		}
		item.Quantity += entry.Quantity
		if err := s.pantryRepository.UpdateItem(ctx, item); err != nil {
			return domain.PantryItemResponse{}, err
		}
		return pantryResponse(item), nil
	}

	now := time.Now()
	item := &entities.PantryItem{
		ID:           uuid.New(),
		Name:         entry.Name,
		Quantity:     entry.Quantity,
		Unit:         entry.Unit,
		Location:     location,
		PurchaseDate: &now,
	}
	if err := s.pantryRepository.AddItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}
	return pantryResponse(item), nil
}

func pantryResponse(item *entities.PantryItem) domain.PantryItemResponse {
	return domain.PantryItemResponse{
		ID:             item.ID.String(),
		Name:           item.Name,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		Location:       item.Location,
		Category:       item.Category,
		Notes:          item.Notes,
		ExpirationDate: item.ExpirationDate,
		PurchaseDate:   item.PurchaseDate,
		CreatedAt:      item.CreatedAt,
	}
}

func (s *shoppingService) DeleteEntry(ctx context.Context, id string) error {
	if _, err := s.shoppingRepository.GetEntryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingEntryNotFound
		}
		return err
	}
	return s.shoppingRepository.DeleteEntry(ctx, id)
}

func (s *shoppingService) ClearCompleted(ctx context.Context) (int64, error) {
	return s.shoppingRepository.DeleteChecked(ctx)
}
