package recipe

import (
	"context"
	"encoding/json"
	"errors"

	"dispensa-backend/domain"
	"dispensa-backend/entities"
	"dispensa-backend/pkg/availability"
	"dispensa-backend/pkg/catalog"
	"dispensa-backend/pkg/pantry"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, page, limit int) (domain.RecipeListResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string, servings int) (domain.RecipeDetail, error)
		GetMissingItems(ctx context.Context, recipeID string, servings int) ([]domain.MissingItem, error)
		ImportCatalog(ctx context.Context) (domain.ImportCatalogResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		pantryRepository pantry.PantryRepository
		catalogLoader    catalog.Loader
	}
)

func NewRecipeService(recipeRepository RecipeRepository, pantryRepository pantry.PantryRepository, catalogLoader catalog.Loader) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		pantryRepository: pantryRepository,
		catalogLoader:    catalogLoader,
	}
}

func (s *recipeService) snapshot(ctx context.Context) ([]domain.StockItem, error) {
	items, err := s.pantryRepository.GetAllItems(ctx)
	if err != nil {
		return nil, err
	}
	stock := make([]domain.StockItem, 0, len(items))
	for _, item := range items {
		stock = append(stock, domain.StockItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
		})
	}
	return stock, nil
}

func toRecipeCard(recipe *entities.Recipe, percent int) domain.Recipe {
	return domain.Recipe{
		ID:                  recipe.ID.String(),
		Title:               recipe.Title,
		Description:         recipe.Description,
		ImageURL:            recipe.ImageURL,
		Servings:            recipe.Servings,
		CookingTimeMinutes:  recipe.CookingTimeMinutes,
		Difficulty:          recipe.Difficulty,
		AvailabilityPercent: percent,
		CreatedAt:           recipe.CreatedAt,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, page, limit int) (domain.RecipeListResponse, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	stock, err := s.snapshot(ctx)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	cards := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		ingredients := IngredientsOf(recipe)
		result := availability.Compute(ingredients, recipe.Servings, recipe.Servings, stock, recipe.IngredientAvailability)
		cards = append(cards, toRecipeCard(recipe, result.Percent))
	}

	return domain.RecipeListResponse{Recipes: cards, Total: count}, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, servings int) (domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}

	stock, err := s.snapshot(ctx)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	if servings <= 0 {
		servings = recipe.Servings
	}

	ingredients := IngredientsOf(recipe)
	result := availability.Compute(ingredients, recipe.Servings, servings, stock, recipe.IngredientAvailability)
	missing := availability.CollectMissing(ingredients, recipe.Servings, servings, stock)

	estimatedCost := recipe.EstimatedCost
	if estimatedCost == 0 {
		estimatedCost = EstimateCost(ingredients)
	}

	facts := nutritionOf(recipe)
	caloriesPerServing := 0
	if recipe.Servings > 0 {
		caloriesPerServing = facts.Calories / recipe.Servings
	}

	return domain.RecipeDetail{
		Recipe:             toRecipeCard(recipe, result.Percent),
		TargetServings:     servings,
		Ingredients:        result.Statuses,
		MissingItems:       missing,
		NutritionFacts:     facts,
		CaloriesPerServing: caloriesPerServing,
		CostPerServing:     CostPerServing(estimatedCost, recipe.Servings),
		EstimatedCost:      estimatedCost,
	}, nil
}

func (s *recipeService) GetMissingItems(ctx context.Context, recipeID string, servings int) ([]domain.MissingItem, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	stock, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if servings <= 0 {
		servings = recipe.Servings
	}

	return availability.CollectMissing(IngredientsOf(recipe), recipe.Servings, servings, stock), nil
}

func (s *recipeService) ImportCatalog(ctx context.Context) (domain.ImportCatalogResponse, error) {
	entries, source, err := s.catalogLoader.Load(ctx)
	if err != nil {
		return domain.ImportCatalogResponse{}, domain.ErrCatalogUnavailable
	}

	imported := 0
	for _, entry := range entries {
		ingredientsJSON, _ := json.Marshal(entry.Ingredients)
		nutritionJSON, _ := json.Marshal(entry.NutritionFacts)

		existing, err := s.recipeRepository.GetRecipeByTitle(ctx, entry.Title)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ImportCatalogResponse{}, err
		}

		if existing == nil {
			recipe := &entities.Recipe{
				ID:                     uuid.New(),
				Title:                  entry.Title,
				Description:            entry.Description,
				ImageURL:               entry.ImageURL,
				Servings:               entry.Servings,
				CookingTimeMinutes:     entry.CookingTimeMinutes,
				Difficulty:             entry.Difficulty,
				Ingredients:            string(ingredientsJSON),
				NutritionFacts:         string(nutritionJSON),
				EstimatedCost:          EstimateCost(entry.Ingredients),
				IngredientAvailability: entry.IngredientAvailability,
			}
			if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
				return domain.ImportCatalogResponse{}, err
			}
			imported++
			continue
		}

		existing.Description = entry.Description
		existing.ImageURL = entry.ImageURL
		existing.Servings = entry.Servings
		existing.CookingTimeMinutes = entry.CookingTimeMinutes
		existing.Difficulty = entry.Difficulty
		existing.Ingredients = string(ingredientsJSON)
		existing.NutritionFacts = string(nutritionJSON)
		existing.EstimatedCost = EstimateCost(entry.Ingredients)
		existing.IngredientAvailability = entry.IngredientAvailability
		if err := s.recipeRepository.UpdateRecipe(ctx, existing); err != nil {
			return domain.ImportCatalogResponse{}, err
		}
		imported++
	}

	return domain.ImportCatalogResponse{Imported: imported, Source: source}, nil
}
