package config

import (
	"os"
	"time"

	"dispensa-backend/internal/api/handlers"
	"dispensa-backend/internal/api/routes"
	"dispensa-backend/internal/middleware"
	"dispensa-backend/internal/utils"
	"dispensa-backend/pkg/catalog"
	"dispensa-backend/pkg/pantry"
	"dispensa-backend/pkg/recipe"
	"dispensa-backend/pkg/shopping"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Rome",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	catalogLoader := catalog.NewLoader()

	// Repository
	pantryRepository := pantry.NewPantryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)

	// Service
	pantryService := pantry.NewPantryService(pantryRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, pantryRepository, catalogLoader)
	shoppingService := shopping.NewShoppingService(shoppingRepository, recipeRepository, pantryRepository)

	// Handler
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		PantryHandler:   pantryHandler,
		RecipeHandler:   recipeHandler,
		ShoppingHandler: shoppingHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
