package routes

import (
	"dispensa-backend/internal/api/handlers"
	"dispensa-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	PantryHandler   handlers.PantryHandler
	RecipeHandler   handlers.RecipeHandler
	ShoppingHandler handlers.ShoppingHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.PantryItems()
	c.Recipes()
	c.ShoppingList()
	c.GuestRoute()
}

func (c *Config) PantryItems() {
	pantryItems := c.App.Group("/api/v1/pantry-items")

	// Basic CRUD operations
	pantryItems.Post("", c.PantryHandler.AddPantryItem)
	pantryItems.Get("", c.PantryHandler.GetPantryItems)
	pantryItems.Get("/:id", c.PantryHandler.GetPantryItemDetails)
	pantryItems.Put("/:id", c.PantryHandler.UpdatePantryItem)
	pantryItems.Delete("/:id", c.PantryHandler.DeletePantryItem)

	// Bulk operations
	pantryItems.Post("/bulk-move", c.PantryHandler.BulkMove)
	pantryItems.Post("/mark-used", c.PantryHandler.MarkUsed)
	pantryItems.Post("/bulk-delete", c.PantryHandler.BulkDelete)

	pantryItems.Post("/expiry-digest", c.PantryHandler.SendExpiryDigest)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetails)
	recipes.Get("/:id/missing", c.RecipeHandler.GetMissingItems)
	recipes.Post("/import-catalog", c.RecipeHandler.ImportCatalog)
}

func (c *Config) ShoppingList() {
	shoppingList := c.App.Group("/api/v1/shopping-list")

	shoppingList.Get("", c.ShoppingHandler.GetShoppingList)
	shoppingList.Post("", c.ShoppingHandler.AddEntry)
	shoppingList.Post("/from-recipe", c.ShoppingHandler.EnqueueMissing)
	shoppingList.Put("/:id", c.ShoppingHandler.UpdateEntry)
	shoppingList.Post("/:id/toggle", c.ShoppingHandler.ToggleEntry)
	shoppingList.Post("/:id/purchase", c.ShoppingHandler.PurchaseEntry)
	shoppingList.Delete("/:id", c.ShoppingHandler.DeleteEntry)
	shoppingList.Post("/clear-completed", c.ShoppingHandler.ClearCompleted)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
