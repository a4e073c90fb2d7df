package routes

import (
	"Recetas-Backend/domain"
	"Recetas-Backend/internal/api/handlers"
	"Recetas-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App              *fiber.App
	RecipeHandler    handlers.RecipeHandler
	ResourceHandlers handlers.ResourceHandlers
	Middleware       middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Users()
	c.Recipes()
	c.PreparationSteps()
	c.Ingredients()
	c.Catalog()
	c.Feedback()
	c.ShoppingLists()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(domain.MessageHealthy)
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

// crud mounts the uniform routes of h on g.
func crud(g fiber.Router, h handlers.ResourceHandler) {
	g.Get("/", h.List)
	g.Get("/:id", h.Get)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func (c *Config) Users() {
	crud(c.App.Group("/usuario"), c.ResourceHandlers.Users)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/recetas")
	{
		recipes.Get("/", c.RecipeHandler.GetRecipes)
		recipes.Get("/usuario/:id_user", c.RecipeHandler.GetRecipesByUser)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Post("/", c.RecipeHandler.CreateRecipe)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	}

	categories := c.App.Group("/recetasCategoria")
	categories.Get("/receta/:id_recipe", c.ResourceHandlers.RecipeCategories.ListBy("id_recipe", "id_recipe"))
	crud(categories, c.ResourceHandlers.RecipeCategories)

	cuisineTypes := c.App.Group("/recetasTipoCocina")
	cuisineTypes.Get("/receta/:id_recipe", c.ResourceHandlers.RecipeCuisineTypes.ListBy("id_recipe", "id_recipe"))
	crud(cuisineTypes, c.ResourceHandlers.RecipeCuisineTypes)
}

func (c *Config) PreparationSteps() {
	steps := c.App.Group("/pasosPreparacion")
	steps.Get("/receta/:id_recipe", c.ResourceHandlers.PreparationSteps.ListBy("id_recipe", "id_recipe"))
	crud(steps, c.ResourceHandlers.PreparationSteps)
}

func (c *Config) Ingredients() {
	crud(c.App.Group("/ingredientes"), c.ResourceHandlers.Ingredients)

	lines := c.App.Group("/ingredientesReceta")
	lines.Get("/receta/:id_recipe", c.ResourceHandlers.RecipeIngredients.ListBy("id_recipe", "id_recipe"))
	lines.Get("/ingrediente/:id_ingredient", c.ResourceHandlers.RecipeIngredients.ListBy("id_ingredient", "id_ingredient"))
	crud(lines, c.ResourceHandlers.RecipeIngredients)
}

func (c *Config) Catalog() {
	crud(c.App.Group("/categorias"), c.ResourceHandlers.Categories)
	crud(c.App.Group("/tiposCocina"), c.ResourceHandlers.CuisineTypes)
}

func (c *Config) Feedback() {
	ratings := c.App.Group("/calificaciones")
	ratings.Get("/usuario/:id_user", c.ResourceHandlers.Ratings.ListBy("id_user", "id_user"))
	ratings.Get("/receta/:id_recipe", c.ResourceHandlers.Ratings.ListBy("id_recipe", "id_recipe"))
	crud(ratings, c.ResourceHandlers.Ratings)

	comments := c.App.Group("/comentarios")
	comments.Get("/usuario/:id_user", c.ResourceHandlers.Comments.ListBy("id_user", "id_user"))
	comments.Get("/receta/:id_recipe", c.ResourceHandlers.Comments.ListBy("id_recipe", "id_recipe"))
	crud(comments, c.ResourceHandlers.Comments)
}

func (c *Config) ShoppingLists() {
	lists := c.App.Group("/listasCompra")
	lists.Get("/usuario/:id_user", c.ResourceHandlers.ShoppingLists.ListBy("id_user", "id_user"))
	crud(lists, c.ResourceHandlers.ShoppingLists)

	items := c.App.Group("/itemsListaCompra")
	items.Get("/lista/:id_list", c.ResourceHandlers.ShoppingListItems.ListBy("id_list", "id_list"))
	crud(items, c.ResourceHandlers.ShoppingListItems)
}
