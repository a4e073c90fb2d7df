package handlers

import (
	"Recetas-Backend/domain"
	"Recetas-Backend/entities"
	"Recetas-Backend/pkg/resource"
	"Recetas-Backend/pkg/store"

	"github.com/go-playground/validator/v10"
)

// ResourceHandlers holds the uniform handlers, one per entity.
type ResourceHandlers struct {
	Users              ResourceHandler
	PreparationSteps   ResourceHandler
	Ingredients        ResourceHandler
	RecipeIngredients  ResourceHandler
	Categories         ResourceHandler
	CuisineTypes       ResourceHandler
	RecipeCategories   ResourceHandler
	RecipeCuisineTypes ResourceHandler
	Ratings            ResourceHandler
	Comments           ResourceHandler
	ShoppingLists      ResourceHandler
	ShoppingListItems  ResourceHandler
}

var (
	recipeTitle = store.Preload{Path: "Recipe", Columns: []string{"id", "title", "id_user"}}
	authorName  = store.Preload{Path: "User", Columns: []string{"id", "username"}}
	ingredient  = store.Preload{Path: "Ingredient", Columns: []string{"id", "name"}}
)

func NewResourceHandlers(gateway *store.Gateway, v *validator.Validate) ResourceHandlers {
	return ResourceHandlers{
		Users: NewResourceHandler[entities.User, domain.CreateUserRequest, domain.UpdateUserRequest](
			resource.NewService[entities.User](gateway, resource.Options{Order: "id ASC"}), v,
		),
		PreparationSteps: NewResourceHandler[entities.PreparationStep, domain.CreatePreparationStepRequest, domain.UpdatePreparationStepRequest](
			resource.NewService[entities.PreparationStep](gateway, resource.Options{
				Preloads: []store.Preload{{Path: "Recipe", Columns: []string{"id", "title", "description", "id_user"}}},
				Order:    "id_recipe ASC, order_no ASC",
			}), v,
		),
		Ingredients: NewResourceHandler[entities.Ingredient, domain.CreateIngredientRequest, domain.UpdateIngredientRequest](
			resource.NewService[entities.Ingredient](gateway, resource.Options{Order: "id ASC"}), v,
		),
		RecipeIngredients: NewResourceHandler[entities.RecipeIngredient, domain.CreateRecipeIngredientRequest, domain.UpdateRecipeIngredientRequest](
			resource.NewService[entities.RecipeIngredient](gateway, resource.Options{
				Preloads: []store.Preload{ingredient, recipeTitle},
				Order:    "id ASC",
			}), v,
		),
		Categories: NewResourceHandler[entities.Category, domain.CreateCategoryRequest, domain.UpdateCategoryRequest](
			resource.NewService[entities.Category](gateway, resource.Options{Order: "id ASC"}), v,
		),
		CuisineTypes: NewResourceHandler[entities.CuisineType, domain.CreateCuisineTypeRequest, domain.UpdateCuisineTypeRequest](
			resource.NewService[entities.CuisineType](gateway, resource.Options{Order: "id ASC"}), v,
		),
		RecipeCategories: NewResourceHandler[entities.RecipeCategory, domain.CreateRecipeCategoryRequest, domain.UpdateRecipeCategoryRequest](
			resource.NewService[entities.RecipeCategory](gateway, resource.Options{
				Preloads: []store.Preload{{Path: "Category", Columns: []string{"id", "name"}}},
				Order:    "id ASC",
			}), v,
		),
		RecipeCuisineTypes: NewResourceHandler[entities.RecipeCuisineType, domain.CreateRecipeCuisineTypeRequest, domain.UpdateRecipeCuisineTypeRequest](
			resource.NewService[entities.RecipeCuisineType](gateway, resource.Options{
				Preloads: []store.Preload{{Path: "CuisineType", Columns: []string{"id", "name"}}},
				Order:    "id ASC",
			}), v,
		),
		Ratings: NewResourceHandler[entities.Rating, domain.CreateRatingRequest, domain.UpdateRatingRequest](
			resource.NewService[entities.Rating](gateway, resource.Options{
				Preloads: []store.Preload{authorName, recipeTitle},
				Order:    "id ASC",
			}), v,
		),
		Comments: NewResourceHandler[entities.Comment, domain.CreateCommentRequest, domain.UpdateCommentRequest](
			resource.NewService[entities.Comment](gateway, resource.Options{
				Preloads: []store.Preload{authorName, recipeTitle},
				Order:    "id ASC",
			}), v,
		),
		ShoppingLists: NewResourceHandler[entities.ShoppingList, domain.CreateShoppingListRequest, domain.UpdateShoppingListRequest](
			resource.NewService[entities.ShoppingList](gateway, resource.Options{
				Preloads: []store.Preload{{Path: "User", Columns: []string{"id", "username", "email"}}},
				DetailPreloads: []store.Preload{
					{Path: "Items", Order: "id ASC"},
					{Path: "Items.Ingredient", Columns: []string{"id", "name"}},
				},
				Order: "id ASC",
			}), v,
		),
		ShoppingListItems: NewResourceHandler[entities.ShoppingListItem, domain.CreateShoppingListItemRequest, domain.UpdateShoppingListItemRequest](
			resource.NewService[entities.ShoppingListItem](gateway, resource.Options{
				Preloads: []store.Preload{ingredient},
				Order:    "id ASC",
			}), v,
		),
	}
}
