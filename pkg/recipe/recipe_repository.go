package recipe

import (
	"context"

	"Recetas-Backend/entities"
	"Recetas-Backend/pkg/store"
)

// detailPreloads is everything a recipe read carries.
var detailPreloads = []store.Preload{
	{Path: "User", Columns: []string{"id", "username", "email"}},
	{Path: "Steps", Order: "order_no ASC"},
	{Path: "Ingredients", Order: "id ASC"},
	{Path: "Ingredients.Ingredient", Columns: []string{"id", "name"}},
	{Path: "RecipeCategories", Order: "id ASC"},
	{Path: "RecipeCategories.Category", Columns: []string{"id", "name"}},
	{Path: "RecipeCuisineTypes", Order: "id ASC"},
	{Path: "RecipeCuisineTypes.CuisineType", Columns: []string{"id", "name"}},
	{Path: "Ratings", Order: "id ASC"},
	{Path: "Ratings.User", Columns: []string{"id", "username"}},
	{Path: "Comments", Order: "id ASC"},
	{Path: "Comments.User", Columns: []string{"id", "username"}},
}

type (
	RecipeRepository interface {
		WithTx(tx *store.Gateway) RecipeRepository
		GetRecipes(ctx context.Context) ([]entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id int) (*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID int) ([]entities.Recipe, error)
		FindRecipe(ctx context.Context, id int) (*entities.Recipe, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, patch map[string]any) error
		DeleteRecipe(ctx context.Context, id int) error
		ReplaceSteps(ctx context.Context, recipeID int, steps []entities.PreparationStep) error
		ReplaceIngredients(ctx context.Context, recipeID int, lines []entities.RecipeIngredient) error
		SetCategories(ctx context.Context, recipeID int, ids []int) error
		SetCuisineTypes(ctx context.Context, recipeID int, ids []int) error
	}

	recipeRepository struct {
		gateway     *store.Gateway
		recipes     *store.Repository[entities.Recipe]
		steps       *store.Repository[entities.PreparationStep]
		ingredients *store.Repository[entities.RecipeIngredient]
	}
)

func NewRecipeRepository(gateway *store.Gateway) RecipeRepository {
	return &recipeRepository{
		gateway:     gateway,
		recipes:     store.NewRepository[entities.Recipe](gateway),
		steps:       store.NewRepository[entities.PreparationStep](gateway),
		ingredients: store.NewRepository[entities.RecipeIngredient](gateway),
	}
}

func (r *recipeRepository) WithTx(tx *store.Gateway) RecipeRepository {
	return NewRecipeRepository(tx)
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]entities.Recipe, error) {
	return r.recipes.FindAll(ctx, store.Query{Preloads: detailPreloads, Order: "id ASC"})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id int) (*entities.Recipe, error) {
	return r.recipes.FindByKey(ctx, id, detailPreloads...)
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID int) ([]entities.Recipe, error) {
	return r.recipes.FindAll(ctx, store.Query{
		Where:    map[string]any{"id_user": userID},
		Preloads: detailPreloads,
		Order:    "id ASC",
	})
}

// FindRecipe loads the bare row.
func (r *recipeRepository) FindRecipe(ctx context.Context, id int) (*entities.Recipe, error) {
	return r.recipes.FindByKey(ctx, id)
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.recipes.Create(ctx, recipe)
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, patch map[string]any) error {
	return r.recipes.Update(ctx, recipe, patch)
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id int) error {
	return r.recipes.Delete(ctx, id)
}

// ReplaceSteps drops every step of the recipe and inserts steps in their
// place. Zero ids are assigned.
func (r *recipeRepository) ReplaceSteps(ctx context.Context, recipeID int, steps []entities.PreparationStep) error {
	if err := r.gateway.DeleteChildren(ctx, entities.TablePreparationSteps, "id_recipe", recipeID); err != nil {
		return err
	}
	ids := make([]int, len(steps))
	for i, s := range steps {
		ids[i] = s.ID
	}
	if err := r.gateway.AssignIDs(ctx, entities.TablePreparationSteps, ids); err != nil {
		return err
	}
	for i := range steps {
		steps[i].ID = ids[i]
		steps[i].IDRecipe = recipeID
	}
	return r.steps.BulkCreate(ctx, steps)
}

func (r *recipeRepository) ReplaceIngredients(ctx context.Context, recipeID int, lines []entities.RecipeIngredient) error {
	if err := r.gateway.DeleteChildren(ctx, entities.TableRecipeIngredients, "id_recipe", recipeID); err != nil {
		return err
	}
	ids := make([]int, len(lines))
	for i, l := range lines {
		ids[i] = l.ID
	}
	if err := r.gateway.AssignIDs(ctx, entities.TableRecipeIngredients, ids); err != nil {
		return err
	}
	for i := range lines {
		lines[i].ID = ids[i]
		lines[i].IDRecipe = recipeID
	}
	return r.ingredients.BulkCreate(ctx, lines)
}

func (r *recipeRepository) SetCategories(ctx context.Context, recipeID int, ids []int) error {
	return r.gateway.SetAssociation(ctx, entities.TableRecipes, entities.AssociationCategories, recipeID, ids)
}

func (r *recipeRepository) SetCuisineTypes(ctx context.Context, recipeID int, ids []int) error {
	return r.gateway.SetAssociation(ctx, entities.TableRecipes, entities.AssociationCuisineTypes, recipeID, ids)
}
