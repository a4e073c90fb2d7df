package recipe

import (
	"context"

	"Recetas-Backend/domain"
	"Recetas-Backend/entities"
	"Recetas-Backend/pkg/integrity"
	"Recetas-Backend/pkg/resource"
	"Recetas-Backend/pkg/store"
)

const label = "recipe"

type (
	RecipeService interface {
		GetRecipes(ctx context.Context) ([]domain.RecipeDetail, error)
		GetRecipeDetail(ctx context.Context, id int) (domain.RecipeDetail, error)
		GetRecipesByUser(ctx context.Context, userID int) ([]domain.RecipeDetail, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeDetail, error)
		UpdateRecipe(ctx context.Context, id int, req domain.UpdateRecipeRequest) (domain.RecipeDetail, error)
		DeleteRecipe(ctx context.Context, id int) error
	}

	recipeService struct {
		gateway          *store.Gateway
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(gateway *store.Gateway, recipeRepository RecipeRepository) RecipeService {
	return &recipeService{
		gateway:          gateway,
		recipeRepository: recipeRepository,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeDetail, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}
	return details(recipes), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id int) (domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.RecipeDetail{}, resource.Translate(err, label)
	}
	return domain.NewRecipeDetail(*recipe), nil
}

func (s *recipeService) GetRecipesByUser(ctx context.Context, userID int) ([]domain.RecipeDetail, error) {
	exists, err := s.gateway.Exists(ctx, entities.TableUsers, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NotFound("user")
	}
	recipes, err := s.recipeRepository.GetRecipesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, domain.NoRows(label, "user")
	}
	return details(recipes), nil
}

// CreateRecipe writes the recipe and its nested rows in one transaction.
// Nothing is written unless every check passes.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeDetail, error) {
	var id int
	err := s.gateway.Transaction(ctx, func(tx *store.Gateway) error {
		ids := []int{req.RequestedID()}
		if err := tx.AssignIDs(ctx, entities.TableRecipes, ids); err != nil {
			return err
		}
		id = ids[0]
		recipe := req.Entity(id)
		steps := domain.StepEntities(id, req.Steps)
		lines := domain.IngredientEntities(id, req.Ingredients)
		categories := domain.RefIDs(req.Categories)
		cuisineTypes := domain.RefIDs(req.CuisineTypes)

		checker := integrity.NewChecker(tx)
		if err := checker.CheckCreate(ctx, entities.TableRecipes, recipe.Values()); err != nil {
			return err
		}
		if err := checkNested(ctx, checker, id, steps, lines, categories, cuisineTypes); err != nil {
			return err
		}

		repository := s.recipeRepository.WithTx(tx)
		if err := repository.CreateRecipe(ctx, &recipe); err != nil {
			return err
		}
		return writeNested(ctx, repository, id, req.Steps != nil, steps, req.Ingredients != nil, lines, categories, cuisineTypes)
	})
	if err != nil {
		return domain.RecipeDetail{}, resource.Translate(err, label)
	}
	return s.GetRecipeDetail(ctx, id)
}

// UpdateRecipe patches the recipe row, replaces steps and ingredients when
// the request carries them and resets the category and cuisine type sets.
func (s *recipeService) UpdateRecipe(ctx context.Context, id int, req domain.UpdateRecipeRequest) (domain.RecipeDetail, error) {
	err := s.gateway.Transaction(ctx, func(tx *store.Gateway) error {
		repository := s.recipeRepository.WithTx(tx)
		recipe, err := repository.FindRecipe(ctx, id)
		if err != nil {
			return err
		}
		patch := req.Patch()
		steps := domain.StepEntities(id, req.Steps)
		lines := domain.IngredientEntities(id, req.Ingredients)
		categories := domain.RefIDs(req.Categories)
		cuisineTypes := domain.RefIDs(req.CuisineTypes)

		checker := integrity.NewChecker(tx)
		if err := checker.CheckUpdate(ctx, *recipe, patch); err != nil {
			return err
		}
		if err := checkNested(ctx, checker, id, steps, lines, categories, cuisineTypes); err != nil {
			return err
		}

		if err := repository.UpdateRecipe(ctx, recipe, patch); err != nil {
			return err
		}
		return writeNested(ctx, repository, id, req.Steps != nil, steps, req.Ingredients != nil, lines, categories, cuisineTypes)
	})
	if err != nil {
		return domain.RecipeDetail{}, resource.Translate(err, label)
	}
	return s.GetRecipeDetail(ctx, id)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id int) error {
	if _, err := s.recipeRepository.FindRecipe(ctx, id); err != nil {
		return resource.Translate(err, label)
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

// checkNested runs after the recipe row checks: ingredient lines, then step
// ordering, then the category and cuisine type ids.
func checkNested(
	ctx context.Context,
	checker *integrity.Checker,
	recipeID int,
	steps []entities.PreparationStep,
	lines []entities.RecipeIngredient,
	categories, cuisineTypes []int,
) error {
	if err := checker.CheckIngredientLines(ctx, recipeID, lines); err != nil {
		return err
	}
	if err := checker.CheckSteps(ctx, recipeID, steps); err != nil {
		return err
	}
	if err := checker.CheckIDs(ctx, entities.TableCategories, categories); err != nil {
		return err
	}
	return checker.CheckIDs(ctx, entities.TableCuisineTypes, cuisineTypes)
}

func writeNested(
	ctx context.Context,
	repository RecipeRepository,
	recipeID int,
	replaceSteps bool, steps []entities.PreparationStep,
	replaceLines bool, lines []entities.RecipeIngredient,
	categories, cuisineTypes []int,
) error {
	if replaceSteps {
		if err := repository.ReplaceSteps(ctx, recipeID, steps); err != nil {
			return err
		}
	}
	if replaceLines {
		if err := repository.ReplaceIngredients(ctx, recipeID, lines); err != nil {
			return err
		}
	}
	if categories != nil {
		if err := repository.SetCategories(ctx, recipeID, categories); err != nil {
			return err
		}
	}
	if cuisineTypes != nil {
		if err := repository.SetCuisineTypes(ctx, recipeID, cuisineTypes); err != nil {
			return err
		}
	}
	return nil
}

func details(recipes []entities.Recipe) []domain.RecipeDetail {
	out := make([]domain.RecipeDetail, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, domain.NewRecipeDetail(r))
	}
	return out
}
