package integrity

import (
	"context"

	"Recetas-Backend/domain"
	"Recetas-Backend/entities"
)

// CheckSteps rejects a nested step list of recipeID that repeats an order
// number or an id, or that reuses the id of another recipe's step.
func (c *Checker) CheckSteps(ctx context.Context, recipeID int, steps []entities.PreparationStep) error {
	orders := make(map[int]bool, len(steps))
	var ids []int
	for _, s := range steps {
		if orders[s.OrderNo] {
			return domain.Conflict("a step with this order number already exists for this recipe")
		}
		orders[s.OrderNo] = true
		if s.ID != 0 {
			ids = append(ids, s.ID)
		}
	}
	return c.checkFreshIDs(ctx, entities.TablePreparationSteps, ids, recipeID)
}

// CheckIngredientLines rejects a nested ingredient list of recipeID that
// names an unknown ingredient, repeats one, or reuses the id of another
// recipe's line.
func (c *Checker) CheckIngredientLines(ctx context.Context, recipeID int, lines []entities.RecipeIngredient) error {
	ingredientIDs := make([]int, 0, len(lines))
	for _, l := range lines {
		ingredientIDs = append(ingredientIDs, l.IDIngredient)
	}
	if err := c.CheckIDs(ctx, entities.TableIngredients, ingredientIDs); err != nil {
		return err
	}

	seen := make(map[int]bool, len(lines))
	var ids []int
	for _, l := range lines {
		if seen[l.IDIngredient] {
			return domain.Conflict("this ingredient is already associated with this recipe")
		}
		seen[l.IDIngredient] = true
		if l.ID != 0 {
			ids = append(ids, l.ID)
		}
	}
	return c.checkFreshIDs(ctx, entities.TableRecipeIngredients, ids, recipeID)
}

// checkFreshIDs allows ids already owned by recipeID since those rows are
// replaced by the write.
func (c *Checker) checkFreshIDs(ctx context.Context, table string, ids []int, recipeID int) error {
	if len(ids) == 0 {
		return nil
	}
	label := c.gateway.Registry().MustEntity(table).Label
	distinct := dedupe(ids)
	if len(distinct) != len(ids) {
		return domain.Conflict("repeated " + label + " id in request")
	}
	count, err := c.gateway.CountClaimed(ctx, table, distinct, "id_recipe", recipeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.Conflict("a " + label + " with one of the supplied ids already exists")
	}
	return nil
}
