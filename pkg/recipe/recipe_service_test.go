package recipe

import (
	"context"
	"testing"

	"Recetas-Backend/domain"
	"Recetas-Backend/entities"
	"Recetas-Backend/internal/testutil"
	"Recetas-Backend/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (RecipeService, *store.Gateway) {
	t.Helper()
	g := testutil.NewGateway(t)
	testutil.Seed(t, g.DB(),
		&entities.User{ID: 1, Username: "ana", Email: testutil.Ptr("ana@example.com")},
		&entities.User{ID: 2, Username: "luis"},
		&entities.Ingredient{ID: 1, Name: "Huevo"},
		&entities.Ingredient{ID: 2, Name: "Patata"},
		&entities.Ingredient{ID: 3, Name: "Cebolla"},
		&entities.Category{ID: 1, Name: testutil.Ptr("Cena")},
		&entities.Category{ID: 2, Name: testutil.Ptr("Tapa")},
		&entities.CuisineType{ID: 1, Name: testutil.Ptr("Española")},
	)
	return NewRecipeService(g, NewRecipeRepository(g)), g
}

func tortilla() domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Title:      "Tortilla",
		Difficulty: testutil.Ptr("media"),
		IDUser:     testutil.Ptr(1),
		Steps: []domain.RecipeStepInput{
			{OrderNo: testutil.Ptr(2), Instruction: testutil.Ptr("Cuajar")},
			{OrderNo: testutil.Ptr(1), Instruction: testutil.Ptr("Batir")},
		},
		Ingredients: []domain.RecipeIngredientInput{
			{Quantity: testutil.Ptr(4), IDIngredient: testutil.Ptr(1)},
			{Quantity: testutil.Ptr(3), Unit: testutil.Ptr("uds"), IDIngredient: testutil.Ptr(2)},
		},
		Categories:   []domain.AssociationRef{{ID: 1}, {ID: 2}},
		CuisineTypes: []domain.AssociationRef{{ID: 1}},
	}
}

func rows(t *testing.T, g *store.Gateway, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, g.DB().Table(table).Count(&n).Error)
	return n
}

func TestCreateRecipe(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	detail, err := svc.CreateRecipe(ctx, tortilla())
	require.NoError(t, err)

	assert.Equal(t, 1, detail.ID)
	assert.Equal(t, "Tortilla", detail.Title)
	require.NotNil(t, detail.User)
	assert.Equal(t, "ana", detail.User.Username)

	require.Len(t, detail.PreparationSteps, 2)
	assert.Equal(t, 1, detail.PreparationSteps[0].OrderNo, "steps are sorted by order number")
	assert.Equal(t, "Batir", *detail.PreparationSteps[0].Instruction)
	assert.Equal(t, 2, detail.PreparationSteps[1].OrderNo)

	require.Len(t, detail.RecipeIngredients, 2)
	require.NotNil(t, detail.RecipeIngredients[0].Ingredient)
	assert.Equal(t, "Huevo", detail.RecipeIngredients[0].Ingredient.Name)

	assert.Len(t, detail.Categories, 2)
	require.Len(t, detail.CuisineTypes, 1)
	assert.Equal(t, "Española", *detail.CuisineTypes[0].Name)
	assert.NotNil(t, detail.Ratings)
	assert.Empty(t, detail.Comments)
}

func TestCreateRecipeRollsBack(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *domain.CreateRecipeRequest)
		kind    domain.ErrorKind
		message string
	}{
		{
			name:    "unknown author",
			mutate:  func(r *domain.CreateRecipeRequest) { r.IDUser = testutil.Ptr(9) },
			kind:    domain.KindInvalidReference,
			message: "the referenced user (id 9) does not exist",
		},
		{
			name: "unknown category",
			mutate: func(r *domain.CreateRecipeRequest) {
				r.Categories = append(r.Categories, domain.AssociationRef{ID: 99})
			},
			kind:    domain.KindInvalidReference,
			message: "some of the supplied category ids do not exist",
		},
		{
			name:    "unknown cuisine type",
			mutate:  func(r *domain.CreateRecipeRequest) { r.CuisineTypes = []domain.AssociationRef{{ID: 5}} },
			kind:    domain.KindInvalidReference,
			message: "some of the supplied cuisine type ids do not exist",
		},
		{
			name: "unknown ingredient",
			mutate: func(r *domain.CreateRecipeRequest) {
				r.Ingredients[0].IDIngredient = testutil.Ptr(42)
			},
			kind:    domain.KindInvalidReference,
			message: "some of the supplied ingredient ids do not exist",
		},
		{
			name: "repeated ingredient",
			mutate: func(r *domain.CreateRecipeRequest) {
				r.Ingredients[1].IDIngredient = testutil.Ptr(1)
			},
			kind:    domain.KindConflict,
			message: "this ingredient is already associated with this recipe",
		},
		{
			name: "repeated step order",
			mutate: func(r *domain.CreateRecipeRequest) {
				r.Steps[0].OrderNo = testutil.Ptr(1)
			},
			kind:    domain.KindConflict,
			message: "a step with this order number already exists for this recipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, g := newService(t)

			req := tortilla()
			tt.mutate(&req)
			_, err := svc.CreateRecipe(ctx, req)
			require.Error(t, err)
			assert.Equal(t, tt.kind, domain.KindOf(err))
			assert.Equal(t, tt.message, err.Error())

			for _, table := range []string{
				entities.TableRecipes,
				entities.TablePreparationSteps,
				entities.TableRecipeIngredients,
				entities.TableRecipeCategories,
				entities.TableRecipeCuisineTypes,
			} {
				assert.Zero(t, rows(t, g, table), table)
			}
		})
	}
}

func TestCreateRecipeDuplicateTitle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.CreateRecipe(ctx, tortilla())
	require.NoError(t, err)

	req := tortilla()
	req.IDUser = testutil.Ptr(2)
	_, err = svc.CreateRecipe(ctx, req)
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	assert.Equal(t, "a recipe with this title already exists", err.Error())
}

func TestCreateRecipeWithChosenID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	req := tortilla()
	req.ID = testutil.Ptr(40)
	detail, err := svc.CreateRecipe(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 40, detail.ID)

	req = tortilla()
	req.ID = testutil.Ptr(40)
	req.Title = "Otra"
	_, err = svc.CreateRecipe(ctx, req)
	require.Error(t, err)
	assert.Equal(t, "a recipe with id 40 already exists", err.Error())
}

func TestUpdateRecipe(t *testing.T) {
	ctx := context.Background()
	svc, g := newService(t)

	created, err := svc.CreateRecipe(ctx, tortilla())
	require.NoError(t, err)

	updated, err := svc.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{
		Title: testutil.Ptr("Tortilla de patatas"),
		Steps: []domain.RecipeStepInput{
			{OrderNo: testutil.Ptr(1), Instruction: testutil.Ptr("Pelar")},
			{OrderNo: testutil.Ptr(2), Instruction: testutil.Ptr("Freír")},
			{OrderNo: testutil.Ptr(3), Instruction: testutil.Ptr("Cuajar")},
		},
		Categories: []domain.AssociationRef{{ID: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Tortilla de patatas", updated.Title)
	require.NotNil(t, updated.Difficulty)
	assert.Equal(t, "media", *updated.Difficulty, "absent fields are unchanged")
	require.Len(t, updated.PreparationSteps, 3)
	assert.Equal(t, "Pelar", *updated.PreparationSteps[0].Instruction)
	assert.Equal(t, int64(3), rows(t, g, entities.TablePreparationSteps))

	require.Len(t, updated.Categories, 1)
	assert.Equal(t, 2, updated.Categories[0].ID)
	assert.Len(t, updated.RecipeIngredients, 2, "ingredients are untouched when absent")
	assert.Len(t, updated.CuisineTypes, 1)
}

func TestUpdateRecipeClearsWithEmptyLists(t *testing.T) {
	ctx := context.Background()
	svc, g := newService(t)

	created, err := svc.CreateRecipe(ctx, tortilla())
	require.NoError(t, err)

	updated, err := svc.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{
		Ingredients:  []domain.RecipeIngredientInput{},
		CuisineTypes: []domain.AssociationRef{},
	})
	require.NoError(t, err)
	assert.Empty(t, updated.RecipeIngredients)
	assert.Empty(t, updated.CuisineTypes)
	assert.Len(t, updated.PreparationSteps, 2)
	assert.Zero(t, rows(t, g, entities.TableRecipeIngredients))
}

func TestUpdateRecipeKeepsStepIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	created, err := svc.CreateRecipe(ctx, tortilla())
	require.NoError(t, err)
	first := created.PreparationSteps[0]

	updated, err := svc.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{
		Steps: []domain.RecipeStepInput{
			{ID: testutil.Ptr(first.ID), OrderNo: testutil.Ptr(1), Instruction: testutil.Ptr("Batir fuerte")},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.PreparationSteps, 1)
	assert.Equal(t, first.ID, updated.PreparationSteps[0].ID)
}

func TestUpdateRecipeRejectsAnotherRecipesStepID(t *testing.T) {
	ctx := context.Background()
	svc, g := newService(t)

	first, err := svc.CreateRecipe(ctx, tortilla())
	require.NoError(t, err)
	req := tortilla()
	req.Title = "Gazpacho"
	second, err := svc.CreateRecipe(ctx, req)
	require.NoError(t, err)

	_, err = svc.UpdateRecipe(ctx, second.ID, domain.UpdateRecipeRequest{
		Title: testutil.Ptr("Salmorejo"),
		Steps: []domain.RecipeStepInput{{ID: testutil.Ptr(first.PreparationSteps[0].ID), OrderNo: testutil.Ptr(1)}},
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	again, err := svc.GetRecipeDetail(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gazpacho", again.Title, "a failed update leaves the recipe unchanged")
	assert.Equal(t, int64(4), rows(t, g, entities.TablePreparationSteps))
}

func TestUpdateRecipeErrors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.UpdateRecipe(ctx, 9, domain.UpdateRecipeRequest{Title: testutil.Ptr("x")})
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	created, err := svc.CreateRecipe(ctx, tortilla())
	require.NoError(t, err)

	_, err = svc.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{IDUser: testutil.Ptr(9)})
	assert.Equal(t, domain.KindInvalidReference, domain.KindOf(err))

	_, err = svc.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{Categories: []domain.AssociationRef{{ID: 7}}})
	assert.Equal(t, domain.KindInvalidReference, domain.KindOf(err))
}

func TestGetRecipesByUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.CreateRecipe(ctx, tortilla())
	require.NoError(t, err)

	recipes, err := svc.GetRecipesByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, recipes, 1)

	_, err = svc.GetRecipesByUser(ctx, 2)
	require.Error(t, err)
	assert.Equal(t, "no recipe records found for this user", err.Error())

	_, err = svc.GetRecipesByUser(ctx, 3)
	require.Error(t, err)
	assert.Equal(t, "user not found", err.Error())
}

func TestDeleteRecipe(t *testing.T) {
	ctx := context.Background()
	svc, g := newService(t)

	created, err := svc.CreateRecipe(ctx, tortilla())
	require.NoError(t, err)
	testutil.Seed(t, g.DB(),
		&entities.Rating{ID: 1, Score: 4, IDUser: 2, IDRecipe: created.ID},
		&entities.Comment{ID: 1, Text: "Rica", IDUser: 2, IDRecipe: created.ID},
	)

	detail, err := svc.GetRecipeDetail(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, detail.Ratings, 1)
	require.NotNil(t, detail.Ratings[0].User)
	assert.Equal(t, "luis", detail.Ratings[0].User.Username)

	require.NoError(t, svc.DeleteRecipe(ctx, created.ID))

	for _, table := range []string{
		entities.TableRecipes,
		entities.TablePreparationSteps,
		entities.TableRecipeIngredients,
		entities.TableRecipeCategories,
		entities.TableRecipeCuisineTypes,
		entities.TableRatings,
		entities.TableComments,
	} {
		assert.Zero(t, rows(t, g, table), table)
	}
	assert.Equal(t, int64(3), rows(t, g, entities.TableIngredients))

	err = svc.DeleteRecipe(ctx, created.ID)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	recipes, err := svc.GetRecipes(ctx)
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}
