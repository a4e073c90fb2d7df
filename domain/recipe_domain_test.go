package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"Recetas-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestUpdateRecipePatchSkipsAbsentFields(t *testing.T) {
	var req UpdateRecipeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Tarta","description":null}`), &req))

	assert.Equal(t, map[string]any{"title": "Tarta"}, req.Patch())
	assert.Nil(t, req.Steps)
	assert.Nil(t, RefIDs(req.Categories))
}

func TestUpdateRecipeEmptyListsAreKept(t *testing.T) {
	var req UpdateRecipeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"steps":[],"categories":[]}`), &req))

	assert.NotNil(t, req.Steps)
	ids := RefIDs(req.Categories)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestNestedEntities(t *testing.T) {
	steps := StepEntities(7, []RecipeStepInput{{ID: ptr(3), OrderNo: ptr(1)}, {OrderNo: ptr(2), Instruction: ptr("Hornear")}})
	require.Len(t, steps, 2)
	assert.Equal(t, entities.PreparationStep{ID: 3, OrderNo: 1, IDRecipe: 7}, steps[0])
	assert.Zero(t, steps[1].ID)
	assert.Equal(t, 7, steps[1].IDRecipe)

	lines := IngredientEntities(7, []RecipeIngredientInput{{Quantity: ptr(2), IDIngredient: ptr(4)}})
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].IDIngredient)
	assert.Equal(t, 7, lines[0].IDRecipe)
}

func TestNewRecipeDetail(t *testing.T) {
	bare := NewRecipeDetail(entities.Recipe{ID: 1, Title: "Tarta", IDUser: 2})
	raw, err := json.Marshal(bare)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1, "title": "Tarta", "description": null, "prep_time": null,
		"cook_time": null, "difficulty": null, "id_user": 2, "User": null,
		"PreparationSteps": [], "RecipeIngredients": [], "Categories": [],
		"CuisineTypes": [], "Ratings": [], "Comments": []
	}`, string(raw))

	full := NewRecipeDetail(entities.Recipe{
		ID:     1,
		Title:  "Tarta",
		IDUser: 2,
		User:   &entities.User{ID: 2, Username: "ana", Password: ptr("secreto")},
		Ingredients: []entities.RecipeIngredient{
			{ID: 1, Quantity: 200, IDIngredient: 3, Ingredient: &entities.Ingredient{ID: 3, Name: "Harina"}},
		},
		RecipeCategories: []entities.RecipeCategory{
			{ID: 1, IDCategory: 4, Category: &entities.Category{ID: 4, Name: ptr("Postre")}},
		},
		Ratings: []entities.Rating{{ID: 1, Score: 5, User: &entities.User{Username: "luis"}}},
	})
	require.NotNil(t, full.User)
	assert.Equal(t, "ana", full.User.Username)
	assert.Equal(t, "Harina", full.RecipeIngredients[0].Ingredient.Name)
	assert.Equal(t, []NamedRef{{ID: 4, Name: ptr("Postre")}}, full.Categories)
	assert.Equal(t, "luis", full.Ratings[0].User.Username)

	raw, err = json.Marshal(full)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secreto")
}

func TestErrorKinds(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("recipe")))
	assert.Equal(t, "recipe not found", NotFound("recipe").Error())
	assert.Equal(t, "no step records found for this recipe", NoRows("step", "recipe").Error())
	assert.Equal(t, "the referenced user (id 99) does not exist", InvalidReference("user", 99).Error())
	assert.Equal(t, KindInvalidReference, KindOf(UnknownIDs("category")))
	assert.Equal(t, KindConflict, KindOf(DuplicateKey("user", 1)))
	assert.Equal(t, KindInvalidRequest, KindOf(InvalidRequest("bad")))
	assert.Equal(t, ErrorKind(0), KindOf(errors.New("connection reset")))
	assert.Equal(t, "conflict", KindConflict.String())
}
