package entities

import (
	"testing"

	"Recetas-Backend/pkg/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelsCoverTheSchema(t *testing.T) {
	models := Models()
	order := Schema.DependencyOrder()
	require.Len(t, models, len(order))

	for _, table := range order {
		model, ok := models[table]
		require.True(t, ok, "no model for %s", table)
		m, ok := model.(schema.Model)
		require.True(t, ok, "%s does not implement schema.Model", table)
		assert.Equal(t, table, m.TableName())

		entity := Schema.MustEntity(table)
		for col := range m.Values() {
			_, ok := entity.Field(col)
			assert.True(t, ok, "%s.%s is not a declared field", table, col)
		}
	}
}

func TestRecipeDependents(t *testing.T) {
	var tables []string
	for _, d := range Schema.Dependents(TableRecipes) {
		assert.Equal(t, "id_recipe", d.Column)
		tables = append(tables, d.Table)
	}
	assert.ElementsMatch(t, []string{
		TableComments, TablePreparationSteps, TableRatings,
		TableRecipeCategories, TableRecipeCuisineTypes, TableRecipeIngredients,
	}, tables)
}

func TestUserCascadeReachesShoppingListItems(t *testing.T) {
	var tables []string
	for _, d := range Schema.Dependents(TableUsers) {
		tables = append(tables, d.Table)
	}
	assert.ElementsMatch(t, []string{TableComments, TableRatings, TableRecipes, TableShoppingLists}, tables)
	assert.Equal(t, []schema.Dependent{{Table: TableShoppingListItems, Column: "id_list"}}, Schema.Dependents(TableShoppingLists))
}

func TestManyToManyAssociations(t *testing.T) {
	a, ok := Schema.Association(TableRecipes, AssociationCategories)
	require.True(t, ok)
	assert.Equal(t, TableRecipeCategories, a.Junction)
	assert.Equal(t, "id_category", a.ChildKey)

	a, ok = Schema.Association(TableRecipes, AssociationCuisineTypes)
	require.True(t, ok)
	assert.Equal(t, TableRecipeCuisineTypes, a.Junction)
	assert.Equal(t, "id_cuisine_type", a.ChildKey)
}
