package entities

import "Recetas-Backend/pkg/schema"

const (
	TableUsers              = "users"
	TableRecipes            = "recipes"
	TablePreparationSteps   = "preparation_steps"
	TableIngredients        = "ingredients"
	TableRecipeIngredients  = "recipe_ingredients"
	TableCategories         = "categories"
	TableCuisineTypes       = "cuisine_types"
	TableRecipeCategories   = "recipe_categories"
	TableRecipeCuisineTypes = "recipe_cuisine_types"
	TableRatings            = "ratings"
	TableComments           = "comments"
	TableShoppingLists      = "shopping_lists"
	TableShoppingListItems  = "shopping_list_items"
)

// Association names exposed on Recipe reads.
const (
	AssociationCategories   = "Categories"
	AssociationCuisineTypes = "CuisineTypes"
)

func id() schema.Field { return schema.Field{Column: "id", Type: schema.TypeInteger} }

func integer(col string) schema.Field {
	return schema.Field{Column: col, Type: schema.TypeInteger}
}

func optionalInteger(col string) schema.Field {
	return schema.Field{Column: col, Type: schema.TypeInteger, Nullable: true}
}

func text(col string) schema.Field {
	return schema.Field{Column: col, Type: schema.TypeString}
}

func optionalText(col string) schema.Field {
	return schema.Field{Column: col, Type: schema.TypeString, Nullable: true}
}

func optionalDate(col string) schema.Field {
	return schema.Field{Column: col, Type: schema.TypeDate, Nullable: true}
}

var Schema = schema.MustNewRegistry(
	[]*schema.Entity{
		{
			Table:  TableUsers,
			Label:  "user",
			Fields: []schema.Field{id(), text("username"), optionalText("email"), optionalText("password")},
		},
		{
			Table: TableRecipes,
			Label: "recipe",
			Fields: []schema.Field{
				id(), text("title"), optionalText("description"), optionalInteger("prep_time"),
				optionalInteger("cook_time"), optionalText("difficulty"), integer("id_user"),
			},
			ForeignKeys: []schema.ForeignKey{
				{Column: "id_user", Parent: TableUsers, Label: "user"},
			},
			Unique: []schema.UniqueConstraint{
				{Columns: []string{"title"}, Kind: schema.UniqueValue, Message: "a recipe with this title already exists"},
			},
		},
		{
			Table:  TablePreparationSteps,
			Label:  "preparation step",
			Fields: []schema.Field{id(), integer("order_no"), optionalText("instruction"), integer("id_recipe")},
			ForeignKeys: []schema.ForeignKey{
				{Column: "id_recipe", Parent: TableRecipes, Label: "recipe"},
			},
			Unique: []schema.UniqueConstraint{
				{Columns: []string{"id_recipe", "order_no"}, Kind: schema.UniqueOrdering, Message: "a step with this order number already exists for this recipe"},
			},
		},
		{
			Table:  TableIngredients,
			Label:  "ingredient",
			Fields: []schema.Field{id(), text("name")},
			Unique: []schema.UniqueConstraint{
				{Columns: []string{"name"}, Kind: schema.UniqueValue, Message: "an ingredient with this name already exists"},
			},
		},
		{
			Table: TableRecipeIngredients,
			Label: "recipe ingredient",
			Fields: []schema.Field{
				id(), integer("quantity"), optionalText("unit"), integer("id_ingredient"), integer("id_recipe"),
			},
			ForeignKeys: []schema.ForeignKey{
				{Column: "id_ingredient", Parent: TableIngredients, Label: "ingredient"},
				{Column: "id_recipe", Parent: TableRecipes, Label: "recipe"},
			},
			Unique: []schema.UniqueConstraint{
				{Columns: []string{"id_recipe", "id_ingredient"}, Kind: schema.UniqueAssociation, Message: "this ingredient is already associated with this recipe"},
			},
		},
		{
			Table:  TableCategories,
			Label:  "category",
			Fields: []schema.Field{id(), optionalText("name")},
			Unique: []schema.UniqueConstraint{
				{Columns: []string{"name"}, Kind: schema.UniqueValue, Message: "a category with this name already exists"},
			},
		},
		{
			Table:  TableCuisineTypes,
			Label:  "cuisine type",
			Fields: []schema.Field{id(), optionalText("name")},
		},
		{
			Table:  TableRecipeCategories,
			Label:  "recipe category",
			Fields: []schema.Field{id(), integer("id_category"), integer("id_recipe")},
			ForeignKeys: []schema.ForeignKey{
				{Column: "id_category", Parent: TableCategories, Label: "category"},
				{Column: "id_recipe", Parent: TableRecipes, Label: "recipe"},
			},
		},
		{
			Table:  TableRecipeCuisineTypes,
			Label:  "recipe cuisine type",
			Fields: []schema.Field{id(), integer("id_cuisine_type"), integer("id_recipe")},
			ForeignKeys: []schema.ForeignKey{
				{Column: "id_cuisine_type", Parent: TableCuisineTypes, Label: "cuisine type"},
				{Column: "id_recipe", Parent: TableRecipes, Label: "recipe"},
			},
		},
		{
			Table:  TableRatings,
			Label:  "rating",
			Fields: []schema.Field{id(), integer("score"), optionalDate("date"), integer("id_user"), integer("id_recipe")},
			ForeignKeys: []schema.ForeignKey{
				{Column: "id_user", Parent: TableUsers, Label: "user"},
				{Column: "id_recipe", Parent: TableRecipes, Label: "recipe"},
			},
		},
		{
			Table:  TableComments,
			Label:  "comment",
			Fields: []schema.Field{id(), text("text"), optionalDate("date"), integer("id_user"), integer("id_recipe")},
			ForeignKeys: []schema.ForeignKey{
				{Column: "id_user", Parent: TableUsers, Label: "user"},
				{Column: "id_recipe", Parent: TableRecipes, Label: "recipe"},
			},
		},
		{
			Table:  TableShoppingLists,
			Label:  "shopping list",
			Fields: []schema.Field{id(), text("name"), integer("id_user")},
			ForeignKeys: []schema.ForeignKey{
				{Column: "id_user", Parent: TableUsers, Label: "user"},
			},
			Unique: []schema.UniqueConstraint{
				{Columns: []string{"id_user", "name"}, Kind: schema.UniqueValue, Message: "a shopping list with this name already exists for this user"},
			},
		},
		{
			Table: TableShoppingListItems,
			Label: "shopping list item",
			Fields: []schema.Field{
				id(), integer("quantity"), optionalText("unit"), integer("id_list"), integer("id_ingredient"),
			},
			ForeignKeys: []schema.ForeignKey{
				{Column: "id_list", Parent: TableShoppingLists, Label: "shopping list"},
				{Column: "id_ingredient", Parent: TableIngredients, Label: "ingredient"},
			},
			Unique: []schema.UniqueConstraint{
				{Columns: []string{"id_list", "id_ingredient"}, Kind: schema.UniqueAssociation, Message: "this ingredient is already in this shopping list"},
			},
		},
	},
	[]schema.Association{
		{Name: "ShoppingLists", Kind: schema.OneToMany, Parent: TableUsers, Child: TableShoppingLists, ForeignKey: "id_user"},
		{Name: "Recipes", Kind: schema.OneToMany, Parent: TableUsers, Child: TableRecipes, ForeignKey: "id_user"},
		{Name: "Ratings", Kind: schema.OneToMany, Parent: TableUsers, Child: TableRatings, ForeignKey: "id_user"},
		{Name: "Items", Kind: schema.OneToMany, Parent: TableShoppingLists, Child: TableShoppingListItems, ForeignKey: "id_list"},
		{Name: "ShoppingListItems", Kind: schema.OneToMany, Parent: TableIngredients, Child: TableShoppingListItems, ForeignKey: "id_ingredient"},
		{Name: "Ratings", Kind: schema.OneToMany, Parent: TableRecipes, Child: TableRatings, ForeignKey: "id_recipe"},
		{Name: "Comments", Kind: schema.OneToMany, Parent: TableRecipes, Child: TableComments, ForeignKey: "id_recipe"},
		{Name: "PreparationSteps", Kind: schema.OneToMany, Parent: TableRecipes, Child: TablePreparationSteps, ForeignKey: "id_recipe"},
		{
			Name: "Ingredients", Kind: schema.ManyToMany, Parent: TableRecipes, Child: TableIngredients,
			Junction: TableRecipeIngredients, ParentKey: "id_recipe", ChildKey: "id_ingredient",
		},
		{
			Name: AssociationCategories, Kind: schema.ManyToMany, Parent: TableRecipes, Child: TableCategories,
			Junction: TableRecipeCategories, ParentKey: "id_recipe", ChildKey: "id_category",
		},
		{
			Name: AssociationCuisineTypes, Kind: schema.ManyToMany, Parent: TableRecipes, Child: TableCuisineTypes,
			Junction: TableRecipeCuisineTypes, ParentKey: "id_recipe", ChildKey: "id_cuisine_type",
		},
	},
)

// Models returns one zero value per table, keyed by table name.
func Models() map[string]any {
	return map[string]any{
		TableUsers:              &User{},
		TableRecipes:            &Recipe{},
		TablePreparationSteps:   &PreparationStep{},
		TableIngredients:        &Ingredient{},
		TableRecipeIngredients:  &RecipeIngredient{},
		TableCategories:         &Category{},
		TableCuisineTypes:       &CuisineType{},
		TableRecipeCategories:   &RecipeCategory{},
		TableRecipeCuisineTypes: &RecipeCuisineType{},
		TableRatings:            &Rating{},
		TableComments:           &Comment{},
		TableShoppingLists:      &ShoppingList{},
		TableShoppingListItems:  &ShoppingListItem{},
	}
}
