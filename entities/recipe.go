package entities

type Recipe struct {
	ID          int     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Title       string  `gorm:"column:title;not null;uniqueIndex:idx_recipes_title" json:"title"`
	Description *string `gorm:"column:description" json:"description"`
	PrepTime    *int    `gorm:"column:prep_time" json:"prep_time"`
	CookTime    *int    `gorm:"column:cook_time" json:"cook_time"`
	Difficulty  *string `gorm:"column:difficulty" json:"difficulty"`
	IDUser      int     `gorm:"column:id_user;not null;index" json:"id_user"`

	User               *User               `gorm:"foreignKey:IDUser" json:"User,omitempty"`
	Steps              []PreparationStep   `gorm:"foreignKey:IDRecipe;constraint:OnDelete:CASCADE" json:"-"`
	Ingredients        []RecipeIngredient  `gorm:"foreignKey:IDRecipe;constraint:OnDelete:CASCADE" json:"-"`
	RecipeCategories   []RecipeCategory    `gorm:"foreignKey:IDRecipe;constraint:OnDelete:CASCADE" json:"-"`
	RecipeCuisineTypes []RecipeCuisineType `gorm:"foreignKey:IDRecipe;constraint:OnDelete:CASCADE" json:"-"`
	Ratings            []Rating            `gorm:"foreignKey:IDRecipe;constraint:OnDelete:CASCADE" json:"-"`
	Comments           []Comment           `gorm:"foreignKey:IDRecipe;constraint:OnDelete:CASCADE" json:"-"`
}

func (Recipe) TableName() string { return TableRecipes }

func (r Recipe) PrimaryKey() int { return r.ID }

func (r Recipe) Values() map[string]any {
	return map[string]any{
		"id":          r.ID,
		"title":       r.Title,
		"description": r.Description,
		"prep_time":   r.PrepTime,
		"cook_time":   r.CookTime,
		"difficulty":  r.Difficulty,
		"id_user":     r.IDUser,
	}
}

type PreparationStep struct {
	ID          int     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	OrderNo     int     `gorm:"column:order_no;not null;uniqueIndex:idx_steps_recipe_order,priority:2" json:"order_no"`
	Instruction *string `gorm:"column:instruction" json:"instruction"`
	IDRecipe    int     `gorm:"column:id_recipe;not null;uniqueIndex:idx_steps_recipe_order,priority:1" json:"id_recipe"`

	Recipe *Recipe `gorm:"foreignKey:IDRecipe" json:"Recipe,omitempty"`
}

func (PreparationStep) TableName() string { return TablePreparationSteps }

func (s PreparationStep) PrimaryKey() int { return s.ID }

func (s PreparationStep) Values() map[string]any {
	return map[string]any{
		"id":          s.ID,
		"order_no":    s.OrderNo,
		"instruction": s.Instruction,
		"id_recipe":   s.IDRecipe,
	}
}

// RecipeIngredient is the junction between Recipe and Ingredient carrying the
// quantity used.
type RecipeIngredient struct {
	ID           int     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Quantity     int     `gorm:"column:quantity;not null" json:"quantity"`
	Unit         *string `gorm:"column:unit" json:"unit"`
	IDIngredient int     `gorm:"column:id_ingredient;not null;uniqueIndex:idx_recipe_ingredients_pair,priority:2" json:"id_ingredient"`
	IDRecipe     int     `gorm:"column:id_recipe;not null;uniqueIndex:idx_recipe_ingredients_pair,priority:1" json:"id_recipe"`

	Ingredient *Ingredient `gorm:"foreignKey:IDIngredient" json:"Ingredient,omitempty"`
	Recipe     *Recipe     `gorm:"foreignKey:IDRecipe" json:"Recipe,omitempty"`
}

func (RecipeIngredient) TableName() string { return TableRecipeIngredients }

func (ri RecipeIngredient) PrimaryKey() int { return ri.ID }

func (ri RecipeIngredient) Values() map[string]any {
	return map[string]any{
		"id":            ri.ID,
		"quantity":      ri.Quantity,
		"unit":          ri.Unit,
		"id_ingredient": ri.IDIngredient,
		"id_recipe":     ri.IDRecipe,
	}
}

type RecipeCategory struct {
	ID         int `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	IDCategory int `gorm:"column:id_category;not null;index" json:"id_category"`
	IDRecipe   int `gorm:"column:id_recipe;not null;index" json:"id_recipe"`

	Category *Category `gorm:"foreignKey:IDCategory" json:"Category,omitempty"`
	Recipe   *Recipe   `gorm:"foreignKey:IDRecipe" json:"Recipe,omitempty"`
}

func (RecipeCategory) TableName() string { return TableRecipeCategories }

func (rc RecipeCategory) PrimaryKey() int { return rc.ID }

func (rc RecipeCategory) Values() map[string]any {
	return map[string]any{
		"id":          rc.ID,
		"id_category": rc.IDCategory,
		"id_recipe":   rc.IDRecipe,
	}
}

type RecipeCuisineType struct {
	ID            int `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	IDCuisineType int `gorm:"column:id_cuisine_type;not null;index" json:"id_cuisine_type"`
	IDRecipe      int `gorm:"column:id_recipe;not null;index" json:"id_recipe"`

	CuisineType *CuisineType `gorm:"foreignKey:IDCuisineType" json:"CuisineType,omitempty"`
	Recipe      *Recipe      `gorm:"foreignKey:IDRecipe" json:"Recipe,omitempty"`
}

func (RecipeCuisineType) TableName() string { return TableRecipeCuisineTypes }

func (rc RecipeCuisineType) PrimaryKey() int { return rc.ID }

func (rc RecipeCuisineType) Values() map[string]any {
	return map[string]any{
		"id":              rc.ID,
		"id_cuisine_type": rc.IDCuisineType,
		"id_recipe":       rc.IDRecipe,
	}
}
