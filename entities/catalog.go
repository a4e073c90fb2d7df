package entities

type Ingredient struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"column:name;not null;uniqueIndex:idx_ingredients_name" json:"name"`

	RecipeIngredients []RecipeIngredient `gorm:"foreignKey:IDIngredient;constraint:OnDelete:CASCADE" json:"-"`
	ShoppingListItems []ShoppingListItem `gorm:"foreignKey:IDIngredient;constraint:OnDelete:CASCADE" json:"-"`
}

func (Ingredient) TableName() string { return TableIngredients }

func (i Ingredient) PrimaryKey() int { return i.ID }

func (i Ingredient) Values() map[string]any {
	return map[string]any{"id": i.ID, "name": i.Name}
}

type Category struct {
	ID   int     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name *string `gorm:"column:name;uniqueIndex:idx_categories_name" json:"name"`

	RecipeCategories []RecipeCategory `gorm:"foreignKey:IDCategory;constraint:OnDelete:CASCADE" json:"-"`
}

func (Category) TableName() string { return TableCategories }

func (c Category) PrimaryKey() int { return c.ID }

func (c Category) Values() map[string]any {
	return map[string]any{"id": c.ID, "name": c.Name}
}

// CuisineType names are not unique.
type CuisineType struct {
	ID   int     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name *string `gorm:"column:name" json:"name"`

	RecipeCuisineTypes []RecipeCuisineType `gorm:"foreignKey:IDCuisineType;constraint:OnDelete:CASCADE" json:"-"`
}

func (CuisineType) TableName() string { return TableCuisineTypes }

func (c CuisineType) PrimaryKey() int { return c.ID }

func (c CuisineType) Values() map[string]any {
	return map[string]any{"id": c.ID, "name": c.Name}
}
