package entities

type ShoppingList struct {
	ID     int    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name   string `gorm:"column:name;not null;uniqueIndex:idx_shopping_lists_user_name,priority:2" json:"name"`
	IDUser int    `gorm:"column:id_user;not null;uniqueIndex:idx_shopping_lists_user_name,priority:1" json:"id_user"`

	User  *User              `gorm:"foreignKey:IDUser" json:"User,omitempty"`
	Items []ShoppingListItem `gorm:"foreignKey:IDList;constraint:OnDelete:CASCADE" json:"Items,omitempty"`
}

func (ShoppingList) TableName() string { return TableShoppingLists }

func (l ShoppingList) PrimaryKey() int { return l.ID }

func (l ShoppingList) Values() map[string]any {
	return map[string]any{"id": l.ID, "name": l.Name, "id_user": l.IDUser}
}

type ShoppingListItem struct {
	ID           int     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Quantity     int     `gorm:"column:quantity;not null" json:"quantity"`
	Unit         *string `gorm:"column:unit" json:"unit"`
	IDList       int     `gorm:"column:id_list;not null;uniqueIndex:idx_shopping_list_items_pair,priority:1" json:"id_list"`
	IDIngredient int     `gorm:"column:id_ingredient;not null;uniqueIndex:idx_shopping_list_items_pair,priority:2" json:"id_ingredient"`

	Ingredient *Ingredient `gorm:"foreignKey:IDIngredient" json:"Ingredient,omitempty"`
}

func (ShoppingListItem) TableName() string { return TableShoppingListItems }

func (i ShoppingListItem) PrimaryKey() int { return i.ID }

func (i ShoppingListItem) Values() map[string]any {
	return map[string]any{
		"id":            i.ID,
		"quantity":      i.Quantity,
		"unit":          i.Unit,
		"id_list":       i.IDList,
		"id_ingredient": i.IDIngredient,
	}
}
