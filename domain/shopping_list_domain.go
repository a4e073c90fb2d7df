package domain

import "Recetas-Backend/entities"

type (
	CreateShoppingListRequest struct {
		ID     *int   `json:"id" validate:"omitempty,gt=0,int32"`
		Name   string `json:"name" validate:"required"`
		IDUser *int   `json:"id_user" validate:"required,int32"`
	}

	UpdateShoppingListRequest struct {
		Name   *string `json:"name" validate:"omitempty,min=1"`
		IDUser *int    `json:"id_user" validate:"omitempty,int32"`
	}

	CreateShoppingListItemRequest struct {
		ID           *int    `json:"id" validate:"omitempty,gt=0,int32"`
		Quantity     *int    `json:"quantity" validate:"required,int32"`
		Unit         *string `json:"unit"`
		IDList       *int    `json:"id_list" validate:"required,int32"`
		IDIngredient *int    `json:"id_ingredient" validate:"required,int32"`
	}

	UpdateShoppingListItemRequest struct {
		Quantity     *int    `json:"quantity" validate:"omitempty,int32"`
		Unit         *string `json:"unit"`
		IDList       *int    `json:"id_list" validate:"omitempty,int32"`
		IDIngredient *int    `json:"id_ingredient" validate:"omitempty,int32"`
	}
)

func (r CreateShoppingListRequest) RequestedID() int { return value(r.ID) }

func (r CreateShoppingListRequest) Entity(id int) entities.ShoppingList {
	return entities.ShoppingList{ID: id, Name: r.Name, IDUser: value(r.IDUser)}
}

func (r UpdateShoppingListRequest) Patch() map[string]any {
	p := patch{}
	setIf(p, "name", r.Name)
	setIf(p, "id_user", r.IDUser)
	return p
}

func (r CreateShoppingListItemRequest) RequestedID() int { return value(r.ID) }

func (r CreateShoppingListItemRequest) Entity(id int) entities.ShoppingListItem {
	return entities.ShoppingListItem{
		ID:           id,
		Quantity:     value(r.Quantity),
		Unit:         r.Unit,
		IDList:       value(r.IDList),
		IDIngredient: value(r.IDIngredient),
	}
}

func (r UpdateShoppingListItemRequest) Patch() map[string]any {
	p := patch{}
	setIf(p, "quantity", r.Quantity)
	setIf(p, "unit", r.Unit)
	setIf(p, "id_list", r.IDList)
	setIf(p, "id_ingredient", r.IDIngredient)
	return p
}
