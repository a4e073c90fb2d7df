package domain

import "Recetas-Backend/entities"

type (
	CreateIngredientRequest struct {
		ID   *int   `json:"id" validate:"omitempty,gt=0,int32"`
		Name string `json:"name" validate:"required"`
	}

	UpdateIngredientRequest struct {
		Name *string `json:"name" validate:"omitempty,min=1"`
	}

	CreateCategoryRequest struct {
		ID   *int    `json:"id" validate:"omitempty,gt=0,int32"`
		Name *string `json:"name"`
	}

	UpdateCategoryRequest struct {
		Name *string `json:"name"`
	}

	CreateCuisineTypeRequest struct {
		ID   *int    `json:"id" validate:"omitempty,gt=0,int32"`
		Name *string `json:"name"`
	}

	UpdateCuisineTypeRequest struct {
		Name *string `json:"name"`
	}
)

func (r CreateIngredientRequest) RequestedID() int { return value(r.ID) }

func (r CreateIngredientRequest) Entity(id int) entities.Ingredient {
	return entities.Ingredient{ID: id, Name: r.Name}
}

func (r UpdateIngredientRequest) Patch() map[string]any {
	p := patch{}
	setIf(p, "name", r.Name)
	return p
}

func (r CreateCategoryRequest) RequestedID() int { return value(r.ID) }

func (r CreateCategoryRequest) Entity(id int) entities.Category {
	return entities.Category{ID: id, Name: r.Name}
}

func (r UpdateCategoryRequest) Patch() map[string]any {
	p := patch{}
	setIf(p, "name", r.Name)
	return p
}

func (r CreateCuisineTypeRequest) RequestedID() int { return value(r.ID) }

func (r CreateCuisineTypeRequest) Entity(id int) entities.CuisineType {
	return entities.CuisineType{ID: id, Name: r.Name}
}

func (r UpdateCuisineTypeRequest) Patch() map[string]any {
	p := patch{}
	setIf(p, "name", r.Name)
	return p
}
