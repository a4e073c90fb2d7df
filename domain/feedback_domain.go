package domain

import "Recetas-Backend/entities"

type (
	CreateRatingRequest struct {
		ID       *int           `json:"id" validate:"omitempty,gt=0,int32"`
		Score    *int           `json:"score" validate:"required,int32"`
		Date     *entities.Date `json:"date"`
		IDUser   *int           `json:"id_user" validate:"required,int32"`
		IDRecipe *int           `json:"id_recipe" validate:"required,int32"`
	}

	UpdateRatingRequest struct {
		Score    *int           `json:"score" validate:"omitempty,int32"`
		Date     *entities.Date `json:"date"`
		IDUser   *int           `json:"id_user" validate:"omitempty,int32"`
		IDRecipe *int           `json:"id_recipe" validate:"omitempty,int32"`
	}

	CreateCommentRequest struct {
		ID       *int           `json:"id" validate:"omitempty,gt=0,int32"`
		Text     string         `json:"text" validate:"required"`
		Date     *entities.Date `json:"date"`
		IDUser   *int           `json:"id_user" validate:"required,int32"`
		IDRecipe *int           `json:"id_recipe" validate:"required,int32"`
	}

	UpdateCommentRequest struct {
		Text     *string        `json:"text" validate:"omitempty,min=1"`
		Date     *entities.Date `json:"date"`
		IDUser   *int           `json:"id_user" validate:"omitempty,int32"`
		IDRecipe *int           `json:"id_recipe" validate:"omitempty,int32"`
	}
)

func (r CreateRatingRequest) RequestedID() int { return value(r.ID) }

func (r CreateRatingRequest) Entity(id int) entities.Rating {
	return entities.Rating{
		ID:       id,
		Score:    value(r.Score),
		Date:     r.Date,
		IDUser:   value(r.IDUser),
		IDRecipe: value(r.IDRecipe),
	}
}

func (r UpdateRatingRequest) Patch() map[string]any {
	p := patch{}
	setIf(p, "score", r.Score)
	setIf(p, "date", r.Date)
	setIf(p, "id_user", r.IDUser)
	setIf(p, "id_recipe", r.IDRecipe)
	return p
}

func (r CreateCommentRequest) RequestedID() int { return value(r.ID) }

func (r CreateCommentRequest) Entity(id int) entities.Comment {
	return entities.Comment{
		ID:       id,
		Text:     r.Text,
		Date:     r.Date,
		IDUser:   value(r.IDUser),
		IDRecipe: value(r.IDRecipe),
	}
}

func (r UpdateCommentRequest) Patch() map[string]any {
	p := patch{}
	setIf(p, "text", r.Text)
	setIf(p, "date", r.Date)
	setIf(p, "id_user", r.IDUser)
	setIf(p, "id_recipe", r.IDRecipe)
	return p
}
