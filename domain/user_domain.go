package domain

import "Recetas-Backend/entities"

type (
	CreateUserRequest struct {
		ID       *int    `json:"id" validate:"omitempty,gt=0,int32"`
		Username string  `json:"username" validate:"required"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}

	UpdateUserRequest struct {
		Username *string `json:"username" validate:"omitempty,min=1"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}
)

func (r CreateUserRequest) RequestedID() int { return value(r.ID) }

func (r CreateUserRequest) Entity(id int) entities.User {
	return entities.User{
		ID:       id,
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

func (r UpdateUserRequest) Patch() map[string]any {
	p := patch{}
	setIf(p, "username", r.Username)
	setIf(p, "email", r.Email)
	setIf(p, "password", r.Password)
	return p
}
