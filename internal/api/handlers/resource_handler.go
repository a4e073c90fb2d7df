package handlers

import (
	"fmt"

	"Recetas-Backend/domain"
	"Recetas-Backend/internal/api/presenters"
	"Recetas-Backend/pkg/resource"
	"Recetas-Backend/pkg/schema"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	// ResourceHandler serves the uniform CRUD routes of one entity.
	ResourceHandler interface {
		List(c *fiber.Ctx) error
		Get(c *fiber.Ctx) error
		Create(c *fiber.Ctx) error
		Update(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
		// ListBy serves GET /<parent>/:param, filtering on column.
		ListBy(param, column string) fiber.Handler
	}

	// C and U are the request bodies for create and update.
	resourceHandler[T schema.Model, C resource.CreateRequest[T], U resource.UpdateRequest] struct {
		service   resource.Service[T]
		validator *validator.Validate
	}
)

func NewResourceHandler[T schema.Model, C resource.CreateRequest[T], U resource.UpdateRequest](
	service resource.Service[T],
	validator *validator.Validate,
) ResourceHandler {
	return &resourceHandler[T, C, U]{
		service:   service,
		validator: validator,
	}
}

func (h *resourceHandler[T, C, U]) List(c *fiber.Ctx) error {
	rows, err := h.service.List(c.Context())
	if err != nil {
		return presenters.FailResponse(c, err)
	}
	return presenters.SuccessResponse(c, rows, fiber.StatusOK)
}

func (h *resourceHandler[T, C, U]) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.FailResponse(c, err)
	}

	row, err := h.service.Get(c.Context(), id)
	if err != nil {
		return presenters.FailResponse(c, err)
	}
	return presenters.SuccessResponse(c, row, fiber.StatusOK)
}

func (h *resourceHandler[T, C, U]) ListBy(param, column string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parentID, err := paramID(c, param)
		if err != nil {
			return presenters.FailResponse(c, err)
		}

		rows, err := h.service.ListBy(c.Context(), column, parentID)
		if err != nil {
			return presenters.FailResponse(c, err)
		}
		return presenters.SuccessResponse(c, rows, fiber.StatusOK)
	}
}

func (h *resourceHandler[T, C, U]) Create(c *fiber.Ctx) error {
	req := new(C)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	row, err := h.service.Create(c.Context(), *req)
	if err != nil {
		return presenters.FailResponse(c, err)
	}
	return presenters.SuccessResponse(c, row, fiber.StatusCreated)
}

func (h *resourceHandler[T, C, U]) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.FailResponse(c, err)
	}

	req := new(U)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	row, err := h.service.Update(c.Context(), id, *req)
	if err != nil {
		return presenters.FailResponse(c, err)
	}
	return presenters.MessageResponse(c, fiber.StatusOK, fmt.Sprintf(domain.MessageSuccessUpdate, h.service.Label()), row)
}

func (h *resourceHandler[T, C, U]) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.FailResponse(c, err)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return presenters.FailResponse(c, err)
	}
	return presenters.MessageResponse(c, fiber.StatusOK, fmt.Sprintf(domain.MessageSuccessDelete, h.service.Label()), nil)
}

func paramID(c *fiber.Ctx, name string) (int, error) {
	id, err := c.ParamsInt(name)
	if err != nil {
		return 0, domain.InvalidRequest(domain.MessageFailedValidation + ": " + domain.MessageInvalidID)
	}
	return id, nil
}
