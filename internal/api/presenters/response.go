package presenters

import (
	"errors"

	"Recetas-Backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SuccessResponse writes data as the whole body.
func SuccessResponse(c *fiber.Ctx, data any, status int) error {
	return c.Status(status).JSON(data)
}

func MessageResponse(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Message: message, Data: data})
}

// ErrorResponse writes the {"message"} envelope. Client errors carry the
// cause in the message; server errors log it and hide it.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if status >= fiber.StatusInternalServerError {
		log.Errorw(message, "error", err, "request_id", c.Locals("requestid"), "path", c.Path())
		return c.Status(status).JSON(Response{Message: message})
	}
	if err != nil {
		message = message + ": " + err.Error()
	}
	return c.Status(status).JSON(Response{Message: message})
}

// FailResponse maps err to its status. Anything that is not a *domain.Error
// is a storage failure.
func FailResponse(c *fiber.Ctx, err error) error {
	var de *domain.Error
	if !errors.As(err, &de) {
		return ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalError, err)
	}
	return c.Status(StatusOf(de.Kind)).JSON(Response{Message: de.Message})
}

func StatusOf(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindInvalidReference, domain.KindInvalidRequest:
		return fiber.StatusBadRequest
	case domain.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler answers errors that escape handlers, such as unknown routes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		message := fe.Message
		if fe.Code == fiber.StatusNotFound {
			message = domain.MessageRouteNotFound
		}
		return c.Status(fe.Code).JSON(Response{Message: message})
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalError, err)
}
