package presenters

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"Recetas-Backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		kind domain.ErrorKind
		want int
	}{
		{kind: domain.KindNotFound, want: fiber.StatusNotFound},
		{kind: domain.KindInvalidReference, want: fiber.StatusBadRequest},
		{kind: domain.KindInvalidRequest, want: fiber.StatusBadRequest},
		{kind: domain.KindConflict, want: fiber.StatusConflict},
		{kind: 0, want: fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.kind))
		})
	}
}

func respond(t *testing.T, handler fiber.Handler) (int, string) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestFailResponse(t *testing.T) {
	status, body := respond(t, func(c *fiber.Ctx) error {
		return FailResponse(c, fmt.Errorf("wrapped: %w", domain.Conflict("a recipe with this title already exists")))
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.JSONEq(t, `{"message":"a recipe with this title already exists"}`, body)

	status, body = respond(t, func(c *fiber.Ctx) error {
		return FailResponse(c, errors.New("pq: password authentication failed"))
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.JSONEq(t, `{"message":"internal server error"}`, body)
}

func TestErrorResponseAppendsClientCause(t *testing.T) {
	status, body := respond(t, func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, errors.New(domain.MessageInvalidID))
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"invalid request: id must be an integer"}`, body)
}

func TestMessageResponseOmitsEmptyData(t *testing.T) {
	_, body := respond(t, func(c *fiber.Ctx) error {
		return MessageResponse(c, fiber.StatusOK, "recipe deleted successfully", nil)
	})
	assert.JSONEq(t, `{"message":"recipe deleted successfully"}`, body)
}

func TestErrorHandler(t *testing.T) {
	status, body := respond(t, func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusMethodNotAllowed, "method not allowed")
	})
	assert.Equal(t, fiber.StatusMethodNotAllowed, status)
	assert.JSONEq(t, `{"message":"method not allowed"}`, body)

	status, body = respond(t, func(c *fiber.Ctx) error {
		return errors.New("unexpected")
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.JSONEq(t, `{"message":"internal server error"}`, body)
}
