// Package common holds the response envelope and request helpers
// shared by all web API handlers.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/paygate-app/paygate/pkg/domain"
	"github.com/paygate-app/paygate/pkg/stripeapi"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem document. The status
// is derived from err unless an explicit status is passed.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, status ...int) error {
	code := fiber.StatusInternalServerError
	if err != nil {
		code = ErrorToStatusCode(err)
	}
	if len(status) > 0 {
		code = status[0]
	}

	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   code,
		Instance: c.OriginalURL(),
	}
	if err != nil {
		pd.Detail = err.Error()
	}

	return c.Status(code).JSON(pd, "application/problem+json")
}

// ErrorToStatusCode maps domain and provider errors to HTTP status
// codes. Provider errors carry the remote status through unchanged.
func ErrorToStatusCode(err error) int {
	var apiErr *stripeapi.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		return apiErr.StatusCode
	}

	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCurrencyCode):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrMixedCurrencies):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrAmountMustBePositive):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrSessionAlreadyFinalized):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUserUnauthorized):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. On failure it writes the error response and
// returns the error so the handler can bail out.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest) //nolint:errcheck
		return nil, err
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest) //nolint:errcheck
		return nil, err
	}
	return &input, nil
}
