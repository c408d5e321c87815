package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/inventor-project/symon/pkg/services"
)

// ErrorBody is the inner error object of every failed response.
type ErrorBody struct {
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// ErrorResponse is the envelope every failed response is wrapped in.
type ErrorResponse struct {
	Status string    `json:"status"`
	Error  ErrorBody `json:"error"`
}

// apiError writes the error envelope. The error_code mirrors the HTTP
// status so clients can ignore the transport layer.
func apiError(c *echo.Context, status int, description string) error {
	return c.JSON(status, ErrorResponse{
		Status: "error",
		Error: ErrorBody{
			ErrorCode:   status,
			Description: description,
		},
	})
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(c *echo.Context, err error) error {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return apiError(c, http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return apiError(c, http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return apiError(c, http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, services.ErrInvalidInput) {
		return apiError(c, http.StatusBadRequest, err.Error())
	}

	slog.Error("Unexpected service error", "error", err)
	return apiError(c, http.StatusInternalServerError, "internal server error")
}
