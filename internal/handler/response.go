package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rideshare/internal/registry"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// mapErrorToHTTPStatus maps registry errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found: the referenced entity, or any ride satisfying the request.
	case errors.Is(err, registry.ErrUnknownUser),
		errors.Is(err, registry.ErrUnknownVehicle),
		errors.Is(err, registry.ErrNoMatchingRide),
		errors.Is(err, registry.ErrNoSuitableRide),
		errors.Is(err, registry.ErrNoActiveRideForVehicle):
		return http.StatusNotFound

	// Validation errors - Bad Request.
	case errors.Is(err, registry.ErrInvalidCapacity),
		errors.Is(err, registry.ErrUnknownStrategy):
		return http.StatusBadRequest

	// Conflict errors.
	case errors.Is(err, registry.ErrDuplicateUser),
		errors.Is(err, registry.ErrVehicleAlreadyActive):
		return http.StatusConflict

	// Default to internal server error.
	default:
		return http.StatusInternalServerError
	}
}
