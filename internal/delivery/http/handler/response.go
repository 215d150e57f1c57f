package handler

import (
	"errors"
	"net/http"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a plain success response.
type SuccessResponse struct {
	Message string `json:"message"`
}

// respondError maps domain errors onto HTTP status codes: not-found to 404,
// conflicts to 409, invalid input to 400, everything unexpected to 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrLikeAlreadyExists),
		errors.Is(err, domain.ErrBlockAlreadyExists),
		errors.Is(err, domain.ErrProfileAlreadyExists),
		errors.Is(err, domain.ErrEmailAlreadyTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrCannotLikeSelf),
		errors.Is(err, domain.ErrCannotBlockSelf),
		errors.Is(err, domain.ErrCannotReportSelf),
		errors.Is(err, domain.ErrInvalidReportReason):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
