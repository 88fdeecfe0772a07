package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listkeep/backend/internal/model"
	"github.com/listkeep/backend/internal/service"
	"github.com/rs/zerolog"
)

// writeServiceError is the single place service errors become HTTP responses.
// Validation failures carry their own message; everything unexpected is logged
// server-side and surfaced as a generic 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "invalid email or password"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, model.ErrorResponse{Error: "email already registered"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "not found"})
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).
			Str("path", c.FullPath()).
			Msg("unhandled service error")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "server error"})
	}
}
