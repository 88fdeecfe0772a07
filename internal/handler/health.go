package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listkeep/backend/internal/db"
	"github.com/listkeep/backend/internal/model"
	"github.com/rs/zerolog"
)

type HealthHandler struct {
	repo *db.Postgres
}

func NewHealthHandler(repo *db.Postgres) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// Healthz reports liveness and, by pinging the pool, readiness.
func (h *HealthHandler) Healthz(c *gin.Context) {
	if h.repo != nil {
		if err := h.repo.Pool.Ping(c.Request.Context()); err != nil {
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("health check ping failed")
			c.JSON(http.StatusServiceUnavailable, model.HealthResponse{Status: "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, model.HealthResponse{Status: "ok"})
}
