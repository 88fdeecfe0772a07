package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/listkeep/backend/internal/config"
	"github.com/listkeep/backend/internal/db"
	"github.com/listkeep/backend/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter wires middleware and routes. Everything under /todos and /auth/me
// sits behind the auth middleware; register and login are the only
// pre-authentication routes.
func NewRouter(
	logger zerolog.Logger,
	cfg config.HTTPConfig,
	repo *db.Postgres,
	authSvc *service.AuthService,
	todoSvc *service.TodoService,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.Use(CORSMiddleware(cfg.AllowedOrigins))

	healthHandler := NewHealthHandler(repo)
	authHandler := NewAuthHandler(authSvc)
	todoHandler := NewTodoHandler(todoSvc)

	r.GET("/healthz", healthHandler.Healthz)

	auth := r.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", AuthMiddleware(authSvc), authHandler.Me)

	todos := r.Group("/todos", AuthMiddleware(authSvc))
	todos.GET("", todoHandler.List)
	todos.POST("", todoHandler.Create)
	todos.PATCH("/:id", todoHandler.Update)
	todos.DELETE("/:id", todoHandler.Delete)

	return r
}
