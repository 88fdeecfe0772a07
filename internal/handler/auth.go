package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listkeep/backend/internal/model"
	"github.com/listkeep/backend/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register creates an account and returns it with a fresh session token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body"})
		return
	}

	user, token, err := h.svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.DataResponse{Data: model.AuthPayload{
		User:  user,
		Token: token,
	}})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body"})
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.DataResponse{Data: model.AuthPayload{
		User:  user,
		Token: token,
	}})
}

// Me returns the account behind the presented token. The row is re-read: a
// valid token for a since-deleted account gets 404, not a ghost user.
func (h *AuthHandler) Me(c *gin.Context) {
	caller := GetAuthUser(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "authentication required"})
		return
	}

	user, err := h.svc.GetUser(c.Request.Context(), caller.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.DataResponse{Data: model.UserPayload{User: user}})
}
