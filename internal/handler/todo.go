package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/listkeep/backend/internal/model"
	"github.com/listkeep/backend/internal/service"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

func (h *TodoHandler) List(c *gin.Context) {
	caller := GetAuthUser(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "authentication required"})
		return
	}

	todos, err := h.svc.List(c.Request.Context(), caller)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.DataResponse{Data: todos})
}

func (h *TodoHandler) Create(c *gin.Context) {
	caller := GetAuthUser(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "authentication required"})
		return
	}

	var req model.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body"})
		return
	}

	todo, err := h.svc.Create(c.Request.Context(), caller, req.Text)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.DataResponse{Data: todo})
}

func (h *TodoHandler) Update(c *gin.Context) {
	caller := GetAuthUser(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "authentication required"})
		return
	}

	todoID, ok := parseTodoID(c)
	if !ok {
		return
	}

	var req model.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "completed must be a boolean"})
		return
	}
	if req.Completed == nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "completed must be a boolean"})
		return
	}

	todo, err := h.svc.SetCompleted(c.Request.Context(), caller, todoID, *req.Completed)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.DataResponse{Data: todo})
}

func (h *TodoHandler) Delete(c *gin.Context) {
	caller := GetAuthUser(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "authentication required"})
		return
	}

	todoID, ok := parseTodoID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), caller, todoID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "todo deleted"})
}

// parseTodoID treats a non-numeric id the same as an unknown one; both are
// "not found" to the caller.
func parseTodoID(c *gin.Context) (int64, bool) {
	todoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "not found"})
		return 0, false
	}
	return todoID, true
}
