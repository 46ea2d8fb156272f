package handlers

import (
	"go-practice/internal/middleware"
	"go-practice/internal/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// caller resolves the authenticated user or writes a 401.
func caller(c *gin.Context) (int64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
	}
	return userID, ok
}

// taskID resolves the :id path parameter or writes a 400.
func taskID(c *gin.Context) (int64, bool) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
	}
	return id, ok
}

func (h *Handler) GetTasks(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}

	var filter models.TaskFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err, "query")
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTask(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}

	var request models.CreateTask
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBindError(c, err, "request body")
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), userID, request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	var request models.UpdateTask
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBindError(c, err, "request body")
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), userID, id, request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Task deleted successfully"})
}
