package handlers

import (
	"go-practice/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Routes mounts every endpoint of the task service on r.
func (h *Handler) Routes(r *gin.Engine) {
	r.GET("/health", h.Health)

	r.GET("/", h.Root)
	r.GET("/foo", h.GetFoo)
	r.POST("/foo", h.PostFoo)
	r.GET("/foo/bar", h.FooBar)

	api := r.Group("/api")
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	tasks := api.Group("/tasks", middleware.Auth(h.jwtKey))
	tasks.GET("", h.GetTasks)
	tasks.POST("", h.CreateTask)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)
}
