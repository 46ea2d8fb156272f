package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Hello root")
}

func (h *Handler) GetFoo(c *gin.Context) {
	c.String(http.StatusOK, "Hello get_foo")
}

func (h *Handler) PostFoo(c *gin.Context) {
	c.String(http.StatusOK, "Hello post_foo")
}

func (h *Handler) FooBar(c *gin.Context) {
	c.String(http.StatusOK, "Hello foo_bar")
}
