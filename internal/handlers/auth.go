package handlers

import (
	"errors"
	"go-practice/internal/middleware"
	"go-practice/internal/models"
	"go-practice/internal/store"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) Register(c *gin.Context) {
	var request models.Credentials
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBindError(c, err, "request body")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.users.Create(c.Request.Context(), strings.ToLower(request.Email), string(hashed))
	if errors.Is(err, store.ErrDuplicate) {
		_ = c.Error(err)
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "email already registered"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c *gin.Context) {
	var request models.Credentials
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBindError(c, err, "request body")
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), request.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}

	token, err := middleware.IssueToken(h.jwtKey, user.ID, h.tokenTTL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Token{Token: token})
}
