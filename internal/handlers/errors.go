package handlers

import (
	"errors"
	"go-practice/internal/models"
	"go-practice/internal/store"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const taskNotFound = "Task not found"

// respondError is the single place where handler errors become responses.
// The wrapped error goes to the request log; not found answers with a fixed
// body. Unclassified errors are reported as 500 with the error text.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: taskNotFound})
	case errors.Is(err, store.ErrDuplicate):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}

// respondBindError reports a body or query that failed to decode or validate.
func respondBindError(c *gin.Context, err error, what string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, snakeCase(fe.Field())+": "+fe.Tag())
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + what, Fields: fields})
		return
	}
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + what})
}

func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
