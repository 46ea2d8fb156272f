package handlers

import (
	"context"
	"go-practice/internal/models"
	"strconv"
	"time"
)

type TaskStore interface {
	List(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error)
	Create(ctx context.Context, userID int64, in models.CreateTask) (*models.Task, error)
	Get(ctx context.Context, userID, id int64) (*models.Task, error)
	Update(ctx context.Context, userID, id int64, in models.UpdateTask) (*models.Task, error)
	Delete(ctx context.Context, userID, id int64) error
}

type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	tasks    TaskStore
	users    UserStore
	db       Pinger
	jwtKey   string
	tokenTTL time.Duration
}

func New(tasks TaskStore, users UserStore, db Pinger, jwtKey string, tokenTTL time.Duration) *Handler {
	return &Handler{tasks: tasks, users: users, db: db, jwtKey: jwtKey, tokenTTL: tokenTTL}
}

func parseID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
