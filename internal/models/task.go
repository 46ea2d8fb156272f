package models

import (
	"time"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusCancelled  TaskStatus = "cancelled"
)

type Task struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Category    string     `json:"category" db:"category"`
	Priority    int32      `json:"priority" db:"priority"`
	Status      TaskStatus `json:"status" db:"status"`
	DueDate     time.Time  `json:"due_date" db:"due_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	UserID      int64      `json:"user_id" db:"user_id"`
}

type CreateTask struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description"`
	Category    string    `json:"category" binding:"max=64"`
	Priority    int32     `json:"priority" binding:"gte=0"`
	DueDate     time.Time `json:"due_date" binding:"required"`
}

// UpdateTask carries a partial update; nil fields are left untouched.
type UpdateTask struct {
	Title       *string     `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string     `json:"description"`
	Category    *string     `json:"category" binding:"omitempty,max=64"`
	Priority    *int32      `json:"priority" binding:"omitempty,gte=0"`
	Status      *TaskStatus `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	DueDate     *time.Time  `json:"due_date"`
}

const (
	DefaultTaskLimit = 50
	MaxTaskLimit     = 200
)

type TaskFilter struct {
	Category *string     `form:"category"`
	Priority *int32      `form:"priority"`
	Status   *TaskStatus `form:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Limit    uint64      `form:"limit"`
	Offset   uint64      `form:"offset"`
}

// PageLimit returns the effective page size. Oversized limits are clamped
// to MaxTaskLimit rather than rejected.
func (f TaskFilter) PageLimit() uint64 {
	if f.Limit == 0 {
		return DefaultTaskLimit
	}
	if f.Limit > MaxTaskLimit {
		return MaxTaskLimit
	}
	return f.Limit
}
