package store

import (
	"context"
	"errors"
	"fmt"
	"go-practice/internal/models"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

var taskColumns = []string{
	"id",
	"title",
	"description",
	"category",
	"priority",
	"status",
	"due_date",
	"created_at",
	"updated_at",
	"user_id",
}

var returningTask = "RETURNING " + strings.Join(taskColumns, ", ")

// TaskRepo stores tasks in Postgres. Every query is scoped by owner.
type TaskRepo struct {
	db DB
}

func NewTaskRepo(db DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// List returns the owner's tasks matching the filter, ordered by id.
func (r *TaskRepo) List(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error) {
	sb := squirrel.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)
	sb = applyTaskFilter(sb, filter)

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	tasks := make([]models.Task, 0)
	if err := pgxscan.Select(ctx, r.db, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("scanning tasks: %w", err)
	}
	return tasks, nil
}

func applyTaskFilter(sb squirrel.SelectBuilder, filter models.TaskFilter) squirrel.SelectBuilder {
	if filter.Category != nil {
		sb = sb.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.Priority != nil {
		sb = sb.Where(squirrel.Eq{"priority": *filter.Priority})
	}
	if filter.Status != nil {
		sb = sb.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	sb = sb.OrderBy("id").Limit(filter.PageLimit())
	if filter.Offset > 0 {
		sb = sb.Offset(filter.Offset)
	}
	return sb
}

// Create inserts a pending task owned by userID and returns the stored row.
func (r *TaskRepo) Create(ctx context.Context, userID int64, in models.CreateTask) (*models.Task, error) {
	query, args, err := squirrel.Insert("tasks").
		Columns("title", "description", "category", "priority", "due_date", "user_id", "status", "created_at", "updated_at").
		Values(
			in.Title,
			in.Description,
			in.Category,
			in.Priority,
			in.DueDate,
			userID,
			string(models.StatusPending),
			squirrel.Expr("NOW()"),
			squirrel.Expr("NOW()"),
		).
		Suffix(returningTask).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}
	var task models.Task
	if err := pgxscan.Get(ctx, r.db, &task, query, args...); err != nil {
		return nil, fmt.Errorf("inserting task: %w", err)
	}
	return &task, nil
}

// Get returns one task by id. Tasks owned by someone else read as ErrNotFound.
func (r *TaskRepo) Get(ctx context.Context, userID, id int64) (*models.Task, error) {
	query, args, err := squirrel.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	var task models.Task
	if err := pgxscan.Get(ctx, r.db, &task, query, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return &task, nil
}

// Update applies the present fields of in and always bumps updated_at.
func (r *TaskRepo) Update(ctx context.Context, userID, id int64, in models.UpdateTask) (*models.Task, error) {
	ub := squirrel.Update("tasks").
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)
	if in.Title != nil {
		ub = ub.Set("title", *in.Title)
	}
	if in.Description != nil {
		ub = ub.Set("description", *in.Description)
	}
	if in.Category != nil {
		ub = ub.Set("category", *in.Category)
	}
	if in.Priority != nil {
		ub = ub.Set("priority", *in.Priority)
	}
	if in.Status != nil {
		ub = ub.Set("status", string(*in.Status))
	}
	if in.DueDate != nil {
		ub = ub.Set("due_date", *in.DueDate)
	}

	query, args, err := ub.
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"user_id": userID}).
		Suffix(returningTask).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update query: %w", err)
	}
	var task models.Task
	if err := pgxscan.Get(ctx, r.db, &task, query, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepo) Delete(ctx context.Context, userID, id int64) error {
	query, args, err := squirrel.Delete("tasks").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete query: %w", err)
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}
