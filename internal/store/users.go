package store

import (
	"context"
	"errors"
	"fmt"
	"go-practice/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

type UserRepo struct {
	db DB
}

func NewUserRepo(db DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create stores a user whose password is already hashed. A taken email
// yields ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	query, args, err := squirrel.Insert("users").
		Columns("email", "password", "created_at").
		Values(email, passwordHash, squirrel.Expr("NOW()")).
		Suffix("RETURNING id, email, password, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}
	var user models.User
	if err := pgxscan.Get(ctx, r.db, &user, query, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("user %s: %w", email, ErrDuplicate)
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query, args, err := squirrel.Select("id", "email", "password", "created_at").
		From("users").
		Where("lower(email) = lower(?)", email).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	var user models.User
	if err := pgxscan.Get(ctx, r.db, &user, query, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &user, nil
}
