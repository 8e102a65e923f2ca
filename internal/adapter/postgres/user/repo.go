// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/wordtrainer/internal/adapter/postgres"
	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// Repo provides chat user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Ensure registers the user if it is not known yet.
func (r *Repo) Ensure(ctx context.Context, id domain.UserID) error {
	query, args, err := postgres.Builder().
		Insert("users").
		Columns("id").
		Values(int64(id)).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build ensure user: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user", int64(id))
	}
	return nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select("id", "created_at").
		From("users").
		Where(squirrel.Eq{"id": int64(id)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	var (
		rawID     int64
		createdAt time.Time
	)
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&rawID, &createdAt); err != nil {
		return nil, postgres.MapError(err, "user", int64(id))
	}

	return &domain.User{ID: domain.UserID(rawID), CreatedAt: createdAt}, nil
}
