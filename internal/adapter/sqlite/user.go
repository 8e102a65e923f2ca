package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// UserRepo provides chat user persistence backed by SQLite.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new user repository.
func NewUserRepo(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// Ensure registers the user if it is not known yet.
func (r *UserRepo) Ensure(ctx context.Context, id domain.UserID) error {
	query, args, err := builder().
		Insert("users").
		Columns("id").
		Values(int64(id)).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build ensure user: %w", err)
	}

	if _, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return mapError(err, "user", int64(id))
	}
	return nil
}

// GetByID returns a user by primary key.
func (r *UserRepo) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	query, args, err := builder().
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
	if err := QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&rawID, timestamp{&createdAt}); err != nil {
		return nil, mapError(err, "user", int64(id))
	}
	return &domain.User{ID: domain.UserID(rawID), CreatedAt: createdAt}, nil
}
