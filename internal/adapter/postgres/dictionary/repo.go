// Package dictionary implements the Dictionary repository using PostgreSQL.
package dictionary

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/wordtrainer/internal/adapter/postgres"
	"github.com/heartmarshall/wordtrainer/internal/domain"
)

var columns = []string{"id", "user_id", "name", "created_at"}

// Repo provides dictionary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new dictionary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a dictionary. A duplicate (user, name) yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, d *domain.Dictionary) (*domain.Dictionary, error) {
	id := d.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert("dictionaries").
		Columns("id", "user_id", "name").
		Values(id, int64(d.UserID), d.Name).
		Suffix("RETURNING id, user_id, name, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create dictionary: %w", err)
	}

	created, err := scanDictionary(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "dictionary", d.Name)
	}
	return created, nil
}

// GetByID returns a dictionary owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID domain.UserID, id uuid.UUID) (*domain.Dictionary, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id, "user_id": int64(userID)}, id)
}

// GetByName returns the dictionary named name owned by userID.
func (r *Repo) GetByName(ctx context.Context, userID domain.UserID, name string) (*domain.Dictionary, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": int64(userID), "name": name}, name)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, key any) (*domain.Dictionary, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("dictionaries").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get dictionary: %w", err)
	}

	d, err := scanDictionary(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "dictionary", key)
	}
	return d, nil
}

// ListByUser returns the user's dictionaries in creation order.
func (r *Repo) ListByUser(ctx context.Context, userID domain.UserID) ([]domain.Dictionary, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("dictionaries").
		Where(squirrel.Eq{"user_id": int64(userID)}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list dictionaries: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list dictionaries: %w", err)
	}
	defer rows.Close()

	result := []domain.Dictionary{}
	for rows.Next() {
		d, err := scanDictionary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dictionary: %w", err)
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list dictionaries: %w", err)
	}

	return result, nil
}

// LockForUpdate takes a row lock on the dictionary until the surrounding
// transaction ends. Word mutations and rating upserts for the same
// dictionary serialize on this lock.
func (r *Repo) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Select("id").
		From("dictionaries").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("build lock dictionary: %w", err)
	}

	var locked uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&locked); err != nil {
		return postgres.MapError(err, "dictionary", id)
	}
	return nil
}

func scanDictionary(row pgx.Row) (*domain.Dictionary, error) {
	var (
		d         domain.Dictionary
		userID    int64
		createdAt time.Time
	)
	if err := row.Scan(&d.ID, &userID, &d.Name, &createdAt); err != nil {
		return nil, err
	}
	d.UserID = domain.UserID(userID)
	d.CreatedAt = createdAt
	return &d, nil
}
