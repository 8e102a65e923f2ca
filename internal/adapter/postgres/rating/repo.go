// Package rating implements the Rating repository using PostgreSQL.
package rating

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/wordtrainer/internal/adapter/postgres"
	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// upsertSuffix applies best_score = max(best_score, last_score) on conflict.
const upsertSuffix = `ON CONFLICT (user_id, dictionary_id) DO UPDATE SET
    last_score  = EXCLUDED.last_score,
    best_score  = GREATEST(ratings.best_score, EXCLUDED.last_score),
    total_words = EXCLUDED.total_words,
    updated_at  = now()
RETURNING user_id, dictionary_id, last_score, best_score, total_words, updated_at`

// Repo provides rating persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new rating repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the rating for (userID, dictionaryID).
func (r *Repo) Get(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID) (*domain.Rating, error) {
	query, args, err := postgres.Builder().
		Select("user_id", "dictionary_id", "last_score", "best_score", "total_words", "updated_at").
		From("ratings").
		Where(squirrel.Eq{"user_id": int64(userID), "dictionary_id": dictionaryID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get rating: %w", err)
	}

	rt, err := scanRating(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "rating", dictionaryID)
	}
	return rt, nil
}

// Upsert records a completed session, creating the rating on first use.
func (r *Repo) Upsert(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID, lastScore, totalWords int) (*domain.Rating, error) {
	query, args, err := postgres.Builder().
		Insert("ratings").
		Columns("user_id", "dictionary_id", "last_score", "best_score", "total_words").
		Values(int64(userID), dictionaryID, lastScore, lastScore, totalWords).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert rating: %w", err)
	}

	rt, err := scanRating(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "rating", dictionaryID)
	}
	return rt, nil
}

// DeleteByDictionary removes every rating of the dictionary.
func (r *Repo) DeleteByDictionary(ctx context.Context, dictionaryID uuid.UUID) (int64, error) {
	query, args, err := postgres.Builder().
		Delete("ratings").
		Where(squirrel.Eq{"dictionary_id": dictionaryID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete ratings: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "rating", dictionaryID)
	}
	return tag.RowsAffected(), nil
}

func scanRating(row pgx.Row) (*domain.Rating, error) {
	var (
		rt     domain.Rating
		userID int64
	)
	if err := row.Scan(&userID, &rt.DictionaryID, &rt.LastScore, &rt.BestScore, &rt.TotalWords, &rt.UpdatedAt); err != nil {
		return nil, err
	}
	rt.UserID = domain.UserID(userID)
	return &rt, nil
}
