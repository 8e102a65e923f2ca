package testhelper

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// SeedUser inserts a user with a random id.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.UserID {
	t.Helper()

	id := domain.UserID(rand.Int64N(1<<52) + 1)
	if _, err := pool.Exec(context.Background(), `INSERT INTO users (id) VALUES ($1)`, int64(id)); err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return id
}

// SeedDictionary inserts a dictionary with a unique name for userID.
func SeedDictionary(t *testing.T, pool *pgxpool.Pool, userID domain.UserID) domain.Dictionary {
	t.Helper()

	d := domain.Dictionary{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "dict-" + uuid.New().String()[:8],
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO dictionaries (id, user_id, name) VALUES ($1, $2, $3) RETURNING created_at`,
		d.ID, int64(userID), d.Name,
	).Scan(&d.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDictionary: %v", err)
	}
	return d
}

// SeedWord inserts a word pair into the dictionary.
func SeedWord(t *testing.T, pool *pgxpool.Pool, dictionaryID uuid.UUID, term string, translations ...string) domain.WordPair {
	t.Helper()

	w := domain.WordPair{
		ID:           uuid.New(),
		DictionaryID: dictionaryID,
		Term:         term,
		Translations: domain.NewTranslationSet(translations...),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO words (id, dictionary_id, term, translations) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		w.ID, dictionaryID, term, w.Translations.Values(),
	).Scan(&w.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedWord: %v", err)
	}
	return w
}
