package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/wordtrainer/internal/adapter/postgres"
	pgdictionary "github.com/heartmarshall/wordtrainer/internal/adapter/postgres/dictionary"
	pgrating "github.com/heartmarshall/wordtrainer/internal/adapter/postgres/rating"
	pguser "github.com/heartmarshall/wordtrainer/internal/adapter/postgres/user"
	pgword "github.com/heartmarshall/wordtrainer/internal/adapter/postgres/word"
	"github.com/heartmarshall/wordtrainer/internal/adapter/sqlite"
	"github.com/heartmarshall/wordtrainer/internal/config"
	"github.com/heartmarshall/wordtrainer/internal/domain"
)

type userStore interface {
	Ensure(ctx context.Context, id domain.UserID) error
}

type dictionaryStore interface {
	Create(ctx context.Context, d *domain.Dictionary) (*domain.Dictionary, error)
	GetByID(ctx context.Context, userID domain.UserID, id uuid.UUID) (*domain.Dictionary, error)
	GetByName(ctx context.Context, userID domain.UserID, name string) (*domain.Dictionary, error)
	ListByUser(ctx context.Context, userID domain.UserID) ([]domain.Dictionary, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) error
}

type wordStore interface {
	ListByDictionary(ctx context.Context, dictionaryID uuid.UUID) ([]domain.WordPair, error)
	GetByTerm(ctx context.Context, dictionaryID uuid.UUID, term string) (*domain.WordPair, error)
	Create(ctx context.Context, w *domain.WordPair) (*domain.WordPair, error)
	UpdateTranslations(ctx context.Context, id uuid.UUID, translations domain.TranslationSet) (*domain.WordPair, error)
	Delete(ctx context.Context, dictionaryID uuid.UUID, term string) error
}

type ratingStore interface {
	Get(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID) (*domain.Rating, error)
	Upsert(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID, lastScore, totalWords int) (*domain.Rating, error)
	DeleteByDictionary(ctx context.Context, dictionaryID uuid.UUID) (int64, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store bundles the repositories of one storage backend.
type Store struct {
	Users        userStore
	Dictionaries dictionaryStore
	Words        wordStore
	Ratings      ratingStore
	Tx           txRunner

	driver string
	ping   func(ctx context.Context) error
	close  func()
}

// Driver names the backend, config.DriverPostgres or config.DriverSQLite.
func (s *Store) Driver() string {
	return s.driver
}

// Ping checks the backend connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the backend connection.
func (s *Store) Close() {
	s.close()
}

// OpenStore connects to the configured backend and applies pending
// migrations unless cfg.SkipMigrations is set.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if !cfg.SkipMigrations {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		logger.InfoContext(ctx, "store opened", slog.String("driver", cfg.Driver))
		return newPostgresStore(pool), nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if !cfg.SkipMigrations {
			if err := sqlite.Migrate(ctx, db, logger); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		logger.InfoContext(ctx, "store opened",
			slog.String("driver", cfg.Driver),
			slog.String("path", cfg.SQLitePath),
		)
		return newSQLiteStore(db), nil
	}
	return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
}

func newPostgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Users:        pguser.New(pool),
		Dictionaries: pgdictionary.New(pool),
		Words:        pgword.New(pool),
		Ratings:      pgrating.New(pool),
		Tx:           postgres.NewTxManager(pool),
		driver:       config.DriverPostgres,
		ping:         pool.Ping,
		close:        pool.Close,
	}
}

func newSQLiteStore(db *sql.DB) *Store {
	return &Store{
		Users:        sqlite.NewUserRepo(db),
		Dictionaries: sqlite.NewDictionaryRepo(db),
		Words:        sqlite.NewWordRepo(db),
		Ratings:      sqlite.NewRatingRepo(db),
		Tx:           sqlite.NewTxManager(db),
		driver:       config.DriverSQLite,
		ping:         db.PingContext,
		close:        func() { _ = db.Close() },
	}
}

// OpenMigrator returns a goose provider for the configured backend. The
// returned func closes every handle it opened.
func OpenMigrator(ctx context.Context, cfg config.DatabaseConfig) (*goose.Provider, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		provider, closeDB, err := postgres.NewMigrator(pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return provider, func() { _ = closeDB(); pool.Close() }, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		provider, err := sqlite.NewMigrator(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return provider, func() { _ = db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
}
