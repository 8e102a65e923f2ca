package dictionary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	Ensure(ctx context.Context, id domain.UserID) error
}

type dictionaryRepo interface {
	Create(ctx context.Context, d *domain.Dictionary) (*domain.Dictionary, error)
	GetByName(ctx context.Context, userID domain.UserID, name string) (*domain.Dictionary, error)
	ListByUser(ctx context.Context, userID domain.UserID) ([]domain.Dictionary, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) error
}

type wordRepo interface {
	ListByDictionary(ctx context.Context, dictionaryID uuid.UUID) ([]domain.WordPair, error)
	GetByTerm(ctx context.Context, dictionaryID uuid.UUID, term string) (*domain.WordPair, error)
	Create(ctx context.Context, w *domain.WordPair) (*domain.WordPair, error)
	UpdateTranslations(ctx context.Context, id uuid.UUID, translations domain.TranslationSet) (*domain.WordPair, error)
	Delete(ctx context.Context, dictionaryID uuid.UUID, term string) error
}

// ratingInvalidator drops the rating of a dictionary whose word set changed.
type ratingInvalidator interface {
	InvalidateRatingOnWordChange(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service manages users, dictionaries and their word pairs.
type Service struct {
	log          *slog.Logger
	users        userRepo
	dictionaries dictionaryRepo
	words        wordRepo
	ratings      ratingInvalidator
	tx           txManager
}

// NewService creates a new Dictionary service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	dictionaries dictionaryRepo,
	words wordRepo,
	ratings ratingInvalidator,
	tx txManager,
) *Service {
	return &Service{
		log:          logger.With("service", "dictionary"),
		users:        users,
		dictionaries: dictionaries,
		words:        words,
		ratings:      ratings,
		tx:           tx,
	}
}
