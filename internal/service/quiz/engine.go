package quiz

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/wordtrainer/internal/config"
	"github.com/heartmarshall/wordtrainer/internal/domain"
	"github.com/heartmarshall/wordtrainer/pkg/keylock"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dictionaryRepo interface {
	GetByID(ctx context.Context, userID domain.UserID, id uuid.UUID) (*domain.Dictionary, error)
	GetByName(ctx context.Context, userID domain.UserID, name string) (*domain.Dictionary, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) error
}

type wordRepo interface {
	ListByDictionary(ctx context.Context, dictionaryID uuid.UUID) ([]domain.WordPair, error)
}

type ratingRepo interface {
	Get(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID) (*domain.Rating, error)
	Upsert(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID, lastScore, totalWords int) (*domain.Rating, error)
	DeleteByDictionary(ctx context.Context, dictionaryID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Engine
// ---------------------------------------------------------------------------

// Engine runs quiz sessions. It holds at most one live session per user
// and commits the score to the rating store when a session completes.
// Calls for the same user are serialized; different users run in parallel.
type Engine struct {
	log          *slog.Logger
	dictionaries dictionaryRepo
	words        wordRepo
	ratings      ratingRepo
	tx           txManager
	cfg          config.QuizConfig
	helpToken    string

	clock   func() time.Time
	shuffle func([]domain.WordPair)

	users    keylock.Map[domain.UserID]
	mu       sync.Mutex
	sessions map[domain.UserID]*session
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock replaces time.Now as the engine's time source.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithShuffle replaces the uniform random shuffle applied to every new session.
func WithShuffle(shuffle func([]domain.WordPair)) Option {
	return func(e *Engine) {
		if shuffle != nil {
			e.shuffle = shuffle
		}
	}
}

// NewEngine creates a quiz Engine. helpToken is the normalized word that
// asks for a hint instead of answering.
func NewEngine(
	logger *slog.Logger,
	dictionaries dictionaryRepo,
	words wordRepo,
	ratings ratingRepo,
	tx txManager,
	cfg config.QuizConfig,
	helpToken string,
	opts ...Option,
) *Engine {
	e := &Engine{
		log:          logger.With("service", "quiz"),
		dictionaries: dictionaries,
		words:        words,
		ratings:      ratings,
		tx:           tx,
		cfg:          cfg,
		helpToken:    domain.NormalizeText(helpToken),
		clock:        time.Now,
		shuffle:      shuffleWords,
		sessions:     make(map[domain.UserID]*session),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ActiveSessions returns the number of live sessions.
func (e *Engine) ActiveSessions() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.sessions)
}

// CurrentPrompt returns the prompt the user's live session is waiting on.
func (e *Engine) CurrentPrompt(userID domain.UserID) (domain.Prompt, bool) {
	unlock := e.users.Lock(userID)
	defer unlock()

	s := e.session(userID)
	if s == nil {
		return domain.Prompt{}, false
	}
	return s.prompt(), true
}

func (e *Engine) session(userID domain.UserID) *session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessions[userID]
}

func (e *Engine) putSession(userID domain.UserID, s *session) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sessions[userID] = s
}

// dropSession removes s if it is still the user's live session.
func (e *Engine) dropSession(userID domain.UserID, s *session) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sessions[userID] == s {
		delete(e.sessions, userID)
	}
}

func shuffleWords(words []domain.WordPair) {
	rand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}
