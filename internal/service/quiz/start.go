package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// StartSession snapshots and shuffles the dictionary's words and opens a
// session on them, replacing any unfinished session of the user.
// An empty dictionary yields domain.ErrEmptyDictionary and leaves the
// previous session untouched.
func (e *Engine) StartSession(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID) (domain.Prompt, error) {
	unlock := e.users.Lock(userID)
	defer unlock()

	var dict *domain.Dictionary
	err := e.read(ctx, "get dictionary", func(ctx context.Context) error {
		var err error
		dict, err = e.dictionaries.GetByID(ctx, userID, dictionaryID)
		return err
	})
	if err != nil {
		return domain.Prompt{}, err
	}
	return e.start(ctx, userID, dict)
}

// StartSessionByName is StartSession for a dictionary addressed by name.
func (e *Engine) StartSessionByName(ctx context.Context, userID domain.UserID, name string) (domain.Prompt, error) {
	unlock := e.users.Lock(userID)
	defer unlock()

	dict, err := e.resolve(ctx, userID, name)
	if err != nil {
		return domain.Prompt{}, err
	}
	return e.start(ctx, userID, dict)
}

func (e *Engine) start(ctx context.Context, userID domain.UserID, dict *domain.Dictionary) (domain.Prompt, error) {
	var words []domain.WordPair
	err := e.read(ctx, "list words", func(ctx context.Context) error {
		var err error
		words, err = e.words.ListByDictionary(ctx, dict.ID)
		return err
	})
	if err != nil {
		return domain.Prompt{}, err
	}
	if len(words) == 0 {
		return domain.Prompt{}, fmt.Errorf("dictionary %s: %w", dict.Name, domain.ErrEmptyDictionary)
	}

	snapshot := slices.Clone(words)
	e.shuffle(snapshot)

	s := newSession(dict, snapshot, e.clock())
	replaced := e.session(userID) != nil
	e.putSession(userID, s)

	e.log.InfoContext(ctx, "session started",
		slog.Int64("user_id", int64(userID)),
		slog.String("dictionary_id", dict.ID.String()),
		slog.Int("words", len(snapshot)),
		slog.Bool("replaced", replaced),
	)

	return s.prompt(), nil
}

func (e *Engine) resolve(ctx context.Context, userID domain.UserID, name string) (*domain.Dictionary, error) {
	var dict *domain.Dictionary
	err := e.read(ctx, "get dictionary", func(ctx context.Context) error {
		var err error
		dict, err = e.dictionaries.GetByName(ctx, userID, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dict, nil
}
