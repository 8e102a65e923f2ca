package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// RegisterUser records the user if it is not known yet.
func (s *Service) RegisterUser(ctx context.Context, userID domain.UserID) error {
	if userID == 0 {
		return domain.NewValidationError("user_id", "required")
	}
	if err := s.users.Ensure(ctx, userID); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}
	return nil
}

// CreateDictionary creates a named dictionary. Names are unique per user;
// a duplicate yields domain.ErrAlreadyExists.
func (s *Service) CreateDictionary(ctx context.Context, input CreateDictionaryInput) (*domain.Dictionary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)

	var created *domain.Dictionary
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Ensure(txCtx, input.UserID); err != nil {
			return fmt.Errorf("ensure user: %w", err)
		}

		var createErr error
		created, createErr = s.dictionaries.Create(txCtx, &domain.Dictionary{
			UserID: input.UserID,
			Name:   name,
		})
		if createErr != nil {
			return fmt.Errorf("create dictionary: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dictionary created",
		slog.Int64("user_id", int64(input.UserID)),
		slog.String("dictionary_id", created.ID.String()),
		slog.String("name", name),
	)

	return created, nil
}

// ListDictionaries returns the user's dictionaries in creation order.
func (s *Service) ListDictionaries(ctx context.Context, userID domain.UserID) ([]domain.Dictionary, error) {
	dicts, err := s.dictionaries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list dictionaries: %w", err)
	}
	return dicts, nil
}

// ResolveDictionary looks a dictionary up by its display name.
func (s *Service) ResolveDictionary(ctx context.Context, userID domain.UserID, name string) (*domain.Dictionary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	dict, err := s.dictionaries.GetByName(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("get dictionary: %w", err)
	}
	return dict, nil
}
