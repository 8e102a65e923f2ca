package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// AddWord stores a word pair. When the term already exists its
// translations are united with the new ones. The dictionary's rating is
// dropped in the same transaction.
func (s *Service) AddWord(ctx context.Context, input AddWordInput) (*AddWordResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	term := domain.NormalizeText(input.Term)
	translations := domain.ParseTranslations(input.Translations)

	var result AddWordResult
	err := s.inLockedDictionary(ctx, input.UserID, input.Dictionary, func(txCtx context.Context, dict *domain.Dictionary) error {
		pair, merged, err := s.upsertPair(txCtx, dict.ID, term, translations)
		if err != nil {
			return err
		}
		result = AddWordResult{Pair: pair, Merged: merged}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word saved",
		slog.Int64("user_id", int64(input.UserID)),
		slog.String("dictionary", input.Dictionary),
		slog.String("term", term),
		slog.Bool("merged", result.Merged),
	)

	return &result, nil
}

// DeleteWord removes the pair for the term. Returns domain.ErrNotFound
// when the dictionary has no such term.
func (s *Service) DeleteWord(ctx context.Context, input DeleteWordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	term := domain.NormalizeText(input.Term)

	err := s.inLockedDictionary(ctx, input.UserID, input.Dictionary, func(txCtx context.Context, dict *domain.Dictionary) error {
		if err := s.words.Delete(txCtx, dict.ID, term); err != nil {
			return fmt.Errorf("delete word: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "word deleted",
		slog.Int64("user_id", int64(input.UserID)),
		slog.String("dictionary", input.Dictionary),
		slog.String("term", term),
	)
	return nil
}

// ListWords returns the pairs of the named dictionary in creation order.
func (s *Service) ListWords(ctx context.Context, userID domain.UserID, name string) ([]domain.WordPair, error) {
	dict, err := s.ResolveDictionary(ctx, userID, name)
	if err != nil {
		return nil, err
	}

	words, err := s.words.ListByDictionary(ctx, dict.ID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// ImportWords adds many pairs in one transaction with a single rating
// invalidation. Invalid lines are skipped and reported.
func (s *Service) ImportWords(ctx context.Context, userID domain.UserID, name string, items []WordPairInput) (*ImportResult, error) {
	if userID == 0 {
		return nil, domain.NewValidationError("user_id", "required")
	}
	if len(items) == 0 {
		return nil, domain.NewValidationError("items", "nothing to import")
	}

	result := &ImportResult{}
	err := s.inLockedDictionary(ctx, userID, name, func(txCtx context.Context, dict *domain.Dictionary) error {
		for i, item := range items {
			if fieldErrs := validatePair(item); len(fieldErrs) > 0 {
				result.Skipped++
				result.Errors = append(result.Errors, ImportError{
					LineNumber: i + 1,
					Term:       item.Term,
					Reason:     fieldErrs[0].Field + ": " + fieldErrs[0].Message,
				})
				continue
			}

			_, merged, err := s.upsertPair(txCtx, dict.ID, domain.NormalizeText(item.Term), domain.ParseTranslations(item.Translations))
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			if merged {
				result.Merged++
			} else {
				result.Created++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "words imported",
		slog.Int64("user_id", int64(userID)),
		slog.String("dictionary", name),
		slog.Int("created", result.Created),
		slog.Int("merged", result.Merged),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

// inLockedDictionary resolves the dictionary, locks its row and runs fn in
// one transaction, then drops the dictionary's rating.
func (s *Service) inLockedDictionary(
	ctx context.Context,
	userID domain.UserID,
	name string,
	fn func(txCtx context.Context, dict *domain.Dictionary) error,
) error {
	name = strings.TrimSpace(name)

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		dict, err := s.dictionaries.GetByName(txCtx, userID, name)
		if err != nil {
			return fmt.Errorf("get dictionary: %w", err)
		}
		if err := s.dictionaries.LockForUpdate(txCtx, dict.ID); err != nil {
			return fmt.Errorf("lock dictionary: %w", err)
		}

		if err := fn(txCtx, dict); err != nil {
			return err
		}

		if err := s.ratings.InvalidateRatingOnWordChange(txCtx, userID, dict.ID); err != nil {
			return fmt.Errorf("invalidate rating: %w", err)
		}
		return nil
	})
}

// upsertPair creates the pair or unites its translations with the stored ones.
func (s *Service) upsertPair(
	ctx context.Context,
	dictionaryID uuid.UUID,
	term string,
	translations domain.TranslationSet,
) (*domain.WordPair, bool, error) {
	existing, err := s.words.GetByTerm(ctx, dictionaryID, term)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get word: %w", err)
	}

	if existing == nil {
		created, createErr := s.words.Create(ctx, &domain.WordPair{
			DictionaryID: dictionaryID,
			Term:         term,
			Translations: translations,
		})
		if createErr != nil {
			return nil, false, fmt.Errorf("create word: %w", createErr)
		}
		return created, false, nil
	}

	merged := existing.Translations.Union(translations)
	if merged.Equal(existing.Translations) {
		return existing, true, nil
	}

	updated, err := s.words.UpdateTranslations(ctx, existing.ID, merged)
	if err != nil {
		return nil, false, fmt.Errorf("update word: %w", err)
	}
	return updated, true, nil
}
