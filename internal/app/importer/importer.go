package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordtrainer/internal/domain"
	"github.com/heartmarshall/wordtrainer/internal/service/dictionary"
)

type dictionaryService interface {
	RegisterUser(ctx context.Context, userID domain.UserID) error
	CreateDictionary(ctx context.Context, input dictionary.CreateDictionaryInput) (*domain.Dictionary, error)
	ImportWords(ctx context.Context, userID domain.UserID, name string, items []dictionary.WordPairInput) (*dictionary.ImportResult, error)
}

// Options selects the import target.
type Options struct {
	UserID     domain.UserID
	Dictionary string
	// DryRun validates the rows without writing.
	DryRun bool
}

// Result holds import statistics. Line numbers in Errors refer to the
// word list file.
type Result struct {
	Rows     int
	Created  int
	Merged   int
	Skipped  int
	Errors   []ParseError
	Imported bool
}

// Run registers the user, creates the dictionary when missing and imports
// lines in one transaction.
func Run(ctx context.Context, svc dictionaryService, opts Options, lines []Line, log *slog.Logger) (*Result, error) {
	result := &Result{Rows: len(lines)}

	if opts.DryRun {
		for _, l := range lines {
			if err := l.Pair.Validate(); err != nil {
				result.Skipped++
				result.Errors = append(result.Errors, ParseError{Line: l.Number, Reason: reason(err)})
			}
		}
		result.Created = len(lines) - result.Skipped
		log.InfoContext(ctx, "dry run finished",
			slog.Int("rows", result.Rows),
			slog.Int("valid", result.Created),
			slog.Int("invalid", result.Skipped),
		)
		return result, nil
	}

	if len(lines) == 0 {
		return result, nil
	}

	if err := svc.RegisterUser(ctx, opts.UserID); err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	_, err := svc.CreateDictionary(ctx, dictionary.CreateDictionaryInput{UserID: opts.UserID, Name: opts.Dictionary})
	switch {
	case err == nil:
		log.InfoContext(ctx, "dictionary created", slog.String("dictionary", opts.Dictionary))
	case errors.Is(err, domain.ErrAlreadyExists):
	default:
		return nil, fmt.Errorf("create dictionary: %w", err)
	}

	items := make([]dictionary.WordPairInput, len(lines))
	for i, l := range lines {
		items[i] = l.Pair
	}

	res, err := svc.ImportWords(ctx, opts.UserID, opts.Dictionary, items)
	if err != nil {
		return nil, fmt.Errorf("import words: %w", err)
	}

	result.Imported = true
	result.Created = res.Created
	result.Merged = res.Merged
	result.Skipped = res.Skipped
	for _, e := range res.Errors {
		result.Errors = append(result.Errors, ParseError{Line: lines[e.LineNumber-1].Number, Reason: e.Reason})
	}

	log.InfoContext(ctx, "import finished",
		slog.Int64("user_id", int64(opts.UserID)),
		slog.String("dictionary", opts.Dictionary),
		slog.Int("created", result.Created),
		slog.Int("merged", result.Merged),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}

func reason(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) && len(verr.Errors) > 0 {
		return verr.Errors[0].Field + ": " + verr.Errors[0].Message
	}
	return err.Error()
}
