package quiz

import (
	"context"
	"log/slog"
	"slices"

	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// SubmitAnswer checks raw against the current word of the user's session.
//
// Without a live session the outcome is OutcomeNoOp. The help token yields
// OutcomeHint and leaves the session as it was. Otherwise the answer is
// scored and the session advances (OutcomeNext) or completes
// (OutcomeCompleted). Completion commits the rating first; if that fails
// the session is kept unchanged so the last answer can be resubmitted.
func (e *Engine) SubmitAnswer(ctx context.Context, userID domain.UserID, raw string) (domain.AnswerOutcome, error) {
	unlock := e.users.Lock(userID)
	defer unlock()

	s := e.session(userID)
	if s == nil {
		return domain.AnswerOutcome{Kind: domain.OutcomeNoOp}, nil
	}
	s.touch(e.clock())

	answer := domain.NormalizeText(raw)
	word := s.current()

	if answer == e.helpToken {
		return domain.AnswerOutcome{
			Kind:   domain.OutcomeHint,
			Prompt: s.prompt(),
			Hint:   word.Translations,
		}, nil
	}

	correct := word.Translations.Contains(answer)
	score := s.correct
	mistakes := s.mistakes
	if correct {
		score++
	} else {
		mistakes = append(slices.Clip(mistakes), domain.Mistake{Term: word.Term, Expected: word.Translations})
	}

	if !s.isLast() {
		s.correct, s.mistakes = score, mistakes
		s.cursor++
		return domain.AnswerOutcome{
			Kind:    domain.OutcomeNext,
			Prompt:  s.prompt(),
			Correct: correct,
		}, nil
	}

	result := s.result(score, mistakes)
	if err := e.commitRating(ctx, userID, s, result); err != nil {
		return domain.AnswerOutcome{}, err
	}
	e.dropSession(userID, s)

	e.log.InfoContext(ctx, "session completed",
		slog.Int64("user_id", int64(userID)),
		slog.String("dictionary_id", s.dictionaryID.String()),
		slog.Int("correct", result.Correct),
		slog.Int("total", result.Total),
	)

	return domain.AnswerOutcome{
		Kind:    domain.OutcomeCompleted,
		Correct: correct,
		Result:  result,
	}, nil
}

// commitRating records the finished session under the dictionary row lock
// so it cannot interleave with a word change invalidating the rating.
func (e *Engine) commitRating(ctx context.Context, userID domain.UserID, s *session, result *domain.SessionResult) error {
	return e.write(ctx, "save rating", func(ctx context.Context) error {
		return e.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if err := e.dictionaries.LockForUpdate(txCtx, s.dictionaryID); err != nil {
				return err
			}
			_, err := e.ratings.Upsert(txCtx, userID, s.dictionaryID, result.Correct, result.Total)
			return err
		})
	})
}
