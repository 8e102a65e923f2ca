package chat

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/heartmarshall/wordtrainer/internal/domain"
)

func (s *Service) train(ctx context.Context, userID domain.UserID, name string) Reply {
	prompt, err := s.quiz.StartSessionByName(ctx, userID, name)
	if err != nil {
		return s.failure(ctx, userID, err, name)
	}

	s.states.Put(userID, Conversation{State: domain.ChatStateAwaitingAnswer, Dictionary: name})
	return reply(s.question(prompt))
}

// answer forwards text to the quiz engine. Text that is not a quiz answer
// gets the main menu.
func (s *Service) answer(ctx context.Context, userID domain.UserID, text string) Reply {
	out, err := s.quiz.SubmitAnswer(ctx, userID, text)
	if err != nil {
		r := s.failure(ctx, userID, err, s.states.Get(userID).Dictionary)
		if !retryable(err) {
			return r
		}
		// The session did not advance; repeat the pending question.
		if prompt, ok := s.quiz.CurrentPrompt(userID); ok {
			r.Text += "\n\n" + s.question(prompt)
		}
		return r
	}

	switch out.Kind {
	case domain.OutcomeHint:
		return reply(fmt.Sprintf(s.msg.Hint, html.EscapeString(out.Hint.Join(translationsDisplaySep))))
	case domain.OutcomeNext:
		return reply(s.question(out.Prompt))
	case domain.OutcomeCompleted:
		s.states.Put(userID, idle())
		return s.result(out.Result)
	default:
		return s.unknown(userID)
	}
}

func (s *Service) question(p domain.Prompt) string {
	return fmt.Sprintf(s.msg.Question, html.EscapeString(p.Term), p.Position, p.Total)
}

func (s *Service) result(r *domain.SessionResult) Reply {
	var b strings.Builder
	fmt.Fprintf(&b, s.msg.ResultCorrect, r.Correct, r.Total)
	if len(r.Mistakes) > 0 {
		b.WriteString(s.msg.ResultMistakes)
		for _, m := range r.Mistakes {
			fmt.Fprintf(&b, "%s — %s\n",
				html.EscapeString(m.Term),
				html.EscapeString(m.Expected.Join(translationsDisplaySep)),
			)
		}
	}

	return reply(strings.TrimRight(b.String(), "\n"),
		row(s.button(s.msg.TrainButton, withName(PrefixTrain, r.DictionaryName))),
		row(s.button(s.msg.Back, withName(PrefixDictionary, r.DictionaryName))),
	)
}

func (s *Service) showRating(ctx context.Context, userID domain.UserID, name string) Reply {
	dict, err := s.dictionaries.ResolveDictionary(ctx, userID, name)
	if err != nil {
		return s.failure(ctx, userID, err, name)
	}
	back := row(s.button(s.msg.Back, withName(PrefixDictionary, dict.Name)))

	rating, err := s.quiz.GetRatingByName(ctx, userID, dict.Name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return reply(s.msg.NoRating, back)
	case err != nil:
		return s.failure(ctx, userID, err, dict.Name)
	}

	return reply(fmt.Sprintf(s.msg.RatingReport,
		html.EscapeString(dict.Name),
		rating.LastScore, rating.TotalWords,
		rating.BestScore, rating.TotalWords,
	), back)
}
