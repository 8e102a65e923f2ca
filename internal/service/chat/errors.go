package chat

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"

	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// failure renders err for the user. Errors the user can fix by repeating
// the step keep the conversation state; all others reset it to Idle.
func (s *Service) failure(ctx context.Context, userID domain.UserID, err error, name string) Reply {
	if !retryable(err) {
		s.states.Put(userID, idle())
	}
	return s.errorReply(ctx, userID, err, name)
}

func retryable(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrStoreUnavailable) ||
		errors.Is(err, domain.ErrAlreadyExists)
}

func (s *Service) errorReply(ctx context.Context, userID domain.UserID, err error, name string) Reply {
	home := row(s.button(s.msg.Home, CallbackMainMenu))

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr) && len(verr.Errors) > 0:
		detail := verr.Errors[0].Field + ": " + verr.Errors[0].Message
		return reply(fmt.Sprintf(s.msg.Invalid, html.EscapeString(detail)), home)
	case errors.Is(err, domain.ErrAlreadyExists):
		return reply(fmt.Sprintf(s.msg.DictExists, html.EscapeString(name)), home)
	case errors.Is(err, domain.ErrEmptyDictionary):
		return reply(s.msg.EmptyDictionary, row(s.button(s.msg.Back, withName(PrefixDictionary, name))))
	case errors.Is(err, domain.ErrNotFound):
		return reply(fmt.Sprintf(s.msg.DictNotFound, html.EscapeString(name)), row(s.button(s.msg.Back, CallbackListDicts)))
	case errors.Is(err, domain.ErrStoreUnavailable):
		s.log.WarnContext(ctx, "store unavailable",
			slog.Int64("user_id", int64(userID)),
			slog.String("error", err.Error()),
		)
		return reply(s.msg.StoreUnavailable, home)
	default:
		s.log.ErrorContext(ctx, "chat request failed",
			slog.Int64("user_id", int64(userID)),
			slog.String("error", err.Error()),
		)
		return reply(s.msg.Internal, home)
	}
}
