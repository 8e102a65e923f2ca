package chat

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"

	"github.com/heartmarshall/wordtrainer/internal/domain"
	"github.com/heartmarshall/wordtrainer/internal/service/dictionary"
)

func (s *Service) translateMenu() Reply {
	return reply(s.msg.TranslateMenu,
		row(s.button(s.msg.ToEnglishButton, CallbackToEnglish)),
		row(s.button(s.msg.ToRussianButton, CallbackToRussian)),
		row(s.button(s.msg.Back, CallbackMainMenu)),
	)
}

func (s *Service) askTranslateWord(userID domain.UserID, dir domain.TranslationDirection) Reply {
	s.states.Put(userID, Conversation{State: domain.ChatStateAwaitingTranslationDirectionWord, Direction: dir})
	return reply(s.msg.AskTranslateWord, row(s.button(s.msg.Back, CallbackMenuTranslate)))
}

// translate looks the word up and offers the user's dictionaries as save
// targets. The English side always becomes the term.
func (s *Service) translate(ctx context.Context, userID domain.UserID, conv Conversation, text string) Reply {
	if domain.NormalizeText(text) == "" {
		return reply(s.msg.EmptyText)
	}

	source, target := conv.Direction.Languages()
	translated, err := s.translator.Translate(ctx, text, source, target)
	if err != nil {
		s.states.Put(userID, idle())
		if errors.Is(err, domain.ErrNotFound) {
			return reply(fmt.Sprintf(s.msg.NoTranslation, html.EscapeString(text)), row(s.button(s.msg.Back, CallbackMenuTranslate)))
		}
		s.log.WarnContext(ctx, "translation failed",
			slog.Int64("user_id", int64(userID)),
			slog.String("direction", conv.Direction.String()),
			slog.String("error", err.Error()),
		)
		return reply(s.msg.TranslateFailed, row(s.button(s.msg.Back, CallbackMenuTranslate)))
	}

	pending := &PendingTranslation{Term: domain.NormalizeText(text), Translation: domain.NormalizeText(translated)}
	if conv.Direction == domain.DirectionToEnglish {
		pending = &PendingTranslation{Term: domain.NormalizeText(translated), Translation: domain.NormalizeText(text)}
	}

	dicts, err := s.dictionaries.ListDictionaries(ctx, userID)
	if err != nil {
		return s.failure(ctx, userID, err, "")
	}
	if len(dicts) == 0 {
		s.states.Put(userID, idle())
		return reply(s.msg.NoDictsToSave,
			row(s.button(s.msg.CreateDict, CallbackCreateDict)),
			row(s.button(s.msg.Home, CallbackMainMenu)),
		)
	}

	s.states.Put(userID, Conversation{
		State:     domain.ChatStateAwaitingSaveTarget,
		Direction: conv.Direction,
		Pending:   pending,
	})

	rows := s.dictionaryButtons(dicts, PrefixSave)
	rows = append(rows, row(s.button(s.msg.Back, CallbackMainMenu)))
	return reply(fmt.Sprintf(s.msg.Translated, html.EscapeString(text), html.EscapeString(translated)), rows...)
}

func (s *Service) reaskSaveTarget(ctx context.Context, userID domain.UserID, conv Conversation) Reply {
	dicts, err := s.dictionaries.ListDictionaries(ctx, userID)
	if err != nil {
		return s.failure(ctx, userID, err, "")
	}

	rows := s.dictionaryButtons(dicts, PrefixSave)
	rows = append(rows, row(s.button(s.msg.Back, CallbackMainMenu)))
	return reply(s.msg.ChooseSaveTarget, rows...)
}

func (s *Service) saveTranslation(ctx context.Context, userID domain.UserID, name string) Reply {
	conv := s.states.Get(userID)
	if conv.State != domain.ChatStateAwaitingSaveTarget || conv.Pending == nil {
		s.states.Put(userID, idle())
		return reply(s.msg.NothingToSave, row(s.button(s.msg.Home, CallbackMainMenu)))
	}

	res, err := s.dictionaries.AddWord(ctx, dictionary.AddWordInput{
		UserID:       userID,
		Dictionary:   name,
		Term:         conv.Pending.Term,
		Translations: conv.Pending.Translation,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// The pending pair stays so another dictionary can be picked.
			return s.errorReply(ctx, userID, err, name)
		}
		return s.failure(ctx, userID, err, name)
	}

	s.states.Put(userID, idle())
	return reply(fmt.Sprintf(s.msg.SavedTo,
		html.EscapeString(res.Pair.Term),
		html.EscapeString(conv.Pending.Translation),
		html.EscapeString(name),
	), row(s.button(s.msg.Home, CallbackMainMenu)))
}
