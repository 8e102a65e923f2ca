package chat

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/heartmarshall/wordtrainer/internal/domain"
	"github.com/heartmarshall/wordtrainer/internal/service/dictionary"
)

const translationsDisplaySep = " / "

func (s *Service) askTerm(ctx context.Context, userID domain.UserID, name string) Reply {
	dict, err := s.dictionaries.ResolveDictionary(ctx, userID, name)
	if err != nil {
		return s.failure(ctx, userID, err, name)
	}

	s.states.Put(userID, Conversation{State: domain.ChatStateAwaitingWord, Dictionary: dict.Name})
	return reply(s.msg.AskTerm, row(s.button(s.msg.Back, withName(PrefixDictionary, dict.Name))))
}

func (s *Service) acceptTerm(userID domain.UserID, conv Conversation, text string) Reply {
	term := domain.NormalizeText(text)
	if term == "" {
		return reply(s.msg.EmptyText)
	}

	conv.State = domain.ChatStateAwaitingTranslation
	conv.PendingTerm = term
	s.states.Put(userID, conv)
	return reply(fmt.Sprintf(s.msg.AskTranslation, html.EscapeString(term)),
		row(s.button(s.msg.Back, withName(PrefixDictionary, conv.Dictionary))))
}

func (s *Service) saveWord(ctx context.Context, userID domain.UserID, conv Conversation, text string) Reply {
	res, err := s.dictionaries.AddWord(ctx, dictionary.AddWordInput{
		UserID:       userID,
		Dictionary:   conv.Dictionary,
		Term:         conv.PendingTerm,
		Translations: text,
	})
	if err != nil {
		return s.failure(ctx, userID, err, conv.Dictionary)
	}

	s.states.Put(userID, idle())
	return reply(fmt.Sprintf(s.msg.WordSaved,
		html.EscapeString(res.Pair.Term),
		html.EscapeString(res.Pair.Translations.Join(translationsDisplaySep)),
	), row(s.button(s.msg.Back, withName(PrefixDictionary, conv.Dictionary))))
}

func (s *Service) askDeleteTerm(ctx context.Context, userID domain.UserID, name string) Reply {
	dict, err := s.dictionaries.ResolveDictionary(ctx, userID, name)
	if err != nil {
		return s.failure(ctx, userID, err, name)
	}

	s.states.Put(userID, Conversation{State: domain.ChatStateAwaitingDeleteWord, Dictionary: dict.Name})
	return reply(s.msg.AskDeleteTerm, row(s.button(s.msg.Back, withName(PrefixDictionary, dict.Name))))
}

func (s *Service) deleteWord(ctx context.Context, userID domain.UserID, conv Conversation, text string) Reply {
	term := domain.NormalizeText(text)
	back := row(s.button(s.msg.Back, withName(PrefixDictionary, conv.Dictionary)))

	err := s.dictionaries.DeleteWord(ctx, dictionary.DeleteWordInput{
		UserID:     userID,
		Dictionary: conv.Dictionary,
		Term:       term,
	})
	switch {
	case err == nil:
		s.states.Put(userID, idle())
		return reply(fmt.Sprintf(s.msg.WordDeleted, html.EscapeString(term)), back)
	case errors.Is(err, domain.ErrNotFound):
		s.states.Put(userID, idle())
		return reply(fmt.Sprintf(s.msg.WordNotFound, html.EscapeString(term)), back)
	default:
		return s.failure(ctx, userID, err, conv.Dictionary)
	}
}

func (s *Service) showWords(ctx context.Context, userID domain.UserID, name string) Reply {
	words, err := s.dictionaries.ListWords(ctx, userID, name)
	if err != nil {
		return s.failure(ctx, userID, err, name)
	}

	back := row(s.button(s.msg.Back, withName(PrefixDictionary, name)))
	if len(words) == 0 {
		return reply(s.msg.NoWords, back)
	}

	var b strings.Builder
	fmt.Fprintf(&b, s.msg.WordsHeader, html.EscapeString(name))
	for _, w := range words {
		fmt.Fprintf(&b, "🔹 <b>%s</b> — %s\n",
			html.EscapeString(w.Term),
			html.EscapeString(w.Translations.Join(translationsDisplaySep)),
		)
	}
	return reply(b.String(), back)
}
