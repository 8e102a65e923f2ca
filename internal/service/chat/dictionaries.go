package chat

import (
	"context"
	"fmt"
	"html"

	"github.com/samber/lo"

	"github.com/heartmarshall/wordtrainer/internal/domain"
	"github.com/heartmarshall/wordtrainer/internal/service/dictionary"
)

func (s *Service) dictsMenu() Reply {
	return reply(s.msg.DictsMenu,
		row(s.button(s.msg.MyDicts, CallbackListDicts)),
		row(s.button(s.msg.CreateDict, CallbackCreateDict)),
		row(s.button(s.msg.Back, CallbackMainMenu)),
	)
}

func (s *Service) listDictionaries(ctx context.Context, userID domain.UserID) Reply {
	dicts, err := s.dictionaries.ListDictionaries(ctx, userID)
	if err != nil {
		return s.failure(ctx, userID, err, "")
	}
	if len(dicts) == 0 {
		return reply(s.msg.NoDicts,
			row(s.button(s.msg.CreateDict, CallbackCreateDict)),
			row(s.button(s.msg.Back, CallbackMenuDicts)),
		)
	}

	rows := s.dictionaryButtons(dicts, PrefixDictionary)
	rows = append(rows, row(s.button(s.msg.Back, CallbackMenuDicts)))
	return reply(s.msg.ChooseDict, rows...)
}

func (s *Service) dictionaryButtons(dicts []domain.Dictionary, prefix string) [][]Button {
	return column(lo.Map(dicts, func(d domain.Dictionary, _ int) Button {
		return s.button(d.Name, withName(prefix, d.Name))
	}))
}

func (s *Service) createDictionary(ctx context.Context, userID domain.UserID, text string) Reply {
	dict, err := s.dictionaries.CreateDictionary(ctx, dictionary.CreateDictionaryInput{UserID: userID, Name: text})
	if err != nil {
		return s.failure(ctx, userID, err, text)
	}

	s.states.Put(userID, idle())
	return reply(fmt.Sprintf(s.msg.DictCreated, html.EscapeString(dict.Name)),
		row(s.button(dict.Name, withName(PrefixDictionary, dict.Name))),
		row(s.button(s.msg.Back, CallbackMenuDicts)),
	)
}

func (s *Service) dictionaryMenu(ctx context.Context, userID domain.UserID, name string) Reply {
	dict, err := s.dictionaries.ResolveDictionary(ctx, userID, name)
	if err != nil {
		return s.failure(ctx, userID, err, name)
	}

	n := dict.Name
	return reply(fmt.Sprintf(s.msg.DictMenu, html.EscapeString(n)),
		row(s.button(s.msg.AddWordButton, withName(PrefixAddWord, n))),
		row(s.button(s.msg.TrainButton, withName(PrefixTrain, n))),
		row(s.button(s.msg.ShowButton, withName(PrefixShowWords, n))),
		row(s.button(s.msg.RatingButton, withName(PrefixRating, n))),
		row(s.button(s.msg.DeleteButton, withName(PrefixDeleteWord, n))),
		row(s.button(s.msg.Back, CallbackListDicts)),
	)
}
