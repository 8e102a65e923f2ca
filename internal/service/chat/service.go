package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wordtrainer/internal/config"
	"github.com/heartmarshall/wordtrainer/internal/domain"
	"github.com/heartmarshall/wordtrainer/internal/service/dictionary"
	"github.com/heartmarshall/wordtrainer/pkg/keylock"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dictionaryService interface {
	RegisterUser(ctx context.Context, userID domain.UserID) error
	CreateDictionary(ctx context.Context, input dictionary.CreateDictionaryInput) (*domain.Dictionary, error)
	ListDictionaries(ctx context.Context, userID domain.UserID) ([]domain.Dictionary, error)
	ResolveDictionary(ctx context.Context, userID domain.UserID, name string) (*domain.Dictionary, error)
	AddWord(ctx context.Context, input dictionary.AddWordInput) (*dictionary.AddWordResult, error)
	DeleteWord(ctx context.Context, input dictionary.DeleteWordInput) error
	ListWords(ctx context.Context, userID domain.UserID, name string) ([]domain.WordPair, error)
}

type quizEngine interface {
	StartSessionByName(ctx context.Context, userID domain.UserID, name string) (domain.Prompt, error)
	SubmitAnswer(ctx context.Context, userID domain.UserID, raw string) (domain.AnswerOutcome, error)
	GetRatingByName(ctx context.Context, userID domain.UserID, name string) (*domain.Rating, error)
	CurrentPrompt(userID domain.UserID) (domain.Prompt, bool)
}

type translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

type stateStore interface {
	Get(userID domain.UserID) Conversation
	Put(userID domain.UserID, c Conversation)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service turns user messages and button presses into replies. Every user
// has an explicit Conversation state; text is dispatched on that state.
type Service struct {
	log          *slog.Logger
	dictionaries dictionaryService
	quiz         quizEngine
	translator   translator
	states       stateStore
	msg          *messages

	users keylock.Map[domain.UserID]
}

// NewService creates a new chat Service.
func NewService(
	logger *slog.Logger,
	dictionaries dictionaryService,
	quiz quizEngine,
	translator translator,
	states stateStore,
	cfg config.ChatConfig,
) *Service {
	return &Service{
		log:          logger.With("service", "chat"),
		dictionaries: dictionaries,
		quiz:         quiz,
		translator:   translator,
		states:       states,
		msg:          catalog(cfg.Locale),
	}
}

// HandleText handles a plain text message.
func (s *Service) HandleText(ctx context.Context, userID domain.UserID, text string) Reply {
	unlock := s.users.Lock(userID)
	defer unlock()

	text = strings.TrimSpace(text)
	if text == CommandStart {
		return s.start(ctx, userID)
	}

	conv := s.states.Get(userID)
	switch conv.State {
	case domain.ChatStateAwaitingDictionaryName:
		return s.createDictionary(ctx, userID, text)
	case domain.ChatStateAwaitingWord:
		return s.acceptTerm(userID, conv, text)
	case domain.ChatStateAwaitingTranslation:
		return s.saveWord(ctx, userID, conv, text)
	case domain.ChatStateAwaitingDeleteWord:
		return s.deleteWord(ctx, userID, conv, text)
	case domain.ChatStateAwaitingTranslationDirectionWord:
		return s.translate(ctx, userID, conv, text)
	case domain.ChatStateAwaitingSaveTarget:
		return s.reaskSaveTarget(ctx, userID, conv)
	default:
		return s.answer(ctx, userID, text)
	}
}

// HandleCallback handles an inline button press.
func (s *Service) HandleCallback(ctx context.Context, userID domain.UserID, data string) Reply {
	unlock := s.users.Lock(userID)
	defer unlock()

	switch data {
	case CallbackMainMenu:
		s.states.Put(userID, idle())
		return s.mainMenu()
	case CallbackMenuDicts:
		s.states.Put(userID, idle())
		return s.dictsMenu()
	case CallbackListDicts:
		s.states.Put(userID, idle())
		return s.listDictionaries(ctx, userID)
	case CallbackCreateDict:
		s.states.Put(userID, Conversation{State: domain.ChatStateAwaitingDictionaryName})
		return reply(s.msg.AskDictName, row(s.button(s.msg.Back, CallbackMenuDicts)))
	case CallbackMenuTranslate:
		s.states.Put(userID, idle())
		return s.translateMenu()
	case CallbackToEnglish:
		return s.askTranslateWord(userID, domain.DirectionToEnglish)
	case CallbackToRussian:
		return s.askTranslateWord(userID, domain.DirectionToRussian)
	}

	prefix, name := splitCallback(data)
	name = strings.TrimSpace(name)
	if name == "" {
		return s.unknown(userID)
	}

	switch prefix {
	case PrefixDictionary:
		s.states.Put(userID, idle())
		return s.dictionaryMenu(ctx, userID, name)
	case PrefixAddWord:
		return s.askTerm(ctx, userID, name)
	case PrefixTrain:
		return s.train(ctx, userID, name)
	case PrefixShowWords:
		s.states.Put(userID, idle())
		return s.showWords(ctx, userID, name)
	case PrefixRating:
		s.states.Put(userID, idle())
		return s.showRating(ctx, userID, name)
	case PrefixDeleteWord:
		return s.askDeleteTerm(ctx, userID, name)
	case PrefixSave:
		return s.saveTranslation(ctx, userID, name)
	}
	return s.unknown(userID)
}

func (s *Service) start(ctx context.Context, userID domain.UserID) Reply {
	s.states.Put(userID, idle())
	if err := s.dictionaries.RegisterUser(ctx, userID); err != nil {
		return s.errorReply(ctx, userID, err, "")
	}
	return s.mainMenu()
}

func (s *Service) unknown(userID domain.UserID) Reply {
	s.states.Put(userID, idle())
	m := s.mainMenu()
	m.Text = s.msg.Unknown
	return m
}

func (s *Service) mainMenu() Reply {
	return reply(s.msg.Welcome,
		row(s.button(s.msg.DictsButton, CallbackMenuDicts)),
		row(s.button(s.msg.TranslateButton, CallbackMenuTranslate)),
	)
}

func (s *Service) button(text, data string) Button {
	return Button{Text: text, Data: data}
}
