package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/wordtrainer/internal/adapter/provider/translate"
	"github.com/heartmarshall/wordtrainer/internal/config"
	"github.com/heartmarshall/wordtrainer/internal/service/chat"
	"github.com/heartmarshall/wordtrainer/internal/service/dictionary"
	"github.com/heartmarshall/wordtrainer/internal/service/quiz"
)

// Services holds the wired application services.
type Services struct {
	Quiz       *quiz.Engine
	Dictionary *dictionary.Service
	Chat       *chat.Service
	States     *chat.MemoryStore
}

// Translator looks up a translation of text between two languages.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// NewServices wires the services over store. Word changes made through the
// dictionary service invalidate ratings through the quiz engine.
func NewServices(cfg *config.Config, logger *slog.Logger, store *Store, tr Translator, opts ...quiz.Option) *Services {
	engine := quiz.NewEngine(
		logger, store.Dictionaries, store.Words, store.Ratings, store.Tx,
		cfg.Quiz, cfg.Chat.HelpToken(), opts...,
	)

	dictionaryService := dictionary.NewService(
		logger, store.Users, store.Dictionaries, store.Words, engine, store.Tx,
	)

	states := chat.NewMemoryStore()
	chatService := chat.NewService(logger, dictionaryService, engine, tr, states, cfg.Chat)

	return &Services{
		Quiz:       engine,
		Dictionary: dictionaryService,
		Chat:       chatService,
		States:     states,
	}
}

// NewTranslator builds the configured translation provider.
func NewTranslator(cfg config.TranslateConfig, logger *slog.Logger) Translator {
	if cfg.Provider == config.TranslateProviderHTTP {
		return translate.NewHTTPProvider(cfg.BaseURL, cfg.APIKey, cfg.Timeout, logger)
	}
	return translate.NewStub(nil)
}
