package translate

import (
	"context"
	"fmt"

	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// Stub translates from a small built-in glossary. It backs local runs
// and tests where no translation service is reachable.
type Stub struct {
	glossary map[string]string
}

// NewStub creates a Stub with the default glossary plus extra entries
// keyed "source:target:text".
func NewStub(extra map[string]string) *Stub {
	g := map[string]string{
		"en:ru:cat":    "кот",
		"en:ru:dog":    "собака",
		"en:ru:house":  "дом",
		"en:ru:water":  "вода",
		"ru:en:кот":    "cat",
		"ru:en:собака": "dog",
		"ru:en:дом":    "house",
		"ru:en:вода":   "water",
	}
	for k, v := range extra {
		g[k] = v
	}
	return &Stub{glossary: g}
}

// Translate returns the glossary entry for text or domain.ErrNotFound.
func (s *Stub) Translate(_ context.Context, text, source, target string) (string, error) {
	key := source + ":" + target + ":" + domain.NormalizeText(text)
	if out, ok := s.glossary[key]; ok {
		return out, nil
	}
	return "", fmt.Errorf("translate %q: %w", text, domain.ErrNotFound)
}
