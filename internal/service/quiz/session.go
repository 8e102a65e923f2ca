package quiz

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// session is one shuffled pass over a snapshot of a dictionary.
// Only the owner's goroutine, holding the user lock, mutates it;
// lastActive is also read by the reaper.
type session struct {
	dictionaryID   uuid.UUID
	dictionaryName string
	words          []domain.WordPair
	cursor         int
	correct        int
	mistakes       []domain.Mistake
	lastActive     atomic.Int64
}

func newSession(dict *domain.Dictionary, words []domain.WordPair, now time.Time) *session {
	s := &session{
		dictionaryID:   dict.ID,
		dictionaryName: dict.Name,
		words:          words,
	}
	s.touch(now)
	return s
}

func (s *session) touch(now time.Time) {
	s.lastActive.Store(now.UnixNano())
}

func (s *session) idleSince() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

func (s *session) current() domain.WordPair {
	return s.words[s.cursor]
}

func (s *session) prompt() domain.Prompt {
	return domain.Prompt{
		Term:     s.current().Term,
		Position: s.cursor + 1,
		Total:    len(s.words),
	}
}

func (s *session) isLast() bool {
	return s.cursor == len(s.words)-1
}

// result builds the summary the session would have after one more answer.
func (s *session) result(correct int, mistakes []domain.Mistake) *domain.SessionResult {
	return &domain.SessionResult{
		DictionaryName: s.dictionaryName,
		Total:          len(s.words),
		Correct:        correct,
		Mistakes:       mistakes,
	}
}
