package chat

import (
	"sync"

	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// Conversation is the per-user dialog state. State tags what the next
// text message means; the other fields carry data for that step.
type Conversation struct {
	State       domain.ChatState
	Dictionary  string
	PendingTerm string
	Direction   domain.TranslationDirection
	Pending     *PendingTranslation
}

// PendingTranslation is a looked-up pair waiting for a target dictionary.
type PendingTranslation struct {
	Term        string
	Translation string
}

func idle() Conversation {
	return Conversation{State: domain.ChatStateIdle}
}

// MemoryStore keeps conversations in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	convs map[domain.UserID]Conversation
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{convs: make(map[domain.UserID]Conversation)}
}

// Get returns the user's conversation, Idle when unknown.
func (s *MemoryStore) Get(userID domain.UserID) Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.convs[userID]; ok {
		return c
	}
	return idle()
}

// Put stores the conversation. Idle conversations are dropped.
func (s *MemoryStore) Put(userID domain.UserID, c Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.State == domain.ChatStateIdle || c.State == "" {
		delete(s.convs, userID)
		return
	}
	s.convs[userID] = c
}

// Len returns the number of non-idle conversations.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.convs)
}
