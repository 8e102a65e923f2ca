package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID is the chat platform's numeric user identifier.
type UserID int64

// DictionaryNameMaxLen bounds dictionary names in runes.
const DictionaryNameMaxLen = 64

// User is a chat user known to the store.
type User struct {
	ID        UserID
	CreatedAt time.Time
}

// Dictionary is a named word list owned by a single user.
// Names are unique per owner.
type Dictionary struct {
	ID        uuid.UUID
	UserID    UserID
	Name      string
	CreatedAt time.Time
}

// WordPair maps a normalized source term to its accepted translations.
// Term is unique within a dictionary; Translations is never empty.
type WordPair struct {
	ID           uuid.UUID
	DictionaryID uuid.UUID
	Term         string
	Translations TranslationSet
	CreatedAt    time.Time
}
