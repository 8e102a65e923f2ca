package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rating is the per (user, dictionary) score record.
// BestScore never decreases; TotalWords is the snapshot size of the last
// completed session.
type Rating struct {
	UserID       UserID
	DictionaryID uuid.UUID
	LastScore    int
	BestScore    int
	TotalWords   int
	UpdatedAt    time.Time
}

