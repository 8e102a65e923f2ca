package dictionary

import "github.com/heartmarshall/wordtrainer/internal/domain"

// AddWordResult is the stored pair after an add.
// Merged is true when the term already existed and the translations were united.
type AddWordResult struct {
	Pair   *domain.WordPair
	Merged bool
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Created int
	Merged  int
	Skipped int
	Errors  []ImportError
}

// ImportError describes a single rejected line during import.
type ImportError struct {
	LineNumber int
	Term       string
	Reason     string
}
