package dictionary

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// TermMaxLen bounds a word pair's source term in runes.
const TermMaxLen = 128

// CreateDictionaryInput holds the parameters for creating a dictionary.
type CreateDictionaryInput struct {
	UserID domain.UserID
	Name   string
}

// Validate checks all fields and collects all errors.
func (i CreateDictionaryInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == 0 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	errs = append(errs, validateName(i.Name)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddWordInput holds the parameters for adding a word pair.
// Translations may carry several values separated by ";".
type AddWordInput struct {
	UserID       domain.UserID
	Dictionary   string
	Term         string
	Translations string
}

// Validate checks all fields and collects all errors.
func (i AddWordInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == 0 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if strings.TrimSpace(i.Dictionary) == "" {
		errs = append(errs, domain.FieldError{Field: "dictionary", Message: "required"})
	}
	errs = append(errs, validatePair(WordPairInput{Term: i.Term, Translations: i.Translations})...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteWordInput holds the parameters for removing a word pair.
type DeleteWordInput struct {
	UserID     domain.UserID
	Dictionary string
	Term       string
}

// Validate checks all fields and collects all errors.
func (i DeleteWordInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == 0 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if strings.TrimSpace(i.Dictionary) == "" {
		errs = append(errs, domain.FieldError{Field: "dictionary", Message: "required"})
	}
	if domain.NormalizeText(i.Term) == "" {
		errs = append(errs, domain.FieldError{Field: "term", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// WordPairInput is a raw term with its ";"-separated translations.
type WordPairInput struct {
	Term         string
	Translations string
}

// Validate checks the pair alone, without a target dictionary.
func (i WordPairInput) Validate() error {
	if errs := validatePair(i); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return []domain.FieldError{{Field: "name", Message: "required"}}
	case utf8.RuneCountInString(name) > domain.DictionaryNameMaxLen:
		return []domain.FieldError{{Field: "name", Message: "max 64 characters"}}
	case strings.ContainsAny(name, "\r\n"):
		return []domain.FieldError{{Field: "name", Message: "must be a single line"}}
	}
	return nil
}

func validatePair(p WordPairInput) []domain.FieldError {
	var errs []domain.FieldError

	term := domain.NormalizeText(p.Term)
	if term == "" {
		errs = append(errs, domain.FieldError{Field: "term", Message: "required"})
	}
	if utf8.RuneCountInString(term) > TermMaxLen {
		errs = append(errs, domain.FieldError{Field: "term", Message: "max 128 characters"})
	}
	if domain.ParseTranslations(p.Translations).IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "translations", Message: "at least one translation required"})
	}
	return errs
}
