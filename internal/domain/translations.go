package domain

import (
	"slices"
	"strings"
)

// TranslationInputSeparator separates translations in user-typed input.
const TranslationInputSeparator = ";"

// TranslationSet is an immutable set of normalized translations.
// Values are kept sorted and unique; order carries no meaning for matching.
type TranslationSet struct {
	values []string
}

// NewTranslationSet normalizes every value, drops empties and duplicates.
func NewTranslationSet(values ...string) TranslationSet {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := NormalizeText(v); n != "" {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return TranslationSet{values: slices.Compact(out)}
}

// ParseTranslations splits user input on ";" and builds a set from the parts.
func ParseTranslations(raw string) TranslationSet {
	return NewTranslationSet(strings.Split(raw, TranslationInputSeparator)...)
}

// Contains reports whether the normalized candidate is one of the translations.
func (s TranslationSet) Contains(candidate string) bool {
	_, found := slices.BinarySearch(s.values, NormalizeText(candidate))
	return found
}

// Union returns a new set holding the values of both sets.
func (s TranslationSet) Union(other TranslationSet) TranslationSet {
	merged := make([]string, 0, len(s.values)+len(other.values))
	merged = append(merged, s.values...)
	merged = append(merged, other.values...)
	slices.Sort(merged)
	return TranslationSet{values: slices.Compact(merged)}
}

// Equal reports whether both sets hold the same values.
func (s TranslationSet) Equal(other TranslationSet) bool {
	return slices.Equal(s.values, other.values)
}

func (s TranslationSet) Len() int      { return len(s.values) }
func (s TranslationSet) IsEmpty() bool { return len(s.values) == 0 }

// Values returns a sorted copy of the translations.
func (s TranslationSet) Values() []string {
	if s.values == nil {
		return []string{}
	}
	return slices.Clone(s.values)
}

// Join renders the sorted translations with sep.
func (s TranslationSet) Join(sep string) string {
	return strings.Join(s.values, sep)
}

func (s TranslationSet) String() string {
	return s.Join(TranslationInputSeparator)
}
