// Package importer bulk-loads word lists into a dictionary.
// A word list is CSV: term in the first column, translations in the
// second, several translations separated by ";". Lines starting with "#"
// and a leading "term,translations" header are skipped.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/wordtrainer/internal/service/dictionary"
)

// Line is one parsed word list row with its 1-based line number.
type Line struct {
	Number int
	Pair   dictionary.WordPairInput
}

// ParseError reports a row that could not be read as a pair.
type ParseError struct {
	Line   int
	Reason string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Parse reads a word list. Malformed rows are returned as ParseErrors;
// only an unreadable input fails the whole parse.
func Parse(r io.Reader) ([]Line, []ParseError, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var (
		lines   []Line
		invalid []ParseError
		first   = true
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				invalid = append(invalid, ParseError{Line: perr.Line, Reason: perr.Err.Error()})
				continue
			}
			return nil, nil, fmt.Errorf("read word list: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}

		if len(record) < 2 {
			invalid = append(invalid, ParseError{Line: line, Reason: "expected term and translations"})
			continue
		}

		lines = append(lines, Line{
			Number: line,
			Pair: dictionary.WordPairInput{
				Term:         strings.TrimSpace(record[0]),
				Translations: strings.Join(record[1:], ";"),
			},
		})
	}
	return lines, invalid, nil
}

func isHeader(record []string) bool {
	return len(record) >= 2 &&
		strings.EqualFold(strings.TrimSpace(record[0]), "term") &&
		strings.EqualFold(strings.TrimSpace(record[1]), "translations")
}
