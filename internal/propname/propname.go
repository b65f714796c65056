// Package propname turns configuration type and factory identifiers into
// camelCase JSON property names.
package propname

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Kind int

const (
	KindType Kind = iota
	KindFactory
)

func (k Kind) String() string {
	if k == KindFactory {
		return "configuration factory"
	}
	return "configuration type"
}

// Subject identifies the descriptor whose identifier is being normalized.
// It is only used to word errors.
type Subject struct {
	Kind Kind
	ID   string
	Name string
}

var ErrEmptyID = errors.New("id is empty")

type InvalidSymbolError struct {
	Symbol rune
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("contains invalid symbol %q", string(e.Symbol))
}

// suffixes are stripped once each, in this order.
var suffixes = []string{"Type", "RunConfiguration", "Configuration"}

// Normalize returns the property name for raw. The returned error wraps
// ErrEmptyID or an *InvalidSymbolError; no partial name is returned with it.
//
// Separators ('.', ' ', '-', '_') are dropped and upper-case the rune that
// follows them, '#' is dropped once the name differs from raw, and a
// leading upper-case rune is lowered.
// An identifier made only of upper-case runes is lowered entirely, so
// "HTTP" becomes "http".
func Normalize(raw string, subject Subject) (string, error) {
	id := raw
	for _, suffix := range suffixes {
		id = strings.TrimSuffix(id, suffix)
	}
	if id == "" {
		return "", subject.invalid(subject.Name, ErrEmptyID)
	}

	var b strings.Builder
	accumulating := false
	accumulate := func(upTo int) {
		if !accumulating {
			accumulating = true
			b.WriteString(id[:upTo])
		}
	}

	allUpper := true
	for i := 0; i < len(id); {
		r, size := utf8.DecodeRuneInString(id[i:])
		switch {
		case isSeparator(r):
			accumulate(i)
			i += size
			if i == len(id) {
				continue
			}
			// The joined rune is taken as is, except that a forbidden one
			// must still reject the identifier.
			next, nextSize := utf8.DecodeRuneInString(id[i:])
			if isForbidden(next) {
				continue
			}
			b.WriteRune(unicode.ToUpper(next))
			i += nextSize
			continue
		case r == '#':
			// Dropped only from an accumulated name; an identifier that
			// needs no other change is returned verbatim.
			i += size
			continue
		case isForbidden(r):
			name := subject.Name
			if subject.Kind == KindType {
				name = subject.ID
			}
			return "", subject.invalid(name, &InvalidSymbolError{Symbol: r})
		case i == 0:
			if unicode.IsUpper(r) {
				accumulate(0)
				b.WriteRune(unicode.ToLower(r))
			}
		case accumulating:
			b.WriteRune(r)
		}

		if !unicode.IsUpper(r) {
			allUpper = false
		}
		i += size
	}

	result := id
	if accumulating {
		result = b.String()
	}
	if allUpper {
		result = strings.ToLower(result)
	}
	// Property names are never empty: an identifier made only of
	// separators is rejected like an empty one.
	if result == "" {
		return "", subject.invalid(subject.Name, ErrEmptyID)
	}
	return result, nil
}

func (s Subject) invalid(name string, err error) error {
	return fmt.Errorf("%s %q is not valid: %w", s.Kind, name, err)
}

func isSeparator(r rune) bool {
	return r == '.' || r == ' ' || r == '-' || r == '_'
}

func isForbidden(r rune) bool {
	switch r {
	case '"', '\'', '\n', '\r', '\t', '\b', '/', '\\':
		return true
	}
	return false
}
