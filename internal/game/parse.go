package game

import (
	"fmt"
	"strings"
)

// ParseError reports a word or feedback string that is not exactly five
// characters from the right alphabet.
type ParseError struct {
	Kind   string // "word" or "feedback"
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Input, e.Reason)
}

// ParseLetter maps a–z or A–Z to a Letter.
func ParseLetter(c byte) (Letter, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return Letter(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return Letter(c - 'A'), true
	}
	return 0, false
}

// ParseWord parses a five-letter word, case-insensitively.
func ParseWord(s string) (Word, error) {
	var w Word
	if len(s) != WordLen {
		return w, &ParseError{Kind: "word", Input: s, Reason: fmt.Sprintf("want %d letters, got %d", WordLen, len(s))}
	}
	for i := 0; i < WordLen; i++ {
		l, ok := ParseLetter(s[i])
		if !ok {
			return w, &ParseError{Kind: "word", Input: s, Reason: fmt.Sprintf("position %d is not a letter", i+1)}
		}
		w[i] = l
	}
	return w, nil
}

// MustParseWord is ParseWord for literals; it panics on bad input.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// ParseWords parses every entry of list, stopping at the first error.
func ParseWords(list []string) ([]Word, error) {
	out := make([]Word, 0, len(list))
	for _, s := range list {
		w, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// ParseFeedback parses the REPL feedback form: "_" absent, "y" present,
// "g" correct. Letters are case-insensitive.
func ParseFeedback(s string) (Feedback, error) {
	var fb Feedback
	if len(s) != WordLen {
		return fb, &ParseError{Kind: "feedback", Input: s, Reason: fmt.Sprintf("want %d marks, got %d", WordLen, len(s))}
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case '_':
			fb[i] = MarkAbsent
		case 'y', 'Y':
			fb[i] = MarkPresent
		case 'g', 'G':
			fb[i] = MarkCorrect
		default:
			return fb, &ParseError{Kind: "feedback", Input: s, Reason: fmt.Sprintf("position %d must be one of _ y g", i+1)}
		}
	}
	return fb, nil
}

// ParseToken maps a judging-protocol token to a Mark.
func ParseToken(tok string) (Mark, bool) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "absent":
		return MarkAbsent, true
	case "present":
		return MarkPresent, true
	case "correct":
		return MarkCorrect, true
	}
	return 0, false
}

// WordSet is a lookup set of words.
type WordSet map[Word]struct{}

// NewWordSet converts a list of words into a lookup set.
func NewWordSet(list []Word) WordSet {
	m := make(WordSet, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// Contains reports whether w is in the set.
func (s WordSet) Contains(w Word) bool {
	_, ok := s[w]
	return ok
}
