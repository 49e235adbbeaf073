// internal/game/types.go
//
// Core value types for the solver's codec.
// Defines:
//   - Letter:   one of a–z (plus an internal "consumed" marker, never exported).
//   - Word:     exactly five Letters, compared by value.
//   - Mark:     per-letter result of a guess (absent/present/correct).
//   - Feedback: exactly five Marks, produced by Score.
//   - Game:     state for a single simulated game against a hidden answer.

package game

import "strings"

// WordLen is the number of letters in every word and feedback pattern.
const WordLen = 5

// Letter is one of the 26 lowercase letters, 0 = 'a' … 25 = 'z'.
type Letter uint8

// consumed marks an answer position already matched while scoring.
// It exists only inside Score's working copy of the answer.
const consumed Letter = 26

// Alphabet is the number of valid letters.
const Alphabet = 26

// Byte returns the lowercase ASCII form of l.
func (l Letter) Byte() byte { return 'a' + byte(l) }

// Word is an immutable five-letter word. Arrays give value equality,
// so Words work as map keys.
type Word [WordLen]Letter

// String renders w as a lowercase string.
func (w Word) String() string {
	var b [WordLen]byte
	for i, l := range w {
		b[i] = l.Byte()
	}
	return string(b[:])
}

// Contains reports whether l appears anywhere in w.
func (w Word) Contains(l Letter) bool {
	for _, x := range w {
		if x == l {
			return true
		}
	}
	return false
}

// Mark represents the evaluation result for a single letter in a guess.
//   - MarkAbsent:  letter does not occur in the (unconsumed) answer (gray).
//   - MarkPresent: letter occurs elsewhere in the answer (yellow).
//   - MarkCorrect: letter is in the correct position (green).
type Mark uint8

const (
	MarkAbsent Mark = iota
	MarkPresent
	MarkCorrect
)

// String returns the single-character REPL form: "_", "y" or "g".
func (m Mark) String() string {
	switch m {
	case MarkPresent:
		return "y"
	case MarkCorrect:
		return "g"
	default:
		return "_"
	}
}

// Token returns the judging-protocol form: "absent", "present" or "correct".
func (m Mark) Token() string {
	switch m {
	case MarkPresent:
		return "present"
	case MarkCorrect:
		return "correct"
	default:
		return "absent"
	}
}

// Feedback is the per-position result of comparing a guess with an answer.
type Feedback [WordLen]Mark

// Patterns is the number of distinct Feedback values (3^5).
const Patterns = 243

// Solved is the all-correct pattern.
var Solved = Feedback{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect}

// Index packs f into 0..Patterns-1 (base 3, position 0 most significant).
func (f Feedback) Index() int {
	n := 0
	for _, m := range f {
		n = n*3 + int(m)
	}
	return n
}

// String renders f in REPL form, e.g. "gy__g".
func (f Feedback) String() string {
	var b strings.Builder
	for _, m := range f {
		b.WriteString(m.String())
	}
	return b.String()
}

// Tokens renders f as the judging protocol's comma-separated list.
func (f Feedback) Tokens() string {
	parts := make([]string, WordLen)
	for i, m := range f {
		parts[i] = m.Token()
	}
	return strings.Join(parts, ",")
}

// IsSolved reports whether every position is correct.
func (f Feedback) IsSolved() bool { return f == Solved }

// State is the coarse lifecycle of a Game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single simulated game session.
type Game struct {
	ID         string // Unique game identifier (uuid).
	Answer     Word   // The hidden solution.
	MaxGuesses int    // Maximum number of guesses allowed (typically 6).
	Guesses    []Word // Guesses made so far.
	Finished   bool   // True once the game is over (won or lost).
	Won        bool   // True if the game was finished with a win.

	allowed WordSet
}
