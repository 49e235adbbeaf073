// Package judge plays the solver against an external judge over a
// line-oriented protocol: the solver writes one guess per line and reads
// one comma-separated response list per line, e.g.
//
//	correct,absent,present,absent,absent
//
// A line reading NOT_IN_WORD_LIST, an unknown token or a malformed list
// ends the session with an error.
package judge

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// DefaultOpener is guessed when there is no history yet.
const DefaultOpener = "soare"

// notInWordList is the judge's rejection of a guess.
const notInWordList = "NOT_IN_WORD_LIST"

// ErrNotInWordList means the judge rejected the proposed word.
var ErrNotInWordList = errors.New("judge: guess rejected as NOT_IN_WORD_LIST")

// ProtocolError reports a response line the adapter cannot interpret.
type ProtocolError struct {
	Line   string
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("judge: bad response %q: %s", e.Line, e.Reason)
}

// Entry is one round of history: the word played and the judge's marks.
type Entry struct {
	Word     game.Word
	Response game.Feedback
}

// Guesser turns a history into the next guess.
type Guesser struct {
	Factory    solver.Factory
	Candidates []game.Word
	Guesses    []game.Word
	Opener     game.Word
}

// NewGuesser builds a Guesser; an empty opener selects DefaultOpener.
func NewGuesser(factory solver.Factory, candidates, guesses []game.Word, opener string) (*Guesser, error) {
	if opener == "" {
		opener = DefaultOpener
	}
	w, err := game.ParseWord(opener)
	if err != nil {
		return nil, fmt.Errorf("opener: %w", err)
	}
	return &Guesser{Factory: factory, Candidates: candidates, Guesses: guesses, Opener: w}, nil
}

// Guess returns the opener for an empty history. Otherwise it replays every
// entry, in order, into a fresh solver and asks it for the next word.
func (g *Guesser) Guess(history []Entry) (game.Word, error) {
	if len(history) == 0 {
		return g.Opener, nil
	}
	s := g.Factory(g.Candidates, g.Guesses)
	for _, h := range history {
		s.Filter(h.Word, h.Response)
	}
	return s.Next()
}

// ParseResponse parses one comma-separated response line.
func ParseResponse(line string) (game.Feedback, error) {
	var fb game.Feedback
	line = strings.TrimSpace(line)
	if line == notInWordList {
		return fb, ErrNotInWordList
	}
	parts := strings.Split(line, ",")
	if len(parts) != game.WordLen {
		return fb, &ProtocolError{Line: line, Reason: fmt.Sprintf("want %d tokens, got %d", game.WordLen, len(parts))}
	}
	for i, p := range parts {
		m, ok := game.ParseToken(p)
		if !ok {
			return fb, &ProtocolError{Line: line, Reason: fmt.Sprintf("unrecognized token %q", strings.TrimSpace(p))}
		}
		fb[i] = m
	}
	return fb, nil
}

// Run plays one round: it writes guesses to out and reads responses from in
// until every position is correct. It returns the number of guesses made.
func Run(in io.Reader, out io.Writer, g *Guesser, lg zerolog.Logger) (int, error) {
	var history []Entry
	sc := bufio.NewScanner(in)

	word, err := g.Guess(history)
	if err != nil {
		return 0, err
	}
	for {
		if _, err := fmt.Fprintln(out, word.String()); err != nil {
			return len(history), fmt.Errorf("write guess: %w", err)
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return len(history), fmt.Errorf("read response: %w", err)
			}
			return len(history), io.ErrUnexpectedEOF
		}
		line := sc.Text()
		lg.Debug().Str("line", line).Msg("judge response")

		fb, err := ParseResponse(line)
		if err != nil {
			return len(history), err
		}
		history = append(history, Entry{Word: word, Response: fb})
		if fb.IsSolved() {
			lg.Info().Str("word", word.String()).Int("guesses", len(history)).Msg("win")
			return len(history), nil
		}

		if word, err = g.Guess(history); err != nil {
			return len(history), fmt.Errorf("next guess: %w", err)
		}
	}
}
