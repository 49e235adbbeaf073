// Package repl is the interactive command surface over one live solver:
//
//	reset                     start over from the full dictionaries
//	filter <word> <feedback>  apply feedback, e.g. "filter crane _yg__"
//	next                      print the proposed guess
//	remaining                 print the candidate count and a preview
//	history                   print the filters applied since reset
//	help                      list commands
//	quit                      leave
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// previewLen bounds the words printed by "remaining".
const previewLen = 10

var errQuit = errors.New("quit")

// ErrUsage reports a command with the wrong arguments.
var ErrUsage = errors.New("usage")

// Session owns the solver the commands act on.
type Session struct {
	factory    solver.Factory
	candidates []game.Word
	guesses    []game.Word

	solver  solver.Solver
	history []string
}

// NewSession starts a session with a fresh solver.
func NewSession(factory solver.Factory, candidates, guesses []game.Word) *Session {
	s := &Session{factory: factory, candidates: candidates, guesses: guesses}
	s.Reset()
	return s
}

// Reset replaces the solver with one over the full dictionaries.
func (s *Session) Reset() {
	s.solver = s.factory(s.candidates, s.guesses)
	s.history = nil
}

// Filter parses both strings and narrows the pool.
func (s *Session) Filter(wordText, feedbackText string) error {
	w, err := game.ParseWord(wordText)
	if err != nil {
		return err
	}
	fb, err := game.ParseFeedback(feedbackText)
	if err != nil {
		return err
	}
	s.solver.Filter(w, fb)
	s.history = append(s.history, w.String()+" "+fb.String())
	return nil
}

// Next returns the proposed guess in lowercase.
func (s *Session) Next() (string, error) {
	w, err := s.solver.Next()
	if err != nil {
		return "", err
	}
	return w.String(), nil
}

// Remaining returns the remaining candidates when the solver exposes them.
func (s *Session) Remaining() ([]game.Word, bool) {
	r, ok := s.solver.(interface{ Remaining() []game.Word })
	if !ok {
		return nil, false
	}
	return r.Remaining(), true
}

// Exec runs one command line and returns its output, if any.
func (s *Session) Exec(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "reset":
		s.Reset()
		return "", nil
	case "filter":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: filter <word> <feedback>", ErrUsage)
		}
		return "", s.Filter(args[0], args[1])
	case "next":
		return s.Next()
	case "remaining":
		ws, ok := s.Remaining()
		if !ok {
			return "", errors.New("remaining: not supported by this solver")
		}
		n := min(len(ws), previewLen)
		parts := make([]string, n)
		for i := 0; i < n; i++ {
			parts[i] = ws[i].String()
		}
		out := fmt.Sprintf("%d remaining", len(ws))
		if n > 0 {
			out += ": " + strings.Join(parts, " ")
		}
		if len(ws) > n {
			out += " …"
		}
		return out, nil
	case "history":
		return strings.Join(s.history, "\n"), nil
	case "help":
		return help, nil
	case "quit", "exit":
		return "", errQuit
	}
	return "", fmt.Errorf("unknown command %q (try help)", cmd)
}

const help = `reset                     start over from the full dictionaries
filter <word> <feedback>  apply feedback: _ absent, y present, g correct
next                      propose the next guess
remaining                 show how many candidates are left
history                   show applied filters
quit                      leave`

// Run reads commands from in until EOF or quit. Command errors are printed
// and the loop continues.
func Run(in io.Reader, out io.Writer, s *Session, prompt string) error {
	sc := bufio.NewScanner(in)
	for {
		if prompt != "" {
			fmt.Fprint(out, prompt)
		}
		if !sc.Scan() {
			return sc.Err()
		}
		res, err := s.Exec(sc.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if res != "" {
			fmt.Fprintln(out, res)
		}
	}
}
