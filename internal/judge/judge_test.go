package judge

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var smallDict = []string{
	"crane", "trace", "crate", "react", "slate", "caret", "stare", "arise",
	"raise", "irate", "least", "steal", "tales", "later", "alter", "alert",
}

func newGuesser(t *testing.T, strategy string) *Guesser {
	t.Helper()
	ws, err := game.ParseWords(smallDict)
	require.NoError(t, err)
	guesses := append([]game.Word{game.MustParseWord("soare")}, ws...)
	f, err := solver.ByName(strategy, solver.Options{Workers: 2})
	require.NoError(t, err)
	g, err := NewGuesser(f, ws, guesses, "")
	require.NoError(t, err)
	return g
}

// fakeJudge answers every guess read from guesses with its score against answer.
func fakeJudge(guesses io.Reader, responses io.WriteCloser, answer game.Word, done chan<- struct{}) {
	defer close(done)
	defer responses.Close()
	sc := bufio.NewScanner(guesses)
	for sc.Scan() {
		fb := game.Score(game.MustParseWord(sc.Text()), answer)
		fmt.Fprintln(responses, fb.Tokens())
		if fb.IsSolved() {
			return
		}
	}
}

// playAgainst runs g against a fake judge hiding answer.
func playAgainst(t *testing.T, g *Guesser, answer string) (int, error) {
	t.Helper()
	guessR, guessW := io.Pipe()
	respR, respW := io.Pipe()
	done := make(chan struct{})
	go fakeJudge(guessR, respW, game.MustParseWord(answer), done)

	n, err := Run(respR, guessW, g, zerolog.Nop())
	_ = guessW.Close()
	<-done
	return n, err
}

func TestRun_SolvesEveryAnswer(t *testing.T) {
	for _, a := range smallDict {
		t.Run(a, func(t *testing.T) {
			n, err := playAgainst(t, newGuesser(t, solver.StrategyEntropy), a)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, len(smallDict)+1)
		})
	}
}

func TestRun_Frequency(t *testing.T) {
	cands, err := game.ParseWords([]string{"abcde", "fghij", "klmno", "pqrst"})
	require.NoError(t, err)
	guesses, err := game.ParseWords([]string{"afkpz", "fghij", "klmno", "pqrst"})
	require.NoError(t, err)
	f, err := solver.ByName(solver.StrategyFrequency, solver.Options{})
	require.NoError(t, err)
	g, err := NewGuesser(f, cands, guesses, "afkpz")
	require.NoError(t, err)

	// afkpz isolates every candidate, so the second guess always wins.
	for _, a := range []string{"abcde", "fghij", "klmno", "pqrst"} {
		n, err := playAgainst(t, g, a)
		require.NoError(t, err, a)
		assert.Equal(t, 2, n, a)
	}
}

func TestGuesser_EmptyHistoryUsesOpener(t *testing.T) {
	g := newGuesser(t, solver.StrategyEntropy)
	w, err := g.Guess(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOpener, w.String())
}

func TestGuesser_ReplaysHistory(t *testing.T) {
	g := newGuesser(t, solver.StrategyEntropy)
	answer := game.MustParseWord("alert")
	opener := game.MustParseWord("soare")
	w, err := g.Guess([]Entry{{Word: opener, Response: game.Score(opener, answer)}})
	require.NoError(t, err)

	// The proposal must come from replaying the opener's feedback.
	s, _ := solver.ByName(solver.StrategyEntropy, solver.Options{})
	direct := s(g.Candidates, g.Guesses)
	direct.Filter(opener, game.Score(opener, answer))
	want, err := direct.Next()
	require.NoError(t, err)
	assert.Equal(t, want, w)
}

func TestGuesser_ContradictoryHistory(t *testing.T) {
	g := newGuesser(t, solver.StrategyFrequency)
	_, err := g.Guess([]Entry{{Word: game.MustParseWord("zzzzz"), Response: game.Solved}})
	assert.ErrorIs(t, err, solver.ErrNoCandidates)
}

func TestNewGuesser_BadOpener(t *testing.T) {
	_, err := NewGuesser(nil, nil, nil, "toolong")
	var pe *game.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestParseResponse(t *testing.T) {
	fb, err := ParseResponse("correct, present,absent,absent,correct\n")
	require.NoError(t, err)
	assert.Equal(t, "gy__g", fb.String())

	_, err = ParseResponse("NOT_IN_WORD_LIST")
	assert.ErrorIs(t, err, ErrNotInWordList)

	var pe *ProtocolError
	_, err = ParseResponse("correct,present,absent")
	assert.ErrorAs(t, err, &pe)
	_, err = ParseResponse("correct,present,absent,absent,maybe")
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Reason, "maybe")
}

func TestRun_FatalResponses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{"rejected", "NOT_IN_WORD_LIST\n", func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrNotInWordList) }},
		{"unknown token", "correct,nope,absent,absent,absent\n", func(t *testing.T, err error) {
			var pe *ProtocolError
			assert.ErrorAs(t, err, &pe)
		}},
		{"eof", "", func(t *testing.T, err error) { assert.ErrorIs(t, err, io.ErrUnexpectedEOF) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := Run(strings.NewReader(tt.input), &out, newGuesser(t, solver.StrategyEntropy), zerolog.Nop())
			tt.check(t, err)
			assert.Equal(t, "soare\n", out.String())
		})
	}
}
