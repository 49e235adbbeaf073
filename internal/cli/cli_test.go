package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/judge"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{
		"LOG_LEVEL", "WORDS_ANSWERS_FILE", "WORDS_ALLOWED_FILE", "SOLVER_STRATEGY",
		"SOLVER_WORKERS", "SOLVER_VERBOSE", "SOLVER_OPENER", "SOLVER_MAX_GUESSES", "DAILY_SALT",
	} {
		t.Setenv(k, "")
	}
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlay(t *testing.T) {
	out, err := run(t, "", "play", "--answer", "crane")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[0], "1  soare  "), lines[0])
	assert.Contains(t, lines[len(lines)-2], "crane  ggggg")
	assert.Contains(t, lines[len(lines)-1], " in ")
}

func TestPlay_Daily(t *testing.T) {
	a, err := run(t, "", "play", "--daily", "--date", "2026-10-16")
	require.NoError(t, err)
	b, err := run(t, "", "play", "--daily", "--date", "2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = run(t, "", "play", "--daily", "--date", "16/10/2026")
	assert.Error(t, err)
}

func TestJudge_Rejected(t *testing.T) {
	out, err := run(t, "NOT_IN_WORD_LIST\n", "judge")
	assert.ErrorIs(t, err, judge.ErrNotInWordList)
	assert.Equal(t, "soare\n", out)
}

func TestJudge_Win(t *testing.T) {
	out, err := run(t, "correct,correct,correct,correct,correct\n", "judge", "--opener", "crane")
	require.NoError(t, err)
	assert.Equal(t, "crane\n", out)
}

func TestRepl(t *testing.T) {
	out, err := run(t, "filter soare ggggg\nnext\nremaining\nquit\n", "repl", "--prompt", "", "-s", "frequency")
	require.NoError(t, err)
	// soare is not an answer, so the pool is empty.
	assert.Contains(t, out, "error: "+solver.ErrNoCandidates.Error())
	assert.Contains(t, out, "0 remaining")
}

func TestUnknownStrategy(t *testing.T) {
	_, err := run(t, "", "play", "--strategy", "minimax")
	assert.ErrorIs(t, err, solver.ErrUnknownStrategy)
}
