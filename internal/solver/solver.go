package solver

import (
	"math"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Solver is the lifecycle every strategy shares: narrow the pool with
// feedback, then ask for the next guess.
type Solver interface {
	// Filter keeps the candidates consistent with fb for guess.
	Filter(guess game.Word, fb game.Feedback)
	// Next proposes a guess for the current pool. It fails with
	// ErrNoCandidates once the pool is empty.
	Next() (game.Word, error)
}

// Factory builds a fresh Solver over the given dictionaries.
type Factory func(candidates, guesses []game.Word) Solver

// Engine owns one Pool and dispatches scoring to a Strategy.
type Engine struct {
	pool     *Pool
	strategy Strategy
	opts     Options
}

var _ Solver = (*Engine)(nil)

// New constructs an Engine over copies of candidates and guesses.
func New(candidates, guesses []game.Word, strategy Strategy, opts Options) *Engine {
	return &Engine{
		pool:     NewPool(candidates, guesses),
		strategy: strategy,
		opts:     opts,
	}
}

// ByName returns a Factory for the named strategy.
func ByName(name string, opts Options) (Factory, error) {
	if _, err := NewStrategy(name, opts); err != nil {
		return nil, err
	}
	return func(candidates, guesses []game.Word) Solver {
		s, _ := NewStrategy(name, opts)
		return New(candidates, guesses, s, opts)
	}, nil
}

// Filter implements Solver and logs how much the pool shrank.
func (e *Engine) Filter(guess game.Word, fb game.Feedback) {
	start := time.Now()
	before := e.pool.Len()
	e.pool.Filter(guess, fb)
	after := e.pool.Len()

	lg := e.opts.logger()
	if after == 0 {
		lg.Warn().
			Str("guess", guess.String()).
			Str("feedback", fb.String()).
			Msg("no candidates left; feedback history is contradictory")
		return
	}
	if ev := lg.Debug(); ev.Enabled() {
		ev.Str("guess", guess.String()).
			Str("feedback", fb.String()).
			Int("before", before).
			Int("after", after).
			Float64("bits", math.Log2(float64(before)/float64(after))).
			Strs("preview", preview(e.pool.remaining, 3)).
			Dur("took", time.Since(start)).
			Msg("filtered")
	}
}

// Next implements Solver.
func (e *Engine) Next() (game.Word, error) {
	p, err := e.Propose()
	return p.Word, err
}

// Propose is Next with the winning score.
func (e *Engine) Propose() (Proposal, error) {
	return e.strategy.Propose(e.pool.remaining, e.pool.guessable)
}

// Remaining returns a copy of the remaining candidates.
func (e *Engine) Remaining() []game.Word { return e.pool.Remaining() }

// Len is the number of remaining candidates.
func (e *Engine) Len() int { return e.pool.Len() }

// Strategy returns the active scoring strategy.
func (e *Engine) Strategy() Strategy { return e.strategy }

// preview renders up to n words.
func preview(ws []game.Word, n int) []string {
	n = min(n, len(ws))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = ws[i].String()
	}
	return out
}
