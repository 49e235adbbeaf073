// Package solver narrows a pool of answer candidates with observed
// feedback and proposes the next guess through an interchangeable scoring
// strategy.
//
// Two strategies are provided:
//   - Entropy:   exact Shannon entropy of the feedback partition each guess
//     induces over the remaining candidates (O(guesses × candidates)).
//   - Frequency: a per-letter-per-position approximation of the same
//     quantity (O(guesses × 5)).
//
// Both break ties by guess-list order: the first guess with the maximal
// score wins.
package solver

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

var (
	// ErrNoCandidates means every candidate was ruled out: the feedback
	// history was contradictory.
	ErrNoCandidates = errors.New("solver: no remaining candidates")
	// ErrNoGuesses means the guess list is empty.
	ErrNoGuesses = errors.New("solver: no guessable words")
	// ErrUnknownStrategy is returned by ByName.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")
)

// Strategy names accepted by ByName.
const (
	StrategyEntropy   = "entropy"
	StrategyFrequency = "frequency"
)

// Proposal is a scored guess. Score is in bits for both strategies.
type Proposal struct {
	Word  game.Word
	Score float64
}

// Strategy scores guesses against the remaining candidates.
type Strategy interface {
	Name() string
	Propose(remaining, guessable []game.Word) (Proposal, error)
}

// Options configures diagnostics and parallelism. The zero value is silent
// and uses one worker per CPU.
type Options struct {
	// Workers bounds the goroutines used for entropy scoring.
	// <= 0 selects runtime.GOMAXPROCS(0).
	Workers int
	// Verbose enables progress and timing diagnostics.
	Verbose bool
	// Logger receives diagnostics when Verbose is set; nil uses the
	// global zerolog logger.
	Logger *zerolog.Logger
}

func (o Options) logger() zerolog.Logger {
	if !o.Verbose {
		return zerolog.Nop()
	}
	if o.Logger != nil {
		return *o.Logger
	}
	return log.Logger
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// NewStrategy returns the strategy registered under name.
func NewStrategy(name string, opts Options) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyEntropy, "":
		return NewEntropy(opts), nil
	case StrategyFrequency:
		return NewFrequency(opts), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// trivial handles the pools that need no scoring: empty inputs are errors
// and a single candidate is the answer.
func trivial(remaining, guessable []game.Word) (Proposal, bool, error) {
	switch {
	case len(remaining) == 0:
		return Proposal{}, true, ErrNoCandidates
	case len(remaining) == 1:
		return Proposal{Word: remaining[0]}, true, nil
	case len(guessable) == 0:
		return Proposal{}, true, ErrNoGuesses
	}
	return Proposal{}, false, nil
}

// plogp is the entropy contribution -p·log2(p) of one outcome.
func plogp(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return -p * math.Log2(p)
}
