package solver

import (
	"slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Pool holds the answers still consistent with every observed feedback and
// the fixed list of words that may be guessed.
type Pool struct {
	remaining []game.Word
	guessable []game.Word
}

// NewPool copies both lists; later changes by the caller are not seen.
func NewPool(remaining, guessable []game.Word) *Pool {
	return &Pool{
		remaining: slices.Clone(remaining),
		guessable: slices.Clone(guessable),
	}
}

// Filter keeps the candidates that would have produced fb for guess,
// preserving their order. An empty result is valid.
func (p *Pool) Filter(guess game.Word, fb game.Feedback) {
	kept := make([]game.Word, 0, len(p.remaining))
	for _, answer := range p.remaining {
		if game.Score(guess, answer) == fb {
			kept = append(kept, answer)
		}
	}
	p.remaining = kept
}

// Len is the number of remaining candidates.
func (p *Pool) Len() int { return len(p.remaining) }

// Remaining returns a copy of the remaining candidates.
func (p *Pool) Remaining() []game.Word { return slices.Clone(p.remaining) }

// Guessable returns a copy of the guess list.
func (p *Pool) Guessable() []game.Word { return slices.Clone(p.guessable) }
