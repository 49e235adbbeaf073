package solver

import (
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Frequency approximates each guess's expected information from how often
// each letter occurs at each position among the remaining candidates. It
// never builds the feedback matrix.
//
// For letter l at position i, with f(l,j) the share of candidates having l
// at position j:
//
//	green  = f(l,i)
//	gray   = Π_j (1 - f(l,j)), capped at 1 - green
//	yellow = 1 - green - gray
//
// Only the first occurrence of a letter in a guess is credited; repeats add
// nothing.
type Frequency struct {
	opts Options
}

// NewFrequency constructs the positional-frequency heuristic.
func NewFrequency(opts Options) *Frequency { return &Frequency{opts: opts} }

// Name implements Strategy.
func (f *Frequency) Name() string { return StrategyFrequency }

// freqTable holds per-letter-per-position shares of the candidate pool.
type freqTable [game.Alphabet][game.WordLen]float64

func buildFreqTable(remaining []game.Word) *freqTable {
	var counts [game.Alphabet][game.WordLen]int
	for _, w := range remaining {
		for i, l := range w {
			counts[l][i]++
		}
	}
	n := float64(len(remaining))
	var t freqTable
	for l := range counts {
		for i, c := range counts[l] {
			t[l][i] = float64(c) / n
		}
	}
	return &t
}

// score is the pseudo-entropy of guess under t.
func (t *freqTable) score(guess game.Word) float64 {
	var seen [game.Alphabet]bool
	h := 0.0
	for i, l := range guess {
		if seen[l] {
			continue
		}
		seen[l] = true

		green := t[l][i]
		gray := 1.0
		for j := 0; j < game.WordLen; j++ {
			gray *= 1 - t[l][j]
		}
		if gray > 1-green {
			gray = 1 - green
		}
		yellow := 1 - green - gray
		if yellow < 0 {
			yellow = 0
		}
		h += plogp(green) + plogp(gray) + plogp(yellow)
	}
	return h
}

// Propose returns the first guess with the highest pseudo-entropy.
func (f *Frequency) Propose(remaining, guessable []game.Word) (Proposal, error) {
	if p, done, err := trivial(remaining, guessable); done {
		return p, err
	}

	lg := f.opts.logger()
	start := time.Now()

	t := buildFreqTable(remaining)
	best := Proposal{Word: guessable[0], Score: t.score(guessable[0])}
	for _, g := range guessable[1:] {
		if s := t.score(g); s > best.Score {
			best = Proposal{Word: g, Score: s}
		}
	}

	lg.Debug().
		Str("next", best.Word.String()).
		Float64("bits", best.Score).
		Int("guesses", len(guessable)).
		Int("candidates", len(remaining)).
		Dur("took", time.Since(start)).
		Msg("frequency scored")
	return best, nil
}
