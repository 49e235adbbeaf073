package solver

import (
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Entropy picks the guess whose feedback partition of the remaining
// candidates has the highest Shannon entropy.
type Entropy struct {
	opts Options
}

// NewEntropy constructs the entropy maximizer.
func NewEntropy(opts Options) *Entropy { return &Entropy{opts: opts} }

// Name implements Strategy.
func (e *Entropy) Name() string { return StrategyEntropy }

// scored is a worker's best guess, by index into guessable.
type scored struct {
	idx   int
	score float64
}

// better orders by score, then by earlier index.
func (s scored) better(o scored) bool {
	if s.idx < 0 {
		return false
	}
	if o.idx < 0 {
		return true
	}
	if s.score != o.score {
		return s.score > o.score
	}
	return s.idx < o.idx
}

// Propose scores every guess in guessable against remaining and returns the
// first one with maximal entropy. Guesses are split into contiguous chunks,
// one goroutine each; the merge keeps the sequential first-max result.
func (e *Entropy) Propose(remaining, guessable []game.Word) (Proposal, error) {
	if p, done, err := trivial(remaining, guessable); done {
		return p, err
	}

	lg := e.opts.logger()
	start := time.Now()

	workers := e.opts.workers()
	if workers > len(guessable) {
		workers = len(guessable)
	}
	chunk := (len(guessable) + workers - 1) / workers
	best := make([]scored, workers)

	total := int64(len(guessable))
	var done atomic.Int64
	// At most one tick per decile, so workers never block on it.
	ticks := make(chan int64, 10)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(guessable))
		best[w] = scored{idx: -1}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			row := make([]uint8, len(remaining))
			var counts [game.Patterns]int
			for i := lo; i < hi; i++ {
				s := scored{idx: i, score: partitionEntropy(guessable[i], remaining, row, &counts)}
				if s.better(best[w]) {
					best[w] = s
				}
				n := done.Add(1)
				if n*10/total != (n-1)*10/total {
					ticks <- n * 100 / total
				}
			}
			return nil
		})
	}
	wait := make(chan error, 1)
	go func() {
		wait <- g.Wait()
		close(ticks)
	}()
	// Workers only count; all logging happens on the calling goroutine.
	for pct := range ticks {
		lg.Debug().Int64("percent", pct).Msg("entropy progress")
	}
	if err := <-wait; err != nil {
		return Proposal{}, err
	}

	win := scored{idx: -1}
	for _, s := range best {
		if s.better(win) {
			win = s
		}
	}

	p := Proposal{Word: guessable[win.idx], Score: win.score}
	lg.Debug().
		Str("next", p.Word.String()).
		Float64("bits", p.Score).
		Int("guesses", len(guessable)).
		Int("candidates", len(remaining)).
		Int("workers", workers).
		Dur("took", time.Since(start)).
		Msg("entropy scored")
	return p, nil
}

// PartitionEntropy returns the entropy in bits of the feedback patterns
// guess produces over remaining.
func PartitionEntropy(guess game.Word, remaining []game.Word) float64 {
	var counts [game.Patterns]int
	return partitionEntropy(guess, remaining, make([]uint8, len(remaining)), &counts)
}

// partitionEntropy fills row with the pattern index of every candidate,
// groups the row into counts and sums -p·log2(p) over non-empty groups.
func partitionEntropy(guess game.Word, remaining []game.Word, row []uint8, counts *[game.Patterns]int) float64 {
	for j, answer := range remaining {
		row[j] = uint8(game.Score(guess, answer).Index())
	}

	*counts = [game.Patterns]int{}
	for _, pat := range row {
		counts[pat]++
	}

	n := float64(len(remaining))
	h := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		h += plogp(float64(c) / n)
	}
	return h
}
