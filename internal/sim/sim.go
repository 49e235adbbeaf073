// Package sim plays the solver against simulated games: one answer at a
// time (Play) or every answer in the dictionary (Bench).
package sim

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Config describes the dictionaries and solver used for simulated play.
type Config struct {
	Factory solver.Factory
	Answers []game.Word
	Guesses []game.Word
	// Opener is played first when non-empty.
	Opener string
	// MaxGuesses is the win threshold; 0 selects game.DefaultMaxGuesses.
	// Games keep going past it so every answer gets a guess count.
	MaxGuesses int
	// Workers bounds concurrent games in Bench; <= 0 selects GOMAXPROCS.
	Workers int
	Logger  zerolog.Logger
}

// Result is the outcome of one simulated game.
type Result struct {
	Answer  game.Word
	Guesses []game.Word
	Solved  bool // the answer was eventually guessed
	Won     bool // solved within MaxGuesses
}

// Play solves a single game with a fresh solver.
func Play(cfg Config, answer game.Word) (Result, error) {
	var opener game.Word
	hasOpener := cfg.Opener != ""
	if hasOpener {
		w, err := game.ParseWord(cfg.Opener)
		if err != nil {
			return Result{}, fmt.Errorf("opener: %w", err)
		}
		opener = w
	}
	limit := cfg.MaxGuesses
	if limit <= 0 {
		limit = game.DefaultMaxGuesses
	}

	// A hard cap keeps a non-converging strategy from looping forever.
	allowed := game.NewWordSet(cfg.Guesses)
	for _, w := range cfg.Answers {
		allowed[w] = struct{}{}
	}
	g := game.New(answer, len(allowed)+1, allowed)
	s := cfg.Factory(cfg.Answers, cfg.Guesses)

	for g.State() == game.StatePlaying {
		var word game.Word
		if hasOpener && len(g.Guesses) == 0 {
			word = opener
		} else {
			w, err := s.Next()
			if err != nil {
				return Result{Answer: answer, Guesses: g.Guesses}, fmt.Errorf("answer %s: %w", answer, err)
			}
			word = w
		}
		fb, _, err := g.ApplyGuess(word)
		if err != nil {
			return Result{Answer: answer, Guesses: g.Guesses}, fmt.Errorf("answer %s, guess %s: %w", answer, word, err)
		}
		s.Filter(word, fb)
	}

	return Result{
		Answer:  answer,
		Guesses: g.Guesses,
		Solved:  g.Won,
		Won:     g.Won && len(g.Guesses) <= limit,
	}, nil
}

// Summary aggregates a Bench run.
type Summary struct {
	Games  int
	Solved int
	Wins   int
	// Average is the mean guess count over solved games.
	Average float64
	// Worst is the most guesses any solved game needed, for WorstWord.
	Worst     int
	WorstWord game.Word
	// Histogram maps guess counts to games.
	Histogram map[int]int
	Took      time.Duration
}

// Bench plays every answer concurrently and summarises the results.
func Bench(ctx context.Context, cfg Config) (Summary, error) {
	start := time.Now()
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(cfg.Answers))
	total := int64(len(cfg.Answers))
	var done atomic.Int64
	ticks := make(chan int64, 10)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, answer := range cfg.Answers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := Play(cfg, answer)
			if err != nil {
				return err
			}
			results[i] = r
			n := done.Add(1)
			if n*10/total != (n-1)*10/total {
				ticks <- n * 100 / total
			}
			return nil
		})
	}
	wait := make(chan error, 1)
	go func() {
		wait <- g.Wait()
		close(ticks)
	}()
	for pct := range ticks {
		cfg.Logger.Info().Int64("percent", pct).Msg("bench progress")
	}
	if err := <-wait; err != nil {
		return Summary{}, err
	}

	sum := summarize(results)
	sum.Took = time.Since(start)
	return sum, nil
}

func summarize(results []Result) Summary {
	s := Summary{Games: len(results), Histogram: make(map[int]int)}
	guesses := 0
	for _, r := range results {
		if !r.Solved {
			continue
		}
		n := len(r.Guesses)
		s.Solved++
		guesses += n
		s.Histogram[n]++
		if r.Won {
			s.Wins++
		}
		if n > s.Worst {
			s.Worst, s.WorstWord = n, r.Answer
		}
	}
	if s.Solved > 0 {
		s.Average = float64(guesses) / float64(s.Solved)
	}
	return s
}
