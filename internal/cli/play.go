package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/sim"
)

type playFlags struct {
	answer  string
	daily   bool
	date    string
	noStart bool
}

func newPlayCommand(a *app) *cobra.Command {
	flags := &playFlags{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Solve one simulated game and print every guess",
		Long: `Solve a simulated game. The hidden answer is --answer, the daily answer
(--daily, optionally for --date YYYY-MM-DD) or a random answer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := a.pickAnswer(flags)
			if err != nil {
				return err
			}
			cfg := a.simConfig()
			if flags.noStart {
				cfg.Opener = ""
			}
			res, err := sim.Play(cfg, answer)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, w := range res.Guesses {
				fmt.Fprintf(out, "%d  %s  %s\n", i+1, w, game.Score(w, answer))
			}
			status := "lost"
			if res.Won {
				status = "won"
			}
			fmt.Fprintf(out, "%s in %d guesses\n", status, len(res.Guesses))
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.answer, "answer", "", "hidden answer")
	cmd.Flags().BoolVar(&flags.daily, "daily", false, "use the daily answer")
	cmd.Flags().StringVar(&flags.date, "date", "", "date for --daily (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&flags.noStart, "no-opener", false, "let the strategy choose the first guess too")
	return cmd
}

func (a *app) pickAnswer(flags *playFlags) (game.Word, error) {
	switch {
	case flags.answer != "":
		return game.ParseWord(strings.TrimSpace(flags.answer))
	case flags.daily:
		day := time.Now()
		if flags.date != "" {
			t, err := time.Parse("2006-01-02", flags.date)
			if err != nil {
				return game.Word{}, fmt.Errorf("date: %w", err)
			}
			day = t
		}
		w, _ := daily.Answer(day, a.cfg.DailySalt, a.dict.Answers)
		a.log.Info().Str("date", daily.DateKey(day)).Msg("daily answer")
		return w, nil
	}
	return a.dict.RandomAnswer(), nil
}

func (a *app) simConfig() sim.Config {
	return sim.Config{
		Factory:    a.factory,
		Answers:    a.dict.Answers,
		Guesses:    a.dict.Guesses,
		Opener:     a.cfg.Opener,
		MaxGuesses: a.cfg.MaxGuesses,
		Workers:    a.cfg.Workers,
		Logger:     a.log,
	}
}
