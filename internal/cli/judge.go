package cli

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/judge"
)

func newJudgeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "judge",
		Short: "Play against an external judge over stdin/stdout",
		Long: `Write one guess per line to stdout and read the judge's response from stdin
as a comma-separated list of correct/present/absent. The round ends when all
five positions are correct; NOT_IN_WORD_LIST or an unknown token is fatal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := judge.NewGuesser(a.factory, a.dict.Answers, a.dict.Guesses, a.cfg.Opener)
			if err != nil {
				return err
			}
			_, err = judge.Run(cmd.InOrStdin(), cmd.OutOrStdout(), g, a.log)
			return err
		},
	}
}
