package cli

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/repl"
)

func newReplCommand(a *app) *cobra.Command {
	var prompt string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive solver: reset, filter <word> <feedback>, next",
		Long: `Start an interactive session over one solver.

Feedback uses one character per letter: _ absent, y present, g correct.

Example:
  > next
  soare
  > filter soare _y__g
  > next`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := repl.NewSession(a.factory, a.dict.Answers, a.dict.Guesses)
			return repl.Run(cmd.InOrStdin(), cmd.OutOrStdout(), s, prompt)
		},
	}
	cmd.Flags().StringVar(&prompt, "prompt", "> ", "prompt printed before each command")
	return cmd
}
