package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/sim"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func newBenchCommand(a *app) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve every answer and report the average guess count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.simConfig()
			// Games run in parallel; each solver scores on one goroutine.
			opts := a.opts
			opts.Workers = 1
			opts.Verbose = false
			factory, err := solver.ByName(a.cfg.Strategy, opts)
			if err != nil {
				return err
			}
			cfg.Factory = factory

			sum, err := sim.Bench(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return printSummary(cmd, sum, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the summary as JSON")
	return cmd
}

func printSummary(cmd *cobra.Command, sum sim.Summary, jsonOutput bool) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"games":     sum.Games,
			"solved":    sum.Solved,
			"wins":      sum.Wins,
			"average":   sum.Average,
			"worst":     sum.Worst,
			"worstWord": sum.WorstWord.String(),
			"histogram": sum.Histogram,
			"tookMs":    sum.Took.Milliseconds(),
		})
	}

	fmt.Fprintf(out, "games:   %d\n", sum.Games)
	fmt.Fprintf(out, "solved:  %d\n", sum.Solved)
	fmt.Fprintf(out, "wins:    %d\n", sum.Wins)
	fmt.Fprintf(out, "average: %.4f\n", sum.Average)
	fmt.Fprintf(out, "worst:   %d (%s)\n", sum.Worst, sum.WorstWord)
	keys := make([]int, 0, len(sum.Histogram))
	for k := range sum.Histogram {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  %2d: %d\n", k, sum.Histogram[k])
	}
	fmt.Fprintf(out, "took:    %s\n", sum.Took)
	return nil
}
