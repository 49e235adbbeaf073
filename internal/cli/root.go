// Package cli wires configuration, logging and dictionaries into the
// solver's cobra commands: repl, judge, play and bench.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Version is set from main.
var Version = "dev"

// rootFlags are the persistent flags shared by every subcommand. Zero
// values leave the loaded configuration untouched.
type rootFlags struct {
	configPath string
	strategy   string
	workers    int
	verbose    bool
	opener     string
}

// app is the state every subcommand runs against.
type app struct {
	cfg     config.Config
	dict    *words.Dictionary
	factory solver.Factory
	opts    solver.Options
	log     zerolog.Logger
}

// NewRootCommand creates the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "wordle-solver",
		Short: "Entropy-driven Wordle solver",
		Long: `wordle-solver narrows the candidate answers with the feedback of each guess
and proposes the guess that is expected to reveal the most information.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&flags.strategy, "strategy", "s", "", "scoring strategy: entropy or frequency")
	rootCmd.PersistentFlags().IntVarP(&flags.workers, "workers", "w", 0, "goroutines used for scoring (default: all CPUs)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "print scoring diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&flags.opener, "opener", "", "fixed first guess")

	rootCmd.AddCommand(newReplCommand(a))
	rootCmd.AddCommand(newJudgeCommand(a))
	rootCmd.AddCommand(newPlayCommand(a))
	rootCmd.AddCommand(newBenchCommand(a))
	return rootCmd
}

// Execute runs the root command under ctx and exits non-zero on error.
func Execute(ctx context.Context, rootCmd *cobra.Command) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// setup loads configuration, sets up logging and loads the dictionaries.
func (a *app) setup(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.strategy != "" {
		cfg.Strategy = flags.strategy
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.verbose {
		cfg.Verbose = true
	}
	if flags.opener != "" {
		cfg.Opener = flags.opener
	}
	a.cfg = cfg

	a.log = setupLogging(cmd.ErrOrStderr(), cfg)
	a.opts = solver.Options{Workers: cfg.Workers, Verbose: cfg.Verbose, Logger: &a.log}

	if a.factory, err = solver.ByName(cfg.Strategy, a.opts); err != nil {
		return err
	}
	if a.dict, err = words.Load(words.Source{AnswersFile: cfg.AnswersFile, AllowedFile: cfg.AllowedFile}); err != nil {
		return fmt.Errorf("failed to load word lists: %w", err)
	}

	answers, guesses := a.dict.Stats()
	a.log.Debug().
		Int("answers", answers).
		Int("guesses", guesses).
		Str("strategy", cfg.Strategy).
		Msg("dictionaries loaded")
	return nil
}

// setupLogging mirrors LOG_LEVEL into zerolog and writes human-readable
// output to w. Verbose forces debug level.
func setupLogging(w io.Writer, cfg config.Config) zerolog.Logger {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
	return log.Logger
}
