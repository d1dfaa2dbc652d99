// Package cli defines the sudoku-solver command tree.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kmarr21/sudoku-solver/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel string // "debug" | "info" | "warn" | "error"
}

// NewRootCommand creates the root command for the solver CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sudoku-solver",
		Short: "Solve Sudoku puzzles with CSP techniques",
		Long: "Solves 9x9 Sudoku puzzles with constraint-satisfaction techniques:\n" +
			"MRV variable ordering, LCV value ordering, forward checking, and AC-3\n" +
			"arc consistency, each independently toggleable.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(opts.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
			}
			logger.Set(logger.Logger().Level(lvl))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "debug|info|warn|error")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewUniqueCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}
