package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmarr21/sudoku-solver/internal/puzzle"
	"github.com/kmarr21/sudoku-solver/internal/solver"
)

// NewUniqueCommand creates the unique subcommand, which reports whether a
// bundled puzzle has exactly one solution.
func NewUniqueCommand(root *RootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "unique",
		Short: "Check that a bundled puzzle has exactly one solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := puzzle.Named(name)
			if err != nil {
				return err
			}
			unique, st, err := solver.Unique(cmd.Context(), b)
			if err != nil {
				return err
			}
			if unique {
				fmt.Fprintf(cmd.OutOrStdout(), "%s puzzle has exactly one solution (%d nodes, %v)\n", name, st.Nodes, st.Duration)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s puzzle does not have a unique solution (%d nodes, %v)\n", name, st.Nodes, st.Duration)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "puzzle", "easy", "bundled puzzle to check (easy|hard)")
	return cmd
}
