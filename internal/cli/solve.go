package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmarr21/sudoku-solver/internal/domain"
	"github.com/kmarr21/sudoku-solver/internal/infrastructure/storage"
	"github.com/kmarr21/sudoku-solver/internal/puzzle"
	"github.com/kmarr21/sudoku-solver/internal/render"
	"github.com/kmarr21/sudoku-solver/internal/solver"
	"github.com/kmarr21/sudoku-solver/internal/usecase"
	"github.com/kmarr21/sudoku-solver/internal/validator"
)

// SolveOptions holds the flags of the solve command.
type SolveOptions struct {
	Puzzle  string
	NoMRV   bool
	NoFC    bool
	NoAC3   bool
	NoLCV   bool
	Timeout time.Duration
	SaveDir string
}

func (o *SolveOptions) techniques() domain.Techniques {
	return domain.Techniques{
		MRV:             !o.NoMRV,
		ForwardChecking: !o.NoFC,
		AC3:             !o.NoAC3,
		LCV:             !o.NoLCV,
	}
}

// NewSolveCommand creates the solve subcommand.
func NewSolveCommand(root *RootOptions) *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a bundled sample puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := puzzle.Named(opts.Puzzle)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if opts.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
				defer cancel()
			}

			t := opts.techniques()
			fmt.Fprintf(cmd.OutOrStdout(), "%s puzzle (%d givens):\n%s\n", opts.Puzzle, b.Givens(), render.Board(b))

			svc := buildService(t, opts.SaveDir)
			res, err := svc.Solve(ctx, opts.Puzzle, b, t)
			if err != nil {
				return err
			}
			if !res.Solved {
				fmt.Fprintf(cmd.OutOrStdout(), "no solution (%d nodes, %v)\n", res.Nodes, res.Duration)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "solved in %v (%d nodes):\n%s", res.Duration, res.Nodes, render.Board(b))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Puzzle, "puzzle", "easy", "bundled puzzle to solve (easy|hard)")
	cmd.Flags().BoolVar(&opts.NoMRV, "no-mrv", false, "disable minimum-remaining-values variable ordering")
	cmd.Flags().BoolVar(&opts.NoFC, "no-forward-checking", false, "disable forward checking")
	cmd.Flags().BoolVar(&opts.NoAC3, "no-ac3", false, "disable AC-3 arc consistency")
	cmd.Flags().BoolVar(&opts.NoLCV, "no-lcv", false, "disable least-constraining-value ordering")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "abort the solve after this duration (0 = no limit)")
	cmd.Flags().StringVar(&opts.SaveDir, "save-dir", "", "persist the solve result as JSON under this directory")

	return cmd
}

func buildService(t domain.Techniques, saveDir string) *usecase.Service {
	s := solver.NewCSP(t)
	v := validator.New()
	if saveDir == "" {
		return usecase.NewService(s, v, nil)
	}
	return usecase.NewService(s, v, storage.NewFS(saveDir))
}
