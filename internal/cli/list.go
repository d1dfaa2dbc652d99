package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmarr21/sudoku-solver/internal/infrastructure/storage"
)

// NewListCommand creates the list subcommand, which prints saved results.
func NewListCommand(root *RootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved solve results",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.NewFS(dir)
			metas, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(metas) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no saved results")
				return nil
			}
			for _, m := range metas {
				status := "unsolved"
				if m.Solved {
					status = "solved"
				}
				created := time.Unix(0, m.CreatedAt).Format(time.RFC3339)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", m.ID, status, created)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "save-dir", "./data", "directory holding saved results")
	return cmd
}
