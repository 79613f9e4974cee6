package cmd

import (
	"github.com/spf13/cobra"

	"scopeaudit.dev/pkg/scopeaudit/internal/domain"
	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff OLD.json NEW.json",
		Short: "Show how two audit reports differ",
		Long:  "Print a unified diff of the counters and per-file breakdowns of two audit reports.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Diff(cmd.Context(), domain.DiffArgs{
				Old: m.Path(args[0]),
				New: m.Path(args[1]),
			})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
