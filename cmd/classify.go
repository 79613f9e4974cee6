package cmd

import (
	"github.com/spf13/cobra"

	"scopeaudit.dev/pkg/scopeaudit/internal/domain"
)

// classifyCmd represents the classify command.
var classifyCmd = newClassifyCmd()

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify FILE:LINE [FILE:LINE...]",
		Short: "Print the scope bucket of specific lines",
		Long: `Classify explicit locations the same way audit does. Paths are relative to
--repo-root unless absolute. Useful to check why a line is or is not treated
as test code.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Classify(cmd.Context(), domain.ClassifyArgs{
				Root:    repoRoot(),
				Targets: args,
			})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
