package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scopeaudit.dev/pkg/scopeaudit/internal/domain"
	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

const auditLongDescription = `Scan the repository for panic! calls and unsafe regions, classify every
occurrence and write the JSON audit report.

Buckets:
  review_required   needs manual review
  cfg_test_module   inside a #[cfg(test)] block
  inline_test       inside a #[test] function
  path_test         file is test code by path`

var auditOutputFlag string
var auditMarkdownFlag string

// auditCmd represents the audit command.
var auditCmd = newAuditCmd()

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inventory and classify panic/unsafe occurrences",
		Long:  auditLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := workflow.Audit(cmd.Context(), auditArgsFromConfig())
			return err
		},
	}

	configureAuditFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func configureAuditFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&auditOutputFlag, outputFlagName, "o", viper.GetString(outputConfigKey), "JSON report path")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputConfigKey)

	cmd.Flags().StringVar(&auditMarkdownFlag, markdownFlagName, viper.GetString(markdownConfigKey), "optional Markdown report path")
	bindFlagToConfig(cmd.Flags().Lookup(markdownFlagName), markdownConfigKey)
}

func auditArgsFromConfig() domain.AuditArgs {
	return domain.AuditArgs{
		Root:     repoRoot(),
		Exclude:  viper.GetStringSlice(excludeConfigKey),
		Locator:  viper.GetString(locatorConfigKey),
		Threads:  viper.GetInt(parallelConfigKey),
		Output:   m.Path(viper.GetString(outputConfigKey)),
		Markdown: m.Path(viper.GetString(markdownConfigKey)),
	}
}
