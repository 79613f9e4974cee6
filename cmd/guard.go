package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scopeaudit.dev/pkg/scopeaudit/internal/domain"
	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

const guardLongDescription = `Compare panic/unsafe counts with the baseline policy and fail on any
regression.

The baseline is JSON (or YAML) with schema_version 1:

  {"schema_version": 1, "thresholds": {"panic_total_max": 120,
   "panic_review_required_max": 0, "unsafe_total_max": 4,
   "unsafe_review_required_max": 0}}

Without --audit-json a fresh audit is run first; nothing is written to disk.
Exit status is 1 on any violation or on a missing or malformed baseline.`

var guardBaselineFlag string
var guardAuditJSONFlag string
var guardQuietFlag bool
var guardPolicyDocFlag string

// guardCmd represents the guard command.
var guardCmd = newGuardCmd()

func newGuardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guard",
		Short: "Fail when panic/unsafe counts exceed the baseline",
		Long:  guardLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			auditArgs := auditArgsFromConfig()
			auditArgs.Output = ""
			auditArgs.Markdown = ""

			_, err := workflow.Guard(cmd.Context(), domain.GuardArgs{
				AuditArgs: auditArgs,
				Baseline:  m.Path(viper.GetString(baselineConfigKey)),
				AuditJSON: m.Path(guardAuditJSONFlag),
				PolicyDoc: viper.GetString(policyDocConfigKey),
				Quiet:     viper.GetBool(quietConfigKey),
			})

			return err
		},
	}

	configureGuardFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(guardCmd)
}

func configureGuardFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&guardBaselineFlag, baselineFlagName, "b", viper.GetString(baselineConfigKey), "baseline policy file (JSON or YAML)")
	bindFlagToConfig(cmd.Flags().Lookup(baselineFlagName), baselineConfigKey)

	cmd.Flags().StringVar(&guardAuditJSONFlag, auditJSONFlagName, "", "use a previously written audit report instead of scanning")

	cmd.Flags().BoolVarP(&guardQuietFlag, quietFlagName, "q", viper.GetBool(quietConfigKey), "print nothing on success")
	bindFlagToConfig(cmd.Flags().Lookup(quietFlagName), quietConfigKey)

	cmd.Flags().StringVar(&guardPolicyDocFlag, policyDocFlagName, viper.GetString(policyDocConfigKey), "policy document named after violations")
	bindFlagToConfig(cmd.Flags().Lookup(policyDocFlagName), policyDocConfigKey)
}
