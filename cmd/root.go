// Package cmd provides the root command and CLI setup for scopeaudit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"scopeaudit.dev/pkg/scopeaudit/internal/adapter"
	"scopeaudit.dev/pkg/scopeaudit/internal/controller"
	"scopeaudit.dev/pkg/scopeaudit/internal/domain"
	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var nativeLocator adapter.OccurrenceLocator
var rgLocator adapter.OccurrenceLocator
var workflow domain.Workflow
var ui controller.UI

// repoRootFlag is a root-level flag shared by every command that scans.
var repoRootFlag string

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// locatorFlag and parallelFlag configure scanning for audit and guard.
var locatorFlag string
var parallelFlag int

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	nativeLocator = adapter.NewNativeLocator(fsAdapter)
	rgLocator = adapter.NewRipgrepLocator()
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		nativeLocator,
		rgLocator,
	)
}

const rootLongDescription = `scopeaudit inventories panic! calls and unsafe regions in a Rust source tree
and classifies each one as test-only or requiring review.

A line is test-only when its file lives under a test directory (tests/,
benches/, examples/) or ends in _test.rs, or when it sits inside a block
introduced by #[cfg(test)] or a #[test] function.

The guard command compares the counts with a baseline policy so they can only
go down over time.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "scopeaudit",
		Short:        "Panic/unsafe audit and ratchet guard for Rust sources",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(
		&repoRootFlag, repoRootFlagName, "C",
		viper.GetString(repoRootConfigKey),
		"repository root to scan",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(repoRootFlagName), repoRootConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files whose repo-relative path matches regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringVar(&locatorFlag, locatorFlagName, viper.GetString(locatorConfigKey), "occurrence locator: native or rg")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(locatorFlagName), locatorConfigKey)

	cmd.PersistentFlags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of files classified in parallel")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default from log.filename)")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func repoRoot() m.Path {
	return m.Path(viper.GetString(repoRootConfigKey))
}
