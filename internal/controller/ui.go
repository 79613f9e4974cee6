// Package controller provides output adapters for displaying audit results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

// UI defines how workflow results reach the user.
// Implementations can use different output methods (plain text, styled text).
type UI interface {
	DisplaySummary(ctx context.Context, report m.Report) error
	DisplayClassifications(ctx context.Context, classified []m.Classified) error
	DisplayGuardResult(ctx context.Context, result m.GuardResult, opts GuardDisplayOptions) error
	DisplayDiff(ctx context.Context, diff string) error
}

// GuardDisplayOptions controls guard verdict output.
type GuardDisplayOptions struct {
	// PolicyDoc is printed after the violations as the governing reference.
	PolicyDoc string
	// Quiet suppresses the pass message.
	Quiet bool
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewUI returns the UI for cmd. Styling is enabled on terminals only.
func NewUI(cmd *cobra.Command, tty bool) UI {
	ui := NewSimpleUI(cmd)
	if tty {
		ui.styles = newTerminalStyles()
	}

	return ui
}
