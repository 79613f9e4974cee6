package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scopeaudit.dev/pkg/scopeaudit/internal/domain"
	domainmocks "scopeaudit.dev/pkg/scopeaudit/internal/domain/mocks"
	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

func useWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func TestAuditCmd_Defaults(t *testing.T) {
	mockWorkflow := useWorkflow(t)
	cmd, _, _ := newTestRoot(t, newAuditCmd())

	mockWorkflow.EXPECT().Audit(mock.Anything, mock.MatchedBy(func(args domain.AuditArgs) bool {
		return args.Root == m.Path(".") &&
			len(args.Exclude) == 0 &&
			args.Locator == "native" &&
			args.Threads == 1 &&
			args.Output == m.Path("panic-unsafe-audit.json") &&
			args.Markdown == ""
	})).Return(m.Report{}, nil)

	cmd.SetArgs([]string{"audit"})
	require.NoError(t, cmd.Execute())
}

func TestAuditCmd_Flags(t *testing.T) {
	mockWorkflow := useWorkflow(t)
	cmd, _, _ := newTestRoot(t, newAuditCmd())

	mockWorkflow.EXPECT().Audit(mock.Anything, mock.MatchedBy(func(args domain.AuditArgs) bool {
		return args.Root == m.Path("/src/repo") &&
			len(args.Exclude) == 2 && args.Exclude[0] == "^vendor/" && args.Exclude[1] == "generated" &&
			args.Locator == "rg" &&
			args.Threads == 4 &&
			args.Output == m.Path("out/audit.json") &&
			args.Markdown == m.Path("out/audit.md")
	})).Return(m.Report{}, nil)

	cmd.SetArgs([]string{
		"audit",
		"-C", "/src/repo",
		"-x", "^vendor/", "--exclude", "generated",
		"--locator", "rg",
		"-p", "4",
		"-o", "out/audit.json",
		"--markdown", "out/audit.md",
	})
	require.NoError(t, cmd.Execute())
}

func TestAuditCmd_RejectsArguments(t *testing.T) {
	useWorkflow(t)
	cmd, _, _ := newTestRoot(t, newAuditCmd())

	cmd.SetArgs([]string{"audit", "src"})
	require.Error(t, cmd.Execute())
}
