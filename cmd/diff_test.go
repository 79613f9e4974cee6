package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scopeaudit.dev/pkg/scopeaudit/internal/domain"
	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

func TestDiffCmd(t *testing.T) {
	mockWorkflow := useWorkflow(t)
	cmd, _, _ := newTestRoot(t, newDiffCmd())

	mockWorkflow.EXPECT().Diff(mock.Anything, domain.DiffArgs{
		Old: m.Path("old.json"),
		New: m.Path("new.json"),
	}).Return("", nil)

	cmd.SetArgs([]string{"diff", "old.json", "new.json"})
	require.NoError(t, cmd.Execute())
}

func TestDiffCmd_Errors(t *testing.T) {
	mockWorkflow := useWorkflow(t)

	cmd, _, _ := newTestRoot(t, newDiffCmd())
	cmd.SetArgs([]string{"diff", "only.json"})
	require.Error(t, cmd.Execute())

	mockWorkflow.EXPECT().Diff(mock.Anything, mock.Anything).Return("", errors.New("read old.json"))

	cmd, _, _ = newTestRoot(t, newDiffCmd())
	cmd.SetArgs([]string{"diff", "old.json", "new.json"})
	require.Error(t, cmd.Execute())
}
