package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

func policy(panicTotal, panicReview, unsafeTotal, unsafeReview int) m.Policy {
	return m.Policy{
		SchemaVersion: m.CurrentPolicySchemaVersion,
		Thresholds: m.Thresholds{
			PanicTotalMax:           panicTotal,
			PanicReviewRequiredMax:  panicReview,
			UnsafeTotalMax:          unsafeTotal,
			UnsafeReviewRequiredMax: unsafeReview,
		},
	}
}

func TestEvaluate_Boundary(t *testing.T) {
	report := m.Report{Counters: m.Counters{
		PanicTotal:           5,
		PanicReviewRequired:  2,
		UnsafeTotal:          1,
		UnsafeReviewRequired: 0,
	}}

	t.Run("equal passes", func(t *testing.T) {
		result := Evaluate(report, policy(5, 2, 1, 0))
		assert.True(t, result.Pass)
		assert.Empty(t, result.Violations)
	})

	t.Run("one over fails", func(t *testing.T) {
		result := Evaluate(report, policy(4, 2, 1, 0))
		assert.False(t, result.Pass)
		assert.Equal(t, []string{"panic_total exceeded: actual=5 max=4"}, result.Violations)
	})

	t.Run("every metric reported", func(t *testing.T) {
		result := Evaluate(report, policy(0, 0, 0, 0))
		assert.False(t, result.Pass)
		assert.Equal(t, []string{
			"panic_total exceeded: actual=5 max=0",
			"panic_review_required exceeded: actual=2 max=0",
			"unsafe_total exceeded: actual=1 max=0",
		}, result.Violations)
	})
}

func TestEvaluate_ReviewRequiredRatchet(t *testing.T) {
	report := m.Report{Counters: m.Counters{PanicTotal: 3, PanicReviewRequired: 1}}

	result := Evaluate(report, policy(5, 0, 0, 0))

	assert.False(t, result.Pass)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "review_required")
	assert.Equal(t, "panic_review_required exceeded: actual=1 max=0", result.Violations[0])
}

func TestValidatePolicy(t *testing.T) {
	tests := []struct {
		name    string
		policy  m.Policy
		wantErr error
	}{
		{"valid", policy(1, 0, 2, 0), nil},
		{"zero thresholds", policy(0, 0, 0, 0), nil},
		{"wrong schema", m.Policy{SchemaVersion: 2}, m.ErrSchemaVersion},
		{"missing schema", m.Policy{}, m.ErrSchemaVersion},
		{"negative threshold", policy(1, -1, 0, 0), m.ErrInvalidThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePolicy(tt.policy)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
