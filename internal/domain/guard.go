package domain

import (
	"fmt"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

// ValidatePolicy rejects policies this tool cannot enforce. It must run
// before any comparison.
func ValidatePolicy(policy m.Policy) error {
	if policy.SchemaVersion != m.CurrentPolicySchemaVersion {
		return fmt.Errorf("%w: got %d, want %d", m.ErrSchemaVersion, policy.SchemaVersion, m.CurrentPolicySchemaVersion)
	}

	for _, check := range policyChecks(m.Counters{}, policy.Thresholds) {
		if check.max < 0 {
			return fmt.Errorf("%w: %s_max=%d is negative", m.ErrInvalidThreshold, check.metric, check.max)
		}
	}

	return nil
}

type policyCheck struct {
	metric string
	actual int
	max    int
}

func policyChecks(counters m.Counters, thresholds m.Thresholds) []policyCheck {
	return []policyCheck{
		{"panic_total", counters.PanicTotal, thresholds.PanicTotalMax},
		{"panic_review_required", counters.PanicReviewRequired, thresholds.PanicReviewRequiredMax},
		{"unsafe_total", counters.UnsafeTotal, thresholds.UnsafeTotalMax},
		{"unsafe_review_required", counters.UnsafeReviewRequired, thresholds.UnsafeReviewRequiredMax},
	}
}

// Evaluate compares report against the thresholds of policy. A counter equal
// to its threshold passes; one above it is a violation.
func Evaluate(report m.Report, policy m.Policy) m.GuardResult {
	var violations []string

	for _, check := range policyChecks(report.Counters, policy.Thresholds) {
		if check.actual > check.max {
			violations = append(violations, fmt.Sprintf("%s exceeded: actual=%d max=%d", check.metric, check.actual, check.max))
		}
	}

	return m.GuardResult{Pass: len(violations) == 0, Violations: violations}
}
