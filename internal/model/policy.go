package model

// CurrentPolicySchemaVersion is the only baseline schema this tool accepts.
const CurrentPolicySchemaVersion = 1

// Thresholds are the ratchet limits of a baseline policy.
type Thresholds struct {
	PanicTotalMax           int `json:"panic_total_max" yaml:"panic_total_max"`
	PanicReviewRequiredMax  int `json:"panic_review_required_max" yaml:"panic_review_required_max"`
	UnsafeTotalMax          int `json:"unsafe_total_max" yaml:"unsafe_total_max"`
	UnsafeReviewRequiredMax int `json:"unsafe_review_required_max" yaml:"unsafe_review_required_max"`
}

// Policy is the externally authored baseline the guard compares against.
type Policy struct {
	SchemaVersion int        `json:"schema_version" yaml:"schema_version"`
	Thresholds    Thresholds `json:"thresholds" yaml:"thresholds"`
}

// GuardResult is the outcome of comparing a report with a policy.
type GuardResult struct {
	Pass       bool
	Violations []string
}
