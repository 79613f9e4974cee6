package model

import "errors"

// Configuration errors. They are fatal and reported before any scan runs.
var (
	// ErrBaselineMissing is returned when the baseline policy file does not exist.
	ErrBaselineMissing = errors.New("baseline policy not found")
	// ErrSchemaVersion is returned for a missing or unsupported schema_version.
	ErrSchemaVersion = errors.New("unsupported baseline schema version")
	// ErrInvalidThreshold is returned for missing, non-integer or negative thresholds.
	ErrInvalidThreshold = errors.New("invalid baseline threshold")
	// ErrInvalidReport is returned for an audit report that is not a complete,
	// self-consistent report written by this tool.
	ErrInvalidReport = errors.New("invalid audit report")
)
