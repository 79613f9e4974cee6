package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

// ReportStore persists audit reports and loads baseline policies.
type ReportStore interface {
	// SaveReport writes report as indented JSON. The file is replaced atomically.
	SaveReport(ctx context.Context, path m.Path, report m.Report) error
	// LoadReport reads a report previously written by SaveReport.
	LoadReport(ctx context.Context, path m.Path) (m.Report, error)
	// SaveMarkdown writes a human-readable rendering of report.
	SaveMarkdown(ctx context.Context, path m.Path, report m.Report) error
	// LoadPolicy reads a JSON or YAML baseline policy. Thresholds must be
	// integers; range checks are left to the caller.
	LoadPolicy(ctx context.Context, path m.Path) (m.Policy, error)
}

// LocalReportStore implements ReportStore on the local disk.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport implements ReportStore.
func (s *LocalReportStore) SaveReport(_ context.Context, path m.Path, report m.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return writeFileAtomic(string(path), append(data, '\n'))
}

// LoadReport implements ReportStore. Unknown fields, missing counters and
// totals that disagree with their buckets are rejected with
// m.ErrInvalidReport.
func (s *LocalReportStore) LoadReport(_ context.Context, path m.Path) (m.Report, error) {
	// #nosec G304 - report path is chosen by the operator
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("read report: %w", err)
	}

	var doc reportDocument

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&doc); err != nil {
		return m.Report{}, fmt.Errorf("%w: decode %s: %w", m.ErrInvalidReport, path, err)
	}

	report, err := doc.report()
	if err != nil {
		return m.Report{}, fmt.Errorf("%s: %w", path, err)
	}

	return report, nil
}

// reportDocument mirrors m.Report with raw counters so each one can be checked.
type reportDocument struct {
	GeneratedAt  time.Time      `json:"generated_at"`
	RepoRoot     string         `json:"repo_root"`
	Counters     map[string]any `json:"counters"`
	PanicByFile  []m.FileCount  `json:"panic_by_file"`
	UnsafeByFile []m.FileCount  `json:"unsafe_by_file"`
}

func (d reportDocument) report() (m.Report, error) {
	if d.Counters == nil {
		return m.Report{}, fmt.Errorf("%w: counters are missing", m.ErrInvalidReport)
	}

	var counters m.Counters

	seen := 0

	for _, kind := range m.Kinds {
		for _, bucket := range m.Buckets {
			n, err := d.counter(string(kind) + "_" + string(bucket))
			if err != nil {
				return m.Report{}, err
			}

			counters.Add(kind, bucket, n)
			seen++
		}

		key := string(kind) + "_total"

		total, err := d.counter(key)
		if err != nil {
			return m.Report{}, err
		}

		seen++

		if total != counters.Total(kind) {
			return m.Report{}, fmt.Errorf("%w: counters.%s=%d but its buckets sum to %d",
				m.ErrInvalidReport, key, total, counters.Total(kind))
		}
	}

	if len(d.Counters) != seen {
		return m.Report{}, fmt.Errorf("%w: counters has %d keys, want %d", m.ErrInvalidReport, len(d.Counters), seen)
	}

	return m.Report{
		GeneratedAt:  d.GeneratedAt,
		RepoRoot:     d.RepoRoot,
		Counters:     counters,
		PanicByFile:  d.PanicByFile,
		UnsafeByFile: d.UnsafeByFile,
	}, nil
}

func (d reportDocument) counter(key string) (int, error) {
	raw, present := d.Counters[key]
	if !present {
		return 0, fmt.Errorf("%w: counters.%s is missing", m.ErrInvalidReport, key)
	}

	n, ok := asInt(raw)
	if !ok || n < 0 {
		return 0, fmt.Errorf("%w: counters.%s=%v is not a non-negative integer", m.ErrInvalidReport, key, raw)
	}

	return n, nil
}

// SaveMarkdown implements ReportStore.
func (s *LocalReportStore) SaveMarkdown(_ context.Context, path m.Path, report m.Report) error {
	return writeFileAtomic(string(path), []byte(RenderMarkdown(report)))
}

// policyDocument keeps raw values so type errors can be reported per field.
type policyDocument struct {
	SchemaVersion any            `json:"schema_version" yaml:"schema_version"`
	Thresholds    map[string]any `json:"thresholds" yaml:"thresholds"`
}

// LoadPolicy implements ReportStore.
func (s *LocalReportStore) LoadPolicy(_ context.Context, path m.Path) (m.Policy, error) {
	// #nosec G304 - baseline path is chosen by the operator
	data, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.Policy{}, fmt.Errorf("%w: %s", m.ErrBaselineMissing, path)
		}

		return m.Policy{}, fmt.Errorf("read baseline: %w", err)
	}

	var doc policyDocument

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		err = decoder.Decode(&doc)
	}

	if err != nil {
		return m.Policy{}, fmt.Errorf("decode baseline %s: %w", path, err)
	}

	return doc.policy()
}

func (d policyDocument) policy() (m.Policy, error) {
	version, ok := asInt(d.SchemaVersion)
	if !ok {
		return m.Policy{}, fmt.Errorf("%w: schema_version=%v", m.ErrSchemaVersion, d.SchemaVersion)
	}

	policy := m.Policy{SchemaVersion: version}

	fields := []struct {
		key    string
		target *int
	}{
		{"panic_total_max", &policy.Thresholds.PanicTotalMax},
		{"panic_review_required_max", &policy.Thresholds.PanicReviewRequiredMax},
		{"unsafe_total_max", &policy.Thresholds.UnsafeTotalMax},
		{"unsafe_review_required_max", &policy.Thresholds.UnsafeReviewRequiredMax},
	}

	for _, field := range fields {
		raw, present := d.Thresholds[field.key]
		if !present {
			return m.Policy{}, fmt.Errorf("%w: thresholds.%s is missing", m.ErrInvalidThreshold, field.key)
		}

		value, ok := asInt(raw)
		if !ok {
			return m.Policy{}, fmt.Errorf("%w: thresholds.%s=%v is not an integer", m.ErrInvalidThreshold, field.key, raw)
		}

		*field.target = value
	}

	return policy, nil
}

// asInt accepts JSON numbers and YAML integers. Floats and strings are rejected
// even when they hold an integral value.
func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			return 0, false
		}

		n, err := v.Int64()
		if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}

		return int(n), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		if v > math.MaxInt32 {
			return 0, false
		}

		return int(v), true
	}

	return 0, false
}

// writeFileAtomic writes data to a sibling temp file and renames it over path,
// so a failed run never leaves a half-written artifact.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}

	return nil
}
