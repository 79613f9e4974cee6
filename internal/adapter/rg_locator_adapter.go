package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

// RipgrepLocatorName is the --locator value of the ripgrep-backed locator.
const RipgrepLocatorName = "rg"

// RipgrepLocator delegates the search to the ripgrep binary.
type RipgrepLocator struct {
	binary   string
	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewRipgrepLocator constructs a locator running `rg` from PATH.
func NewRipgrepLocator() *RipgrepLocator {
	return &RipgrepLocator{
		binary:   "rg",
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

// Name implements OccurrenceLocator.
func (l *RipgrepLocator) Name() string {
	return RipgrepLocatorName
}

// Available implements OccurrenceLocator.
func (l *RipgrepLocator) Available(_ context.Context) error {
	if _, err := l.lookPath(l.binary); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrToolMissing, l.binary, err)
	}

	return nil
}

// Locate implements OccurrenceLocator.
func (l *RipgrepLocator) Locate(ctx context.Context, req LocateRequest) ([]m.Occurrence, error) {
	var occurrences []m.Occurrence

	for _, kind := range m.Kinds {
		pattern, ok := req.Patterns[kind]
		if !ok {
			continue
		}

		output, err := l.run(ctx, l.binary, ripgrepArgs(pattern, req)...)
		if err != nil {
			return nil, fmt.Errorf("rg %s: %w", kind, err)
		}

		found, err := parseRipgrepOutput(req, kind, output)
		if err != nil {
			return nil, err
		}

		occurrences = append(occurrences, found...)
	}

	sortOccurrences(occurrences)
	slog.Debug("rg locator finished", "root", req.Root, "occurrences", len(occurrences))

	return occurrences, nil
}

func ripgrepArgs(pattern string, req LocateRequest) []string {
	args := []string{
		"--no-config",
		// Walk the same files as the native locator: ignore files and hidden
		// directories are not exclusions.
		"--no-ignore",
		"--hidden",
		"--line-number",
		"--no-heading",
		"--with-filename",
		"--null",
		"--color", "never",
		"--glob", "*.rs",
	}

	dirs := make([]string, 0, len(skippedDirs))
	for dir := range skippedDirs {
		dirs = append(dirs, dir)
	}

	sort.Strings(dirs)

	for _, dir := range dirs {
		args = append(args, "--glob", "!"+dir+"/")
	}

	if req.Threads > 0 {
		args = append(args, "--threads", strconv.Itoa(req.Threads))
	}

	return append(args, "-e", pattern, string(req.Root))
}

// parseRipgrepOutput reads `path\x00line:text` records.
func parseRipgrepOutput(req LocateRequest, kind m.Kind, output []byte) ([]m.Occurrence, error) {
	var found []m.Occurrence

	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		record := scanner.Bytes()

		pathEnd := bytes.IndexByte(record, 0)
		if pathEnd < 0 {
			return nil, fmt.Errorf("unexpected rg output %q", record)
		}

		rest := record[pathEnd+1:]

		lineEnd := bytes.IndexByte(rest, ':')
		if lineEnd < 0 {
			return nil, fmt.Errorf("unexpected rg output %q", record)
		}

		line, err := strconv.Atoi(string(rest[:lineEnd]))
		if err != nil {
			return nil, fmt.Errorf("parse rg line number: %w", err)
		}

		if isCommentLine(string(rest[lineEnd+1:])) {
			continue
		}

		full := string(record[:pathEnd])
		if !filepath.IsAbs(full) {
			full = filepath.Join(string(req.Root), full)
		}

		rel, err := filepath.Rel(string(req.Root), full)
		if err != nil {
			return nil, err
		}

		if isExcluded(m.Path(rel), req.Exclude) {
			continue
		}

		found = append(found, m.Occurrence{
			Kind: kind,
			File: m.File{FullPath: m.Path(full), ShortPath: m.Path(rel)},
			Line: line,
		})
	}

	return found, scanner.Err()
}

// runCommand runs name and returns its stdout. Exit status 1 is ripgrep's
// "no matches" and is not an error.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, stderr.String())
	}

	return stdout.Bytes(), nil
}
