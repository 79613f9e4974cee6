package domain

import (
	"strings"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

// testDirSegments are directory names that make every file below them test code.
var testDirSegments = map[string]struct{}{
	"test":     {},
	"tests":    {},
	"benches":  {},
	"examples": {},
}

// testFileSuffixes are filename conventions for test-only files.
var testFileSuffixes = []string{"_test.rs", "_tests.rs"}

// IsTestPath reports whether the file at path (relative to the scan root) is
// test code as a whole. It never touches the disk.
func IsTestPath(path m.Path) bool {
	slashed := strings.Trim(path.Slash(), "/")
	if slashed == "" {
		return false
	}

	segments := strings.Split(slashed, "/")
	for _, segment := range segments[:len(segments)-1] {
		if _, ok := testDirSegments[segment]; ok {
			return true
		}
	}

	name := segments[len(segments)-1]
	// src/tests.rs is the file form of a src/tests/ module.
	if name == "tests.rs" && len(segments) > 1 && segments[len(segments)-2] == "src" {
		return true
	}

	for _, suffix := range testFileSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return false
}
