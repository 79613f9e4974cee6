package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

func TestIsTestPath(t *testing.T) {
	tests := []struct {
		path m.Path
		want bool
	}{
		{"tests/integration.rs", true},
		{"crates/core/tests/parse.rs", true},
		{"crates/core/src/tests/mod.rs", true},
		{"crates/core/test/helpers.rs", true},
		{"benches/throughput.rs", true},
		{"examples/demo/main.rs", true},
		{"src/parser_test.rs", true},
		{"src/parser_tests.rs", true},
		{"src/lib.rs", false},
		{"src/testing.rs", false},
		{"src/tests.rs", true},
		{"crates/tau-extensions/src/tests.rs", true},
		{"crates/core/lib/tests.rs", false},
		{"src/latest/mod.rs", false},
		{"tests", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			assert.Equal(t, tt.want, IsTestPath(tt.path))
		})
	}
}
