package domain

import "regexp"

// MarkerRole says what a matching line does to the scope tracker.
type MarkerRole int

const (
	// RoleCfgTest marks the next block as compiled only under cfg(test).
	RoleCfgTest MarkerRole = iota
	// RoleAttrTest marks the next block as a test function.
	RoleAttrTest
	// RoleInnerCfgTest marks the enclosing block (or the file) as cfg(test).
	RoleInnerCfgTest
	// RoleSuppression is a cfg_attr(test, ...) wrapper. It only changes lints
	// under test and must never count as a test marker.
	RoleSuppression
)

// Marker is a named line predicate.
type Marker struct {
	Name    string
	Role    MarkerRole
	Pattern *regexp.Regexp
}

// MarkerSet is the closed set of marker predicates the tracker consults.
type MarkerSet []Marker

// DefaultMarkers recognizes the Rust test attributes.
var DefaultMarkers = MarkerSet{
	{
		Name:    "cfg-attr-wrapper",
		Role:    RoleSuppression,
		Pattern: regexp.MustCompile(`^\s*#\[cfg_attr\(`),
	},
	{
		Name:    "cfg-test",
		Role:    RoleCfgTest,
		Pattern: regexp.MustCompile(`^\s*#\[cfg\(\s*(?:all\(\s*)?test\b`),
	},
	{
		Name:    "inner-cfg-test",
		Role:    RoleInnerCfgTest,
		Pattern: regexp.MustCompile(`^\s*#!\[cfg\(\s*(?:all\(\s*)?test\b`),
	},
	{
		Name:    "test-attr",
		Role:    RoleAttrTest,
		Pattern: regexp.MustCompile(`^\s*#\[(?:[A-Za-z_][A-Za-z0-9_]*::)*(?:test|rstest)\b`),
	},
}

// lineMarks is the result of matching one line against a MarkerSet.
type lineMarks struct {
	cfgTest      bool
	attrTest     bool
	innerCfgTest bool
}

// match evaluates every marker against line. A suppression wrapper wins over
// everything else on the same line.
func (s MarkerSet) match(line string) lineMarks {
	var marks lineMarks

	for _, marker := range s {
		if !marker.Pattern.MatchString(line) {
			continue
		}

		switch marker.Role {
		case RoleSuppression:
			return lineMarks{}
		case RoleCfgTest:
			marks.cfgTest = true
		case RoleAttrTest:
			marks.attrTest = true
		case RoleInnerCfgTest:
			marks.innerCfgTest = true
		}
	}

	return marks
}
