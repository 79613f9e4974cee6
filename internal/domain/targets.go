package domain

import m "scopeaudit.dev/pkg/scopeaudit/internal/model"

// TargetPatterns are the risky constructs searched for, per kind. They must be
// valid for both Go's regexp and ripgrep.
var TargetPatterns = map[m.Kind]string{
	m.KindPanic:  `\bpanic!\s*\(`,
	m.KindUnsafe: `\bunsafe\s+(?:fn|impl|trait|extern)\b|\bunsafe\s*\{`,
}
