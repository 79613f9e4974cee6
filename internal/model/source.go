// Package model defines the data structures shared by the audit, the scope
// classifier and the ratchet guard.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Slash returns the path with forward slashes, the form used in reports.
func (p Path) Slash() string {
	return filepath.ToSlash(string(p))
}

// File represents a Rust source file taking part in an audit.
type File struct {
	// FullPath is the absolute path used for reading and memoization.
	FullPath Path
	// ShortPath is relative to the repository root and is what reports show.
	ShortPath Path
}
