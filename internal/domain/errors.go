package domain

import "fmt"

// ParseError describes why a data file could not be loaded. Line is 1-based
// (the header is line 1) and zero when the failure is not tied to a row.
type ParseError struct {
	Path   string
	Line   int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s: line %d: %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("parse %s: %s", e.Path, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
