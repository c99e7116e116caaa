// Package report reads and writes violation report documents for the CLI.
package report

import "fmt"

// LoadError represents a failure to read or decode a report file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("report %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("report %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
