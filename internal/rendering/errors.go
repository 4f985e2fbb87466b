// Package rendering composes the plain-text analysis report and writes
// reports and analysis JSON to disk.
package rendering

import "fmt"

// TemplateError represents an error parsing or executing the report template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// SaveError represents a failure to persist a report or analysis file
type SaveError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SaveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("save error (%s): %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("save error (%s): %s", e.Path, e.Message)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}
