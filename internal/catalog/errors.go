package catalog

import "fmt"

// LoadError represents a failure reading or decoding a catalog file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	prefix := "catalog load error"
	if e.Path != "" {
		prefix = fmt.Sprintf("catalog load error (%s)", e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a catalog that decodes but breaks a cross-entry rule
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("catalog validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("catalog validation error: %s", e.Message)
}
