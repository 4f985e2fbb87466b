package ranking

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyVocabulary means no document produced a single term.
	ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain no terms")
	// ErrNoSharedVocabulary means the resume shares no term with any role description.
	ErrNoSharedVocabulary = errors.New("resume shares no vocabulary with the role corpus")
	// ErrNoRoles means the role corpus is empty.
	ErrNoRoles = errors.New("role corpus is empty")
)

// VectorizationError wraps a failure to build comparable vectors for a recommendation
type VectorizationError struct {
	Documents int
	Cause     error
}

func (e *VectorizationError) Error() string {
	return fmt.Sprintf("vectorization failed over %d documents: %v", e.Documents, e.Cause)
}

func (e *VectorizationError) Unwrap() error {
	return e.Cause
}
