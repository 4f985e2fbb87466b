package ingestion

import (
	"errors"
	"fmt"
)

// ErrFileNotFound is returned when the input path is empty or does not exist.
var ErrFileNotFound = errors.New("file not found")

// UnsupportedFormatError is returned for files whose extension has no extractor.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q for %s: use PDF, DOCX, TXT or HTML", e.Extension, e.Path)
}

// ExtractionError describes a parse failure that was degraded to empty or
// partial text. It is recorded on the Document, never returned.
type ExtractionError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s read error: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s read error: %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
