// Package ingestion extracts plain text from resume and job description files.
//
// Input errors (missing file, unsupported extension) are returned before any
// parsing happens. Parse failures inside a supported file are not errors: the
// text degrades to empty or partial, and the failure is logged and recorded in
// Document.Warnings.
package ingestion

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-checker/internal/types"
)

// Format identifies a supported document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "txt"
	FormatHTML Format = "html"
)

var extensions = map[string]Format{
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
	".txt":  FormatText,
	".text": FormatText,
	".html": FormatHTML,
	".htm":  FormatHTML,
}

// FormatFromPath maps a file extension, case-insensitively, to a Format.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extensions[ext]
	if !ok {
		return "", &UnsupportedFormatError{Path: path, Extension: ext}
	}
	return format, nil
}

// extractor returns raw text, a page count where meaningful, and any parse failure.
type extractor func(path string) (text string, pages int, err error)

var extractors = map[Format]extractor{
	FormatPDF:  extractPDF,
	FormatDOCX: extractDOCX,
	FormatText: extractPlain,
	FormatHTML: extractHTMLFile,
}

// ExtractText reads the document at path and returns its cleaned text.
func ExtractText(path string) (*types.Document, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: no path given", ErrFileNotFound)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}

	doc := newDocument(path, format)
	raw, pages, extractErr := extractors[format](path)
	if extractErr != nil {
		slog.Warn("text extraction degraded", "path", path, "format", format, "error", extractErr)
		doc.Warnings = append(doc.Warnings, extractErr.Error())
	}

	doc.Text = CleanText(raw)
	doc.Pages = pages
	doc.Hash = computeHash(doc.Text)
	if doc.Text == "" && extractErr == nil {
		doc.Warnings = append(doc.Warnings, "no text extracted")
	}

	slog.Debug("extracted document text",
		"path", path,
		"format", format,
		"pages", pages,
		"chars", len(doc.Text),
	)
	return doc, nil
}

// LoadJobDescription reads a job description from any supported file and
// returns its cleaned text.
func LoadJobDescription(path string) (string, error) {
	doc, err := ExtractText(path)
	if err != nil {
		return "", fmt.Errorf("failed to load job description: %w", err)
	}
	return doc.Text, nil
}

func extractPlain(path string) (string, int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", 0, &ExtractionError{Format: FormatText, Message: "failed to read file", Cause: err}
	}
	return string(content), 0, nil
}
