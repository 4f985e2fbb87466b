package ingestion

import (
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxTab = regexp.MustCompile(`<w:tab/>`)
	docxTag = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX returns the paragraph text of the main document body, one
// paragraph per line.
func extractDOCX(path string) (string, int, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", 0, &ExtractionError{Format: FormatDOCX, Message: "failed to open", Cause: err}
	}
	defer func() { _ = r.Close() }()

	return docxXMLToText(r.Editable().GetContent()), 0, nil
}

// docxXMLToText strips WordprocessingML markup down to its text runs.
func docxXMLToText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = docxTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
