package ingestion

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF concatenates the plain text of every readable page, separated by
// a space. Unreadable pages are skipped; the first page failure is reported.
func extractPDF(path string) (text string, pages int, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = &ExtractionError{Format: FormatPDF, Message: "parser panic", Cause: fmt.Errorf("%v", r)}
		}
	}()

	f, reader, openErr := pdf.Open(path)
	if openErr != nil {
		return "", 0, &ExtractionError{Format: FormatPDF, Message: "failed to open", Cause: openErr}
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	var pageErr error
	pages = reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, perr := page.GetPlainText(nil)
		if perr != nil {
			if pageErr == nil {
				pageErr = &ExtractionError{Format: FormatPDF, Message: fmt.Sprintf("page %d unreadable", i), Cause: perr}
			}
			continue
		}
		if pageText == "" {
			continue
		}
		b.WriteString(pageText)
		b.WriteString(" ")
	}

	return b.String(), pages, pageErr
}
