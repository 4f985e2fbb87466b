package rendering

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-checker/internal/types"
)

// DefaultReportName returns resume_report_YYYYMMDD_HHMMSS.txt for the given time.
func DefaultReportName(now time.Time) string {
	return "resume_report_" + now.Format("20060102_150405") + ".txt"
}

// SaveReport writes the report verbatim, creating parent directories.
func SaveReport(path, report string) error {
	return writeFile(path, []byte(report))
}

// MarshalAnalysis renders an analysis as indented JSON.
func MarshalAnalysis(a *types.Analysis) ([]byte, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, &TemplateError{Message: "failed to marshal analysis", Cause: err}
	}
	return append(data, '\n'), nil
}

// SaveAnalysisJSON writes the analysis as indented JSON.
func SaveAnalysisJSON(path string, a *types.Analysis) error {
	data, err := MarshalAnalysis(a)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if path == "" {
		return &SaveError{Path: path, Message: "no output path given"}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &SaveError{Path: path, Message: "failed to create output directory", Cause: err}
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &SaveError{Path: path, Message: "failed to write file", Cause: err}
	}
	return nil
}
