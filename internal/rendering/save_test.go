package rendering

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultReportName(t *testing.T) {
	now := time.Date(2025, 11, 2, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, "resume_report_20251102_090507.txt", DefaultReportName(now))
}

func TestSaveReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "report.txt")
	report := "AI-Powered Resume Analyzer Report\nline two\n"

	require.NoError(t, SaveReport(path, report))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, report, string(got))
}

func TestSaveReport_Failure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := SaveReport(filepath.Join(blocker, "report.txt"), "report")
	require.Error(t, err)

	var saveErr *SaveError
	require.True(t, errors.As(err, &saveErr))
	assert.Equal(t, filepath.Join(blocker, "report.txt"), saveErr.Path)

	err = SaveReport("", "report")
	assert.True(t, errors.As(err, &saveErr))
}

func TestSaveAnalysisJSON(t *testing.T) {
	a := sampleAnalysis()
	a.RunID = uuid.New()
	a.ResumeText = "secret resume text"
	path := filepath.Join(t.TempDir(), "analysis.json")

	require.NoError(t, SaveAnalysisJSON(path, a))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, a.RunID.String(), decoded["run_id"])
	assert.NotContains(t, string(data), "secret resume text")
}
