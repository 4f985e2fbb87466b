package rendering

import (
	_ "embed"
	"strings"
	"text/template"
	"time"

	"github.com/jonathan/resume-checker/internal/types"
)

const (
	// JobPreviewLimit is how many characters of the job description the report quotes.
	JobPreviewLimit = 300
	// WordSampleLimit caps the matched and missing word lists in the report.
	WordSampleLimit = 30
)

//go:embed templates/report.txt.tmpl
var reportTemplateText string

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"truncate": truncate,
	"joinOr":   joinOr,
	"head":     head,
}).Parse(reportTemplateText))

// ReportData is everything the report template reads.
type ReportData struct {
	GeneratedAt      time.Time
	ResumePath       string
	JobDescription   string
	PriorityKeywords []string
	KeywordMatch     types.KeywordMatch
	Skills           []string
	Recommendations  []types.RoleRecommendation
	Suggestions      []string
	Tips             []string
	JobPreviewLimit  int
	WordSampleLimit  int
}

// NewReportData collects report fields from an analysis.
func NewReportData(a *types.Analysis, tips []string) ReportData {
	return ReportData{
		GeneratedAt:      a.GeneratedAt,
		ResumePath:       a.ResumePath,
		JobDescription:   a.JobDescription,
		PriorityKeywords: a.PriorityKeywords,
		KeywordMatch:     a.KeywordMatch,
		Skills:           a.Skills,
		Recommendations:  a.Recommendations,
		Suggestions:      a.Suggestions,
		Tips:             tips,
		JobPreviewLimit:  JobPreviewLimit,
		WordSampleLimit:  WordSampleLimit,
	}
}

// ComposeReport renders the plain-text report for an analysis.
func ComposeReport(a *types.Analysis, tips []string) (string, error) {
	return Render(NewReportData(a, tips))
}

// Render executes the report template against data.
func Render(data ReportData) (string, error) {
	var b strings.Builder
	if err := reportTemplate.Execute(&b, data); err != nil {
		return "", &TemplateError{Message: "failed to execute report template", Cause: err}
	}
	return b.String(), nil
}

// truncate keeps the first limit characters, counted in runes, and marks the cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
