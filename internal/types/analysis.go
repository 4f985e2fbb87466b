package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Verdict is the coarse completion notice shown after an analysis.
type Verdict string

const (
	VerdictGood    Verdict = "good"
	VerdictAverage Verdict = "average"
	VerdictLow     Verdict = "low"
)

// Document describes text extracted from a resume or job description file.
type Document struct {
	Path        string    `json:"path"`
	Format      string    `json:"format"`
	Text        string    `json:"-"`
	Pages       int       `json:"pages,omitempty"`
	Hash        string    `json:"hash"`
	ExtractedAt time.Time `json:"extracted_at"`
	// Warnings collects parse failures that were degraded to empty or partial text.
	Warnings []string `json:"warnings,omitempty"`
}

// Degraded reports whether extraction hit a parse failure.
func (d *Document) Degraded() bool {
	return len(d.Warnings) > 0
}

// AnalyzeRequest is the input to one analysis run.
type AnalyzeRequest struct {
	ResumePath string `json:"resume_path" validate:"required"`
	// JobDescription falls back to the catalog default when blank.
	JobDescription   string   `json:"job_description,omitempty"`
	PriorityKeywords []string `json:"priority_keywords,omitempty" validate:"dive,required"`
	TopN             int      `json:"top_n" validate:"gte=0,lte=100"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Analysis is the immutable result of one analysis run. Callers hold it for
// display and persistence; nothing in the pipeline mutates it after return.
type Analysis struct {
	RunID            uuid.UUID            `json:"run_id"`
	GeneratedAt      time.Time            `json:"generated_at"`
	ResumePath       string               `json:"resume_path"`
	Document         *Document            `json:"document,omitempty"`
	JobDescription   string               `json:"job_description"`
	PriorityKeywords []string             `json:"priority_keywords"`
	ResumeText       string               `json:"-"`
	JobText          string               `json:"-"`
	Skills           []string             `json:"skills"`
	KeywordMatch     KeywordMatch         `json:"keyword_match"`
	Recommendations  []RoleRecommendation `json:"recommendations"`
	Suggestions      []string             `json:"suggestions"`
	Verdict          Verdict              `json:"verdict"`
	Report           string               `json:"report"`
}

// TopRecommendation returns the best-scoring role, if any.
func (a *Analysis) TopRecommendation() (RoleRecommendation, bool) {
	if len(a.Recommendations) == 0 {
		return RoleRecommendation{}, false
	}
	return a.Recommendations[0], true
}
