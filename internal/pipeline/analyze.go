// Package pipeline runs one resume analysis end to end.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-checker/internal/catalog"
	"github.com/jonathan/resume-checker/internal/ingestion"
	"github.com/jonathan/resume-checker/internal/matching"
	"github.com/jonathan/resume-checker/internal/parsing"
	"github.com/jonathan/resume-checker/internal/ranking"
	"github.com/jonathan/resume-checker/internal/rendering"
	"github.com/jonathan/resume-checker/internal/skills"
	"github.com/jonathan/resume-checker/internal/suggestions"
	"github.com/jonathan/resume-checker/internal/types"
)

// DefaultTopN is the number of role recommendations when the request leaves it unset.
const DefaultTopN = 2

// Step names reported through ProgressCallback, in execution order.
const (
	StepExtract   = "extract_text"
	StepNormalize = "normalize"
	StepSkills    = "extract_skills"
	StepMatch     = "match_keywords"
	StepRecommend = "recommend_roles"
	StepSuggest   = "generate_suggestions"
	StepCompose   = "compose_report"
)

// ProgressEvent represents a progress update during an analysis
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called after each pipeline step
type ProgressCallback func(event ProgressEvent)

// Options holds the collaborators of an analysis run.
type Options struct {
	// Catalog supplies skills, roles and report text. Nil means the embedded default.
	Catalog    *catalog.Catalog
	OnProgress ProgressCallback
	// Now defaults to time.Now.
	Now func() time.Time
}

func (o *Options) withDefaults() Options {
	out := *o
	if out.Catalog == nil {
		out.Catalog = catalog.Default()
	}
	if out.Now == nil {
		out.Now = time.Now
	}
	return out
}

func emitProgress(opts Options, runID uuid.UUID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID.String(),
			Content: content,
		})
	}
}

// Analyze extracts the resume document named by req and analyzes it against
// the job description. Input errors (invalid request, missing file,
// unsupported format) are returned before any extraction happens.
func Analyze(ctx context.Context, req types.AnalyzeRequest, opts Options) (*types.Analysis, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analyze request: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := ingestion.ExtractText(req.ResumePath)
	if err != nil {
		return nil, err
	}
	return AnalyzeDocument(ctx, doc, req, opts)
}

// AnalyzeDocument runs every stage after text extraction. The returned
// Analysis is complete and is not modified afterwards.
func AnalyzeDocument(ctx context.Context, doc *types.Document, req types.AnalyzeRequest, opts Options) (*types.Analysis, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analyze request: %w", err)
	}
	opts = opts.withDefaults()
	cat := opts.Catalog
	runID := uuid.New()

	emitProgress(opts, runID, StepExtract, fmt.Sprintf("Extracted %d characters from %s", len(doc.Text), doc.Path), doc)

	jobDescription := strings.TrimSpace(req.JobDescription)
	if jobDescription == "" {
		jobDescription = cat.DefaultJobDescription
	}

	priority := req.PriorityKeywords
	if priority == nil {
		priority = []string{}
	}

	topN := req.TopN
	if topN == 0 {
		topN = DefaultTopN
	}

	resumeClean := parsing.Normalize(doc.Text)
	jobClean := parsing.Normalize(jobDescription)
	emitProgress(opts, runID, StepNormalize, "Normalized resume and job description", nil)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	extractor := skills.NewExtractor(cat.Skills)
	found := extractor.Extract(doc.Text)
	slog.Debug("skills extracted", "run_id", runID, "vocabulary", extractor.Size(), "found", len(found))
	emitProgress(opts, runID, StepSkills, fmt.Sprintf("Found %d skills", len(found)), found)

	match := matching.MatchKeywords(jobClean, resumeClean, priority)
	emitProgress(opts, runID, StepMatch, fmt.Sprintf("Match score %.2f%%", match.MatchPercentage), match)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	recs := ranking.RecommendRoles(resumeClean, cat.Roles, topN)
	emitProgress(opts, runID, StepRecommend, fmt.Sprintf("Ranked %d roles", len(recs)), recs)

	suggested := suggestions.Generate(match.MissingWords, found, match.MatchPercentage, recs, cat)
	emitProgress(opts, runID, StepSuggest, fmt.Sprintf("Generated %d suggestions", len(suggested)), suggested)

	analysis := &types.Analysis{
		RunID:            runID,
		GeneratedAt:      opts.Now(),
		ResumePath:       doc.Path,
		Document:         doc,
		JobDescription:   jobDescription,
		PriorityKeywords: priority,
		ResumeText:       resumeClean,
		JobText:          jobClean,
		Skills:           found,
		KeywordMatch:     match,
		Recommendations:  recs,
		Suggestions:      suggested,
		Verdict:          suggestions.Verdict(match.MatchPercentage),
	}

	report, err := rendering.ComposeReport(analysis, cat.Tips)
	if err != nil {
		return nil, fmt.Errorf("failed to compose report: %w", err)
	}
	analysis.Report = report
	emitProgress(opts, runID, StepCompose, "Composed report", nil)

	return analysis, nil
}
