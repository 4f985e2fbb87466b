// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jonathan/resume-checker/internal/suggestions"
	"github.com/jonathan/resume-checker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		runes := []rune(line)
		if len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// listPreview renders up to maxItemsToShow items, noting how many were left out.
func listPreview(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	count := min(len(items), maxItemsToShow)
	out := strings.Join(items[:count], ", ")
	if len(items) > maxItemsToShow {
		out += fmt.Sprintf(" ... and %d more", len(items)-maxItemsToShow)
	}
	return out
}

// PrintDocument outputs what was extracted from the resume file.
func (p *Printer) PrintDocument(doc *types.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", doc.Path))
	sb.WriteString(fmt.Sprintf("Format:   %s\n", doc.Format))
	if doc.Pages > 0 {
		sb.WriteString(fmt.Sprintf("Pages:    %d\n", doc.Pages))
	}
	sb.WriteString(fmt.Sprintf("Chars:    %d\n", len([]rune(doc.Text))))
	if len(doc.Hash) >= 12 {
		sb.WriteString(fmt.Sprintf("SHA256:   %s\n", doc.Hash[:12]))
	}
	for _, w := range doc.Warnings {
		sb.WriteString(fmt.Sprintf("Warning:  %s\n", w))
	}

	p.printBox("EXTRACTED DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the skills found in the resume.
func (p *Printer) PrintSkills(skills []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d skills\n", len(skills)))
	for _, s := range skills {
		sb.WriteString(fmt.Sprintf("  • %s\n", s))
	}
	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywordMatch outputs the score breakdown of the keyword match.
func (p *Printer) PrintKeywordMatch(match types.KeywordMatch) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match:    %.2f%%\n", match.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Score:    %d weighted + %d normal / %d max\n",
		match.WeightedScore, match.NormalScore, match.MaxScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Matched (%d): %s\n", len(match.MatchedWords), listPreview(match.MatchedWords)))
	sb.WriteString(fmt.Sprintf("Missing (%d): %s", len(match.MissingWords), listPreview(match.MissingWords)))

	p.printBox("KEYWORD MATCH", sb.String())
}

// PrintRecommendations outputs the ranked roles with their similarity.
func (p *Printer) PrintRecommendations(recs []types.RoleRecommendation) {
	if len(recs) == 0 {
		p.printBox("ROLE RECOMMENDATIONS", "No recommendations available.")
		return
	}

	var sb strings.Builder
	for i, r := range recs {
		sb.WriteString(fmt.Sprintf("#%d  %-28s %.4f\n", i+1, r.Role, r.Score))
	}
	p.printBox("ROLE RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVerdict prints the colored completion notice for a match percentage.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintVerdict(matchPercentage float64) {
	notice := suggestions.Notice(matchPercentage)
	switch suggestions.Verdict(matchPercentage) {
	case types.VerdictGood:
		fmt.Fprintf(p.out, "%s %s\n", color.GreenString("✓"), notice)
	case types.VerdictAverage:
		fmt.Fprintf(p.out, "%s %s\n", color.YellowString("⚠"), notice)
	default:
		fmt.Fprintf(p.out, "%s %s\n", color.RedString("✗"), notice)
	}
}
