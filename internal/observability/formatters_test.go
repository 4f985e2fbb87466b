package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-checker/internal/types"
)

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocument(&types.Document{
		Path:     "resume.pdf",
		Format:   "pdf",
		Text:     "Python SQL",
		Pages:    2,
		Hash:     "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
		Warnings: []string{"pdf read error: page 2 unreadable"},
	})
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED DOCUMENT")
	assert.Contains(t, output, "resume.pdf")
	assert.Contains(t, output, "Pages:    2")
	assert.Contains(t, output, "0123456789ab")
	assert.Contains(t, output, "page 2 unreadable")
}

func TestPrintDocument_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocument(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkills([]string{"power bi", "python"})

	output := buf.String()
	assert.Contains(t, output, "Found 2 skills")
	assert.Contains(t, output, "• power bi")
}

func TestPrintKeywordMatch(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintKeywordMatch(types.KeywordMatch{
		MatchPercentage: 50,
		MatchedWords:    []string{"a", "b", "c", "d", "e", "f", "g"},
		MissingWords:    []string{"excel"},
		NormalScore:     5,
		MaxScore:        10,
	})

	output := buf.String()
	assert.Contains(t, output, "Match:    50.00%")
	assert.Contains(t, output, "0 weighted + 5 normal / 10 max")
	assert.Contains(t, output, "Matched (7): a, b, c, d, e ... and 2 more")
	assert.Contains(t, output, "Missing (1): excel")
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations([]types.RoleRecommendation{{Role: "Data Analyst", Score: 0.2523}})
	assert.Contains(t, buf.String(), "#1  Data Analyst")
	assert.Contains(t, buf.String(), "0.2523")

	buf.Reset()
	p.PrintRecommendations(nil)
	assert.Contains(t, buf.String(), "No recommendations available.")
}

func TestPrintVerdict(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	tests := []struct {
		pct  float64
		want string
	}{
		{80, "✓ Good match: 80.00%"},
		{50, "⚠ Average match: 50.00%"},
		{10, "✗ Low match: 10.00%"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintVerdict(tt.pct)
		assert.True(t, strings.HasPrefix(buf.String(), tt.want), buf.String())
	}
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 100))
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
}
