package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", "   \n  \n  ", ""},
		{"line endings", "Line 1\r\nLine 2\rLine 3", "Line 1\nLine 2\nLine 3"},
		{"inner spaces", "Line    with \t multiple   spaces", "Line with multiple spaces"},
		{"blank line runs", "Line 1\n\n\n\n\nLine 2", "Line 1\n\nLine 2"},
		{"ligature", "ﬁnance and ﬂow", "finance and flow"},
		{"full width", "ＳＱＬ", "SQL"},
		{"non-breaking space", "Power\u00a0BI", "Power BI"},
		{"control characters", "Py\u0000thon\u0007", "Python"},
		{"byte order mark", "\ufeffResume", "Resume"},
		{"keeps accents", "Café résumé", "Café résumé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines ﬁ"
	once := CleanText(input)
	assert.Equal(t, once, CleanText(once))
}

func TestParsePriorityKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"Excel", []string{"Excel"}},
		{" Excel , Power BI,,  ", []string{"Excel", "Power BI"}},
		{"sql, sql", []string{"sql", "sql"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePriorityKeywords(tt.input), "input=%q", tt.input)
	}
}

func TestComputeHash(t *testing.T) {
	assert.Equal(t, computeHash("test content"), computeHash("test content"))
	assert.NotEqual(t, computeHash("test content"), computeHash("different content"))
	assert.Len(t, computeHash(""), 64)
}
