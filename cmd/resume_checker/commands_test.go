package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillsCommand(t *testing.T) {
	resume := writeTestFile(t, "resume.txt", "I know C++ and Java, plus JavaScript.")

	stdout, _, err := executeCommand(t, "skills", "--resume", resume)
	require.NoError(t, err)
	assert.Equal(t, "c++\njava\njavascript\n", stdout)
}

func TestSkillsCommand_NoneDetected(t *testing.T) {
	resume := writeTestFile(t, "resume.txt", "Gardening and cooking")

	stdout, _, err := executeCommand(t, "skills", "--resume", resume)
	require.NoError(t, err)
	assert.Equal(t, "None detected\n", stdout)
}

func TestMatchCommand(t *testing.T) {
	resume := writeTestFile(t, "resume.txt", "python excel")

	stdout, _, err := executeCommand(t, "match", "--resume", resume, "--job", "python sql excel")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Match Score: 66.67%\n")
	assert.Contains(t, stdout, "Matched: excel, python\n")
	assert.Contains(t, stdout, "Missing: sql\n")
}

func TestMatchCommand_PriorityKeywords(t *testing.T) {
	resume := writeTestFile(t, "resume.txt", "python excel")

	stdout, _, err := executeCommand(t, "match", "--resume", resume, "--job", "python sql excel", "--keywords", "Excel")
	require.NoError(t, err)
	// (2 weighted + 1 normal) / (3 words + 1 priority)
	assert.Contains(t, stdout, "Match Score: 75.00%\n")
	assert.Contains(t, stdout, "Score: 3 (2 weighted + 1 normal) / 4 max\n")
}

func TestRecommendCommand(t *testing.T) {
	resume := writeTestFile(t, "resume.txt", "Wrote ETL jobs in Spark and Hadoop, loading data into BigQuery with Airflow")

	stdout, _, err := executeCommand(t, "recommend", "--resume", resume, "--top", "1")
	require.NoError(t, err)
	assert.Equal(t, " - Data Engineer (similarity: 0.46)\n", stdout)
}

func TestRecommendCommand_AllRoles(t *testing.T) {
	resume := writeTestFile(t, "resume.txt", testResume)

	stdout, _, err := executeCommand(t, "recommend", "--resume", resume, "--top", "0")
	require.NoError(t, err)
	assert.Equal(t, " - Data Analyst (similarity: 0.25)\n"+
		" - BI Developer (similarity: 0.25)\n"+
		" - Data Engineer (similarity: 0.04)\n"+
		" - ML Engineer (similarity: 0.04)\n"+
		" - Data Scientist (similarity: 0.04)\n"+
		" - Business Analyst (similarity: 0.00)\n", stdout)
}

func TestRecommendCommand_NoSharedVocabulary(t *testing.T) {
	resume := writeTestFile(t, "resume.txt", "")

	stdout, _, err := executeCommand(t, "recommend", "--resume", resume)
	require.NoError(t, err)
	assert.Equal(t, "No recommendations available.\n", stdout)
}

func TestSamplesCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "samples")
	require.NoError(t, err)
	assert.Contains(t, stdout, "analyst")
	assert.Contains(t, stdout, "Data Scientist")

	stdout, _, err = executeCommand(t, "samples", "scientist")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Looking for a Data Scientist")

	_, _, err = executeCommand(t, "samples", "astronaut")
	assert.Error(t, err)
}

func TestValidateCatalogCommand(t *testing.T) {
	valid := writeTestFile(t, "catalog.json", `{"skills": ["go"], "roles": [{"name": "Gopher", "description": "go"}]}`)

	stdout, _, err := executeCommand(t, "validate-catalog", valid)
	require.NoError(t, err)
	assert.Contains(t, stdout, "is valid: 1 skills, 1 roles, 0 sample jobs")
	assert.Contains(t, stdout, "Roles: Gopher\n")

	invalid := writeTestFile(t, "bad.yaml", "skills: [go]")
	_, _, err = executeCommand(t, "validate-catalog", invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match schema")

	_, _, err = executeCommand(t, "validate-catalog", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRootCommand_BadEnvironment(t *testing.T) {
	t.Setenv("RESUME_CHECKER_TOP_N", "many")

	// executeCommand clears the variable, so drive the settings loader directly.
	resetFlags(rootCmd)
	err := loadSettings(analyzeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESUME_CHECKER_TOP_N")
}

func TestLoadSettings_MergesDefaults(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantTop int
	}{
		{name: "no config file", wantTop: 2},
		{name: "config without top_n", config: `{"out_dir": "reports"}`, wantTop: 2},
		{name: "config top_n wins over default", config: `{"top_n": 4}`, wantTop: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := []string{"samples"}
			if tt.config != "" {
				args = append(args, "--config", writeTestFile(t, "config.json", tt.config))
			}

			_, _, err := executeCommand(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTop, appConfig.TopN)
		})
	}
}

func TestRecommendCommand_ConfigTopN(t *testing.T) {
	resume := writeTestFile(t, "resume.txt", testResume)
	cfg := writeTestFile(t, "config.json", `{"top_n": 3}`)

	stdout, _, err := executeCommand(t, "recommend", "--config", cfg, "--resume", resume)
	require.NoError(t, err)
	assert.Equal(t, " - Data Analyst (similarity: 0.25)\n"+
		" - BI Developer (similarity: 0.25)\n"+
		" - Data Engineer (similarity: 0.04)\n", stdout)
}
