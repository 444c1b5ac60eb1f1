package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

const testResume = `Jane Doe
jane.doe@example.com | 555-123-4567

Work Experience
Senior Engineer
Acme Corp | Jan 2020 - Present
Built Go services.

Skills
Python, Go
`

func resetParseFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		parseFile = ""
		parseOut = ""
		parseConfigPath = ""
		parsePretty = false
		parseSummary = false
		parseNoValidate = false
	})
}

func TestRunParse_WritesRecordJSON(t *testing.T) {
	resetParseFlags(t)
	tmpDir := t.TempDir()

	resumePath := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(testResume), 0644))

	outPath := filepath.Join(tmpDir, "out", "resume.json")
	parseFile = resumePath
	parseOut = outPath
	parsePretty = true

	require.NoError(t, runParse(nil, nil))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var record types.ResumeRecord
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, "jane.doe@example.com", record.Contact.Email)
	assert.NotEmpty(t, record.Experience)
}

func TestRunParse_MissingFile(t *testing.T) {
	resetParseFlags(t)

	parseFile = filepath.Join(t.TempDir(), "missing.txt")
	parseNoValidate = true

	err := runParse(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRunParse_UnsupportedFormat(t *testing.T) {
	resetParseFlags(t)
	tmpDir := t.TempDir()

	resumePath := filepath.Join(tmpDir, "resume.odt")
	require.NoError(t, os.WriteFile(resumePath, []byte("text"), 0644))

	parseFile = resumePath
	parseNoValidate = true

	err := runParse(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestRunParse_ConfigProvidesOutDir(t *testing.T) {
	resetParseFlags(t)
	tmpDir := t.TempDir()

	resumePath := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(testResume), 0644))

	outDir := filepath.Join(tmpDir, "records")
	configPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"out_dir":"`+outDir+`","pretty":true}`), 0644))

	parseFile = resumePath
	parseConfigPath = configPath
	parseNoValidate = true

	require.NoError(t, runParse(nil, nil))

	_, err := os.Stat(filepath.Join(outDir, "resume.json"))
	assert.NoError(t, err)
}

func TestRunParse_InvalidConfig(t *testing.T) {
	resetParseFlags(t)
	tmpDir := t.TempDir()

	resumePath := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(testResume), 0644))

	configPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"concurrency":-1}`), 0644))

	parseFile = resumePath
	parseConfigPath = configPath

	err := runParse(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "concurrency")
}

func TestRunParse_EmptyPathFailsValidation(t *testing.T) {
	resetParseFlags(t)

	parseFile = ""

	err := runParse(nil, nil)
	assert.Error(t, err)
}
