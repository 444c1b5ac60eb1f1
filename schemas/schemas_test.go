package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/schemas"
	"github.com/jonathan/resume-extractor/internal/types"
)

func TestRecordSchemaFile_ValidJSON(t *testing.T) {
	data, err := os.ReadFile("resume_record.schema.json")
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestRecordSchemaFile_ValidJSONSchema(t *testing.T) {
	data, err := os.ReadFile("resume_record.schema.json")
	require.NoError(t, err)

	var schemaObj map[string]interface{}
	err = json.Unmarshal(data, &schemaObj)
	require.NoError(t, err)

	// Check for required JSON Schema fields
	_, hasType := schemaObj["type"]
	_, hasSchema := schemaObj["$schema"]
	_, hasProps := schemaObj["properties"]

	assert.True(t, hasType && hasSchema && hasProps,
		"schema should declare type, $schema, and properties")
}

func TestRecordSchema_AcceptsMarshaledRecord(t *testing.T) {
	record := &types.ResumeRecord{
		Name: "Jane Doe",
		Contact: types.ContactInfo{
			Email:    "jane@example.com",
			Phone:    "555-123-4567",
			LinkedIn: "https://linkedin.com/in/janedoe",
		},
		Skills: []string{"Python", "Go"},
		Education: []types.EducationEntry{
			{Degree: "Bachelor of Science in CS", Institution: "University of Technology", Dates: "2013-2017"},
		},
		Experience: []types.ExperienceEntry{
			{
				Position:    types.KnownField("Engineer"),
				Company:     types.KnownField("Acme Corp"),
				Dates:       types.KnownField("2020 - Present"),
				Description: "Built services.",
			},
		},
		RawText: "Jane Doe\n...",
	}

	err := schemas.ValidateRecord(record, "resume_record.schema.json")
	assert.NoError(t, err)
}

func TestRecordSchema_AcceptsEmptyCollections(t *testing.T) {
	// Records for sparse documents still validate: empty slices marshal as []
	// and unknown fields marshal as the "N/A" sentinel, never null.
	record := &types.ResumeRecord{
		Name:       types.NameUnknown,
		Skills:     make([]string, 0),
		Education:  make([]types.EducationEntry, 0),
		Experience: make([]types.ExperienceEntry, 0),
		RawText:    "body",
	}

	err := schemas.ValidateRecord(record, "resume_record.schema.json")
	assert.NoError(t, err)
}

func TestRecordSchema_UnknownFieldsRenderAsSentinel(t *testing.T) {
	record := &types.ResumeRecord{
		Name:      "Jane Doe",
		Skills:    make([]string, 0),
		Education: make([]types.EducationEntry, 0),
		Experience: []types.ExperienceEntry{
			{Position: types.KnownField("Engineer")},
		},
		RawText: "body",
	}

	err := schemas.ValidateRecord(record, "resume_record.schema.json")
	assert.NoError(t, err)

	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"company":"N/A"`)
	assert.Contains(t, string(data), `"dates":"N/A"`)
}

func TestRecordSchema_RejectsMissingRequiredField(t *testing.T) {
	schemaData, err := os.ReadFile("resume_record.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaData), `{"name": "Jane Doe"}`)
	require.Error(t, err)

	validationErr, ok := err.(*schemas.ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestRecordSchema_RejectsWrongType(t *testing.T) {
	schemaData, err := os.ReadFile("resume_record.schema.json")
	require.NoError(t, err)

	doc := `{
		"name": "Jane Doe",
		"contact_information": {},
		"skills": "Python",
		"education": [],
		"work_experience": [],
		"full_text": ""
	}`

	err = schemas.ValidateJSONString(string(schemaData), doc)
	require.Error(t, err)

	validationErr, ok := err.(*schemas.ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestRecordSchema_RejectsExtraRootField(t *testing.T) {
	schemaData, err := os.ReadFile("resume_record.schema.json")
	require.NoError(t, err)

	doc := `{
		"name": "Jane Doe",
		"contact_information": {},
		"skills": [],
		"education": [],
		"work_experience": [],
		"full_text": "",
		"unexpected": true
	}`

	err = schemas.ValidateJSONString(string(schemaData), doc)
	assert.Error(t, err)
}
