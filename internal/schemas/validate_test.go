package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["person"],
	"properties": {
		"person": {
			"type": "object",
			"required": ["name"],
			"properties": {
				"name": {"type": "string"}
			}
		}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(personSchema, `{"person": {"name": "test"}}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(personSchema, `{"age": 30}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSONString_NestedFieldPath(t *testing.T) {
	err := ValidateJSONString(personSchema, `{"person": {}}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))

	found := false
	for _, fieldErr := range validationErr.Errors {
		if fieldErr.Field == "person" {
			found = true
		}
	}
	assert.True(t, found, "nested required field should be reported against its parent path")
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(personSchema, `{ invalid json }`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. name: is required")
	assert.Contains(t, errorMsg, "2. age: must be a number")
}

func TestValidateEmbedded_UnknownSchema(t *testing.T) {
	err := ValidateEmbedded("missing.schema.json", []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "missing.schema.json", loadErr.Path)
}

func TestValidateEmbedded_CatalogSchema(t *testing.T) {
	valid := `{"skills": ["python"], "roles": [{"name": "Data Analyst", "description": "python sql"}]}`
	assert.NoError(t, ValidateEmbedded(CatalogSchema, []byte(valid)))

	missingRoles := `{"skills": ["python"]}`
	assert.Error(t, ValidateEmbedded(CatalogSchema, []byte(missingRoles)))

	duplicateSkills := `{"skills": ["python", "python"], "roles": [{"name": "A", "description": "b"}]}`
	assert.Error(t, ValidateEmbedded(CatalogSchema, []byte(duplicateSkills)))
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills": ["sql"], "roles": [{"name": "A", "description": "sql"}]}`), 0644))

	assert.NoError(t, ValidateFile(CatalogSchema, path))
}

func TestValidateFile_NotFound(t *testing.T) {
	err := ValidateFile(CatalogSchema, filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
