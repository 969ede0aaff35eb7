package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["term", "priority"],
	"properties": {
		"term": {"type": "string", "minLength": 1},
		"priority": {"type": "string", "enum": ["critical", "important", "nice_to_have"]}
	}
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)
	jsonPath := writeTemp(t, "doc.json", `{"term": "go", "priority": "critical"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	assert.NoError(t, err)
}

func TestValidateJSON_MissingField(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)
	jsonPath := writeTemp(t, "doc.json", `{"term": "go"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_WrongType(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)
	jsonPath := writeTemp(t, "doc.json", `{"term": 42, "priority": "critical"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	jsonPath := writeTemp(t, "doc.json", `{}`)

	err := ValidateJSON(filepath.Join(t.TempDir(), "nonexistent.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)

	err := ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "nonexistent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"term": "docker", "priority": "important"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_EnumViolation(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"term": "docker", "priority": "urgent"}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "priority", validationErr.Errors[0].Field)
}

func TestValidateJSONString_MalformedSchema(t *testing.T) {
	err := ValidateJSONString(`{ not a schema`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestResolveSchemaPath_FindsRepoSchemas(t *testing.T) {
	// Runs from internal/schemas; the repo schemas live two levels up.
	path := ResolveSchemaPath(filepath.Join("schemas", "profile.schema.json"))
	assert.NotEmpty(t, path)
}

func TestResolveSchemaPath_MissingReturnsEmpty(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath(filepath.Join("schemas", "no_such.schema.json")))
}

func TestValidateJSON_ProfileSchema(t *testing.T) {
	schemaPath := ResolveSchemaPath(filepath.Join("schemas", "profile.schema.json"))
	require.NotEmpty(t, schemaPath)

	valid := `{
		"experiences": [{
			"title": "Engineer",
			"start_date": "2021-03",
			"bullets": ["plain bullet", {"text": "object bullet", "source_ids": ["doc-1"]}]
		}],
		"skills": [{"name": "go", "label": "Go"}]
	}`
	jsonPath := writeTemp(t, "profile.json", valid)
	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))

	invalid := `{"experiences": [{"bullets": []}]}`
	badPath := writeTemp(t, "bad_profile.json", invalid)
	assert.Error(t, ValidateJSON(schemaPath, badPath))
}
