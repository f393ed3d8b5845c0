package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["fullName"],
	"properties": {
		"fullName": {"type": "string"},
		"email": {"type": "string"}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestValidateJSON_Valid(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"fullName": "Jane Doe"}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingRequiredField(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"email": "jane@example.com"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "fullName")
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)

	assert.Error(t, ValidateJSON(schemaPath, filepath.Join(dir, "absent.json")))
	assert.Error(t, ValidateJSON(filepath.Join(dir, "absent.json"), schemaPath))
}

func TestValidateJSONString_Valid(t *testing.T) {
	assert.NoError(t, ValidateJSONString(testSchema, `{"fullName": "Jane Doe"}`))
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"fullName": 42}`)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": `, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestResolveSchemaPathFindsRepoSchema(t *testing.T) {
	// This package sits two levels below the repo root.
	path := ResolveSchemaPath(ProfileSchemaPath)
	require.NotEmpty(t, path)
	assert.FileExists(t, path)
}

func TestResolveSchemaPathMissing(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/absent.schema.json"))
}

func TestValidateProfileFile(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `{"fullName": "Jane Doe", "city": "Springfield"}`)
	bad := writeFile(t, dir, "bad.json", `{"surname": "Doe"}`)

	assert.NoError(t, ValidateProfileFile(good))
	assert.Error(t, ValidateProfileFile(bad))
}
