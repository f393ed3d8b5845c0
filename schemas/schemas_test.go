package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-autofill/internal/schemas"
)

func TestProfileSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "profile.schema.json"))
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestProfileSchema_AcceptsFullProfile(t *testing.T) {
	schema, err := os.ReadFile("profile.schema.json")
	require.NoError(t, err)

	doc := `{
		"fullName": "Jane Doe",
		"email": "jane@example.com",
		"phone": "555-0100",
		"address": "123 Main St",
		"city": "Springfield",
		"state": "IL",
		"zipCode": "62704",
		"education": [
			{"university": "State University", "degree": "BSc", "major": "CS", "graduationDate": "2024-05", "gpa": "3.8"}
		],
		"experience": [
			{"company": "Acme", "jobTitle": "Engineer", "startDate": "2024-06", "endDate": "", "responsibilities": "Built services"}
		],
		"skills": "Go, SQL"
	}`

	assert.NoError(t, schemas.ValidateJSONString(string(schema), doc))
}

func TestProfileSchema_AcceptsEmptyObject(t *testing.T) {
	schema, err := os.ReadFile("profile.schema.json")
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(string(schema), `{}`))
}

func TestProfileSchema_RejectsUnknownProperty(t *testing.T) {
	schema, err := os.ReadFile("profile.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schema), `{"surname": "Doe"}`)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestProfileSchema_RejectsWrongTypes(t *testing.T) {
	schema, err := os.ReadFile("profile.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schema), `{"education": "none"}`)
	assert.Error(t, err)
}
