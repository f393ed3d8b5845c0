package llm

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-autofill/internal/types"
)

const systemInstruction = "You are an assistant that analyzes form fields and maps them to resume data. " +
	"Return only a JSON array with field mappings."

const userInstructionTemplate = `Analyze these form fields and match them with the resume data. Return a JSON array with objects containing fieldId, fieldName, and the appropriate resumeValue.

Form Fields:
%s

Resume Data:
%s`

// buildPrompt serializes the field inventory and profile into the user
// message sent alongside the fixed instruction.
func buildPrompt(fields []types.FieldDescriptor, profile *types.Profile) (string, error) {
	fieldsJSON, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return "", &SuggestionError{Message: "failed to serialize fields", Cause: err}
	}

	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", &SuggestionError{Message: "failed to serialize profile", Cause: err}
	}

	return fmt.Sprintf(userInstructionTemplate, fieldsJSON, profileJSON), nil
}
