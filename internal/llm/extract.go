package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// reJSONArray finds the outermost JSON array embedded in prose. Providers
// often wrap the payload in explanation text or markdown fences.
var reJSONArray = regexp.MustCompile(`(?s)\[.*\]`)

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// parseMappings scans response text for an embedded JSON array of mappings.
// Malformed or absent JSON yields no mappings and no error: the heuristic
// path simply proceeds without suggestions.
func parseMappings(content string) []Mapping {
	raw := reJSONArray.FindString(cleanJSONBlock(content))
	if raw == "" {
		return nil
	}

	var mappings []Mapping
	if err := json.Unmarshal([]byte(raw), &mappings); err != nil {
		return nil
	}

	usable := mappings[:0]
	for _, m := range mappings {
		if m.ResumeValue == "" || (m.FieldID == "" && m.FieldName == "") {
			continue
		}
		usable = append(usable, m)
	}
	if len(usable) == 0 {
		return nil
	}
	return usable
}
