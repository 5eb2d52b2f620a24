package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildResumeJSONSchema returns the JSON Schema the LLM reply is validated
// against before it is trusted. The model is instructed to emit null/empty
// values rather than omit fields, so every leaf allows null; only is_resume
// is required.
func BuildResumeJSONSchema() map[string]any {
	str := func() map[string]any {
		return map[string]any{"type": []any{"string", "null"}}
	}
	objectList := func(fields ...string) map[string]any {
		props := map[string]any{}
		for _, f := range fields {
			props[f] = str()
		}
		return map[string]any{
			"type": []any{"array", "null"},
			"items": map[string]any{
				"type":       "object",
				"properties": props,
			},
		}
	}

	contactProps := map[string]any{
		"name":     str(),
		"email":    str(),
		"phone":    str(),
		"linkedin": str(),
		"location": str(),
	}

	projects := objectList("name", "description", "link")
	projects["items"].(map[string]any)["properties"].(map[string]any)["technologies"] = map[string]any{
		"type":  []any{"array", "null"},
		"items": str(),
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_resume":         map[string]any{"type": "boolean"},
			"not_resume_reason": str(),
			"contact_info": map[string]any{
				"type":       []any{"object", "null"},
				"properties": contactProps,
			},
			"education":       objectList("institution", "degree", "field_of_study", "graduation_year", "gpa"),
			"work_experience": objectList("company", "position", "duration", "description", "location"),
			"skills": map[string]any{
				"type":  []any{"array", "null"},
				"items": str(),
			},
			"certifications": objectList("name", "issuer", "date"),
			"projects":       projects,
			"summary":        str(),
		},
		"required": []any{"is_resume"},
	}
}

// ValidateJSONAgainstSchema validates data against schemaMap.
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
