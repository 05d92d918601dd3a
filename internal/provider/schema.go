package provider

import (
	"github.com/seyi-ajayi/examscan/constants"
)

// BuildStructuredSchema returns a JSON-Schema (draft 2020-12 subset) for the
// structuring response, used to validate model output before anything is
// persisted.
func BuildStructuredSchema() map[string]any {
	passage := map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"temp_id":    map[string]any{"type": "string", "minLength": 1},
			"title":      nullableString(),
			"content":    map[string]any{"type": "string", "minLength": 1},
			"source":     nullableString(),
			"author":     nullableString(),
			"has_figure": map[string]any{"type": "boolean"},
			"word_count": map[string]any{"type": "integer", "minimum": 0},
			"confidence": confidenceProp(),
		},
		"required": []string{"temp_id", "content"},
	}

	option := map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"id":        map[string]any{"type": "string", "pattern": `^[A-D]$`},
			"text":      map[string]any{"type": "string"},
			"has_image": map[string]any{"type": "boolean"},
		},
		"required": []string{"id", "text"},
	}

	table := map[string]any{
		"type": []string{"object", "null"},
		"properties": map[string]any{
			"title":   nullableString(),
			"headers": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"rows": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
		},
	}

	question := map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"passage_ref":   nullableString(),
			"question_text": map[string]any{"type": "string", "minLength": 1},
			"question_type": map[string]any{"type": "string", "enum": constants.QuestionTypes},
			"table_data":    table,
			"needs_image":   map[string]any{"type": "boolean"},
			"image_in":      nullableString(),
			"options": map[string]any{
				"type":  []string{"array", "null"},
				"items": option,
			},
			"correct_answer": map[string]any{
				"type":  []string{"array", "null"},
				"items": map[string]any{"type": "string"},
			},
			"explanation": nullableString(),
			"domain":      nullableString(),
			"difficulty":  nullableString(),
			"confidence":  confidenceProp(),
		},
		"required": []string{"question_text"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"passages":  map[string]any{"type": "array", "items": passage},
			"questions": map[string]any{"type": "array", "items": question},
		},
		"required": []string{"questions"},
	}
}

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

func confidenceProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}
}
