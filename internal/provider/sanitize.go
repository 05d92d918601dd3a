package provider

import (
	"encoding/json"
	"strings"
)

// StripCodeFence removes a markdown code fence wrapper if the model returned
// one despite being asked for raw JSON.
func StripCodeFence(content string) string {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// SanitizeStructured repairs common shape defects in a structuring response
// so the document can still validate. Only optional fields are touched;
// required ones left broken will fail validation afterwards, which is the
// point. The returned slice lists what was dropped or coerced.
func SanitizeStructured(doc []byte) ([]byte, []string, error) {
	var root any
	if err := json.Unmarshal(doc, &root); err != nil {
		return nil, nil, err
	}

	var changed []string
	m, ok := root.(map[string]any)
	if !ok {
		// A bare array of questions is a known failure mode.
		if arr, isArr := root.([]any); isArr {
			m = map[string]any{"questions": arr}
			changed = append(changed, "wrapped_bare_array")
		} else {
			b, err := json.Marshal(root)
			return b, nil, err
		}
	}
	if _, has := m["questions"]; !has {
		// Single-question object without the envelope.
		m = map[string]any{"questions": []any{m}}
		changed = append(changed, "wrapped_single_question")
	}

	if qs, ok := m["questions"].([]any); ok {
		kept := make([]any, 0, len(qs))
		for _, q := range qs {
			qm, ok := q.(map[string]any)
			if !ok {
				changed = append(changed, "dropped_non_object_question")
				continue
			}
			sanitizeQuestion(qm, &changed)
			kept = append(kept, qm)
		}
		m["questions"] = kept
	}

	if ps, ok := m["passages"].([]any); ok {
		kept := make([]any, 0, len(ps))
		for _, p := range ps {
			pm, ok := p.(map[string]any)
			if !ok || pm["content"] == nil || pm["content"] == "" {
				changed = append(changed, "dropped_empty_passage")
				continue
			}
			if _, ok := pm["temp_id"].(string); !ok {
				pm["temp_id"] = "p0"
				changed = append(changed, "defaulted_temp_id")
			}
			kept = append(kept, pm)
		}
		m["passages"] = kept
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, changed, nil
}

func sanitizeQuestion(q map[string]any, changed *[]string) {
	// correct_answer sometimes comes back as a bare string.
	if s, ok := q["correct_answer"].(string); ok {
		q["correct_answer"] = []any{s}
		*changed = append(*changed, "correct_answer_to_array")
	}

	if v, ok := q["confidence"]; ok {
		if f, isNum := v.(float64); !isNum || f < 0 || f > 1 {
			delete(q, "confidence")
			*changed = append(*changed, "dropped_confidence")
		}
	}

	for _, k := range []string{"difficulty", "domain", "question_type"} {
		if s, ok := q[k].(string); ok {
			norm := strings.ToLower(strings.TrimSpace(s))
			norm = strings.ReplaceAll(norm, " ", "_")
			if norm != s {
				q[k] = norm
				*changed = append(*changed, "normalized_"+k)
			}
		} else if _, present := q[k]; present {
			delete(q, k)
			*changed = append(*changed, "dropped_"+k)
		}
	}

	if opts, ok := q["options"].([]any); ok {
		kept := make([]any, 0, len(opts))
		for _, o := range opts {
			om, isObj := o.(map[string]any)
			if !isObj {
				*changed = append(*changed, "dropped_malformed_option")
				continue
			}
			if id, ok := om["id"].(string); ok {
				om["id"] = strings.ToUpper(strings.TrimSpace(id))
			}
			if _, ok := om["text"].(string); !ok {
				om["text"] = ""
				*changed = append(*changed, "defaulted_option_text")
			}
			kept = append(kept, om)
		}
		q["options"] = kept
	}

	// Models occasionally echo the table back as an HTML string.
	if _, ok := q["table_data"].(string); ok {
		delete(q, "table_data")
		*changed = append(*changed, "dropped_html_table")
	}
}
