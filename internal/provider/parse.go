package provider

import (
	"encoding/json"
	"fmt"

	"github.com/seyi-ajayi/examscan/constants"
)

type rawOption struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	HasImage bool   `json:"has_image"`
}

type rawQuestion struct {
	PassageRef    *string         `json:"passage_ref"`
	QuestionText  string          `json:"question_text"`
	QuestionType  string          `json:"question_type"`
	PassageText   *string         `json:"passage_text"`
	TableData     *Table          `json:"table_data"`
	NeedsImage    bool            `json:"needs_image"`
	ImageIn       *string         `json:"image_in"`
	Options       []rawOption     `json:"options"`
	CorrectAnswer json.RawMessage `json:"correct_answer"`
	Explanation   *string         `json:"explanation"`
	Domain        string          `json:"domain"`
	Difficulty    string          `json:"difficulty"`
	Confidence    *float64        `json:"confidence"`
}

type rawEnvelope struct {
	Passages  []StructuredPassage `json:"passages"`
	Questions []rawQuestion       `json:"questions"`
}

// ParseStructureResponse validates and decodes a structuring response body.
// Invalid documents get one lenient repair pass before being rejected.
func ParseStructureResponse(content string) (StructureResult, []string, error) {
	raw := []byte(StripCodeFence(content))
	schema := BuildStructuredSchema()

	var repairs []string
	if err := ValidateJSONAgainstSchema(schema, raw); err != nil {
		cleaned, changed, sErr := SanitizeStructured(raw)
		if sErr != nil {
			return StructureResult{}, nil, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			return StructureResult{}, nil, fmt.Errorf("schema validation failed: %w", vErr)
		}
		raw = cleaned
		repairs = changed
	}

	var env rawEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return StructureResult{}, nil, fmt.Errorf("unmarshal structured response: %w", err)
	}

	passagesByRef := make(map[string]*StructuredPassage, len(env.Passages))
	for i := range env.Passages {
		if env.Passages[i].TempID != "" {
			passagesByRef[env.Passages[i].TempID] = &env.Passages[i]
		}
	}

	out := StructureResult{Passages: env.Passages}
	for _, rq := range env.Questions {
		q := StructuredQuestion{
			QuestionText: rq.QuestionText,
			QuestionType: constants.ParseQuestionType(rq.QuestionType),
			PassageText:  rq.PassageText,
			TableData:    rq.TableData,
			NeedsImage:   rq.NeedsImage,
			Explanation:  rq.Explanation,
			Difficulty:   constants.ParseDifficulty(rq.Difficulty),
		}
		if rq.PassageRef != nil {
			q.PassageRef = *rq.PassageRef
			if p, ok := passagesByRef[q.PassageRef]; ok && q.PassageText == nil {
				q.PassageText = &p.Content
			}
		}
		if rq.ImageIn != nil {
			q.ImageIn = *rq.ImageIn
		}
		if d, ok := constants.ParseDomain(rq.Domain); ok {
			q.Domain = d
		}
		if rq.Confidence != nil {
			q.Confidence = float32(*rq.Confidence)
		} else {
			q.Confidence = 0.8
		}
		for _, o := range rq.Options {
			q.Options = append(q.Options, Option{ID: o.ID, Text: o.Text, HasImage: o.HasImage})
		}

		answers := decodeAnswers(rq.CorrectAnswer)
		q.NeedsAnswer = needsAnswer(answers)
		if !q.NeedsAnswer {
			q.CorrectAnswer = answers
		}

		out.Questions = append(out.Questions, q)
	}
	return out, repairs, nil
}

func decodeAnswers(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}
	return nil
}

func needsAnswer(answers []string) bool {
	if len(answers) == 0 {
		return true
	}
	for _, a := range answers {
		if a == constants.NeedAnswerSentinel {
			return true
		}
	}
	return false
}
