package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/bytedance/sonic"
)

// formPassThreshold is the fixed per-form pass mark. It is independent of the
// course's configurable pass score, which only gates certificate eligibility.
const formPassThreshold = 70.0

// ContentBlock is one entry of a module's content array. Only "form" blocks
// carry gradable fields; other block types pass through untouched.
type ContentBlock struct {
	Type   string      `json:"type"`
	Fields []FormField `json:"fields,omitempty"`
}

// FormField as authored in module content. A field is gradable when it has a
// correct answer and positive points.
type FormField struct {
	ID            string      `json:"id"`
	Type          string      `json:"type"`
	Label         string      `json:"label,omitempty"`
	CorrectAnswer interface{} `json:"correct_answer,omitempty"`
	Points        float64     `json:"points,omitempty"`
}

// FieldResult is the per-field correctness breakdown returned to the learner.
type FieldResult struct {
	FieldID      string  `json:"field_id"`
	Correct      bool    `json:"correct"`
	PointsEarned float64 `json:"points_earned"`
	PointsMax    float64 `json:"points_max"`
}

// FormScore is the outcome of grading one form submission.
type FormScore struct {
	Score      float64       `json:"score"`
	MaxScore   float64       `json:"max_score"`
	Percentage float64       `json:"percentage"`
	Passed     bool          `json:"passed"`
	GradeScale float64       `json:"grade_scale"`
	Results    []FieldResult `json:"detailed_results"`
}

// ExtractFormFields parses a module's content and collects the fields of every
// form block.
func ExtractFormFields(content []byte) ([]FormField, error) {
	if len(content) == 0 {
		return nil, nil
	}
	var blocks []ContentBlock
	if err := sonic.Unmarshal(content, &blocks); err != nil {
		return nil, fmt.Errorf("parse module content: %w", err)
	}
	var fields []FormField
	for _, b := range blocks {
		if b.Type == "form" {
			fields = append(fields, b.Fields...)
		}
	}
	return fields, nil
}

// HasFormBlock reports whether a module's content contains at least one form
// block. Modules without forms are exempt from the online certificate gate.
func HasFormBlock(content []byte) bool {
	if len(content) == 0 {
		return false
	}
	var blocks []ContentBlock
	if err := sonic.Unmarshal(content, &blocks); err != nil {
		return false
	}
	for _, b := range blocks {
		if b.Type == "form" {
			return true
		}
	}
	return false
}

func normalizeBool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "true" || s == "1" || s == "yes" || s == "on"
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return false
	}
}

// answerMatches applies type-specific equality: exact for radio/select,
// boolean-normalized for checkbox, trimmed case-insensitive for text areas.
func answerMatches(fieldType string, given, correct interface{}) bool {
	switch fieldType {
	case "checkbox":
		return normalizeBool(given) == normalizeBool(correct)
	case "text", "textarea":
		return strings.EqualFold(
			strings.TrimSpace(fmt.Sprintf("%v", given)),
			strings.TrimSpace(fmt.Sprintf("%v", correct)),
		)
	default: // radio, select
		return fmt.Sprintf("%v", given) == fmt.Sprintf("%v", correct)
	}
}

// GradeScale maps a percentage linearly onto the 1.0 to 10.0 scale, rounded to
// one decimal and clamped at both ends. An empty form (maxScore 0) lands on
// the 1.0 floor.
func GradeScale(percentage float64) float64 {
	scale := math.Round((percentage/100*9+1)*10) / 10
	if scale < 1.0 {
		return 1.0
	}
	if scale > 10.0 {
		return 10.0
	}
	return scale
}

// ScoreForm grades a set of answers against a form's fields. Fields without a
// correct answer or without positive points are surveys and carry no weight.
func ScoreForm(fields []FormField, answers map[string]interface{}) FormScore {
	out := FormScore{Results: []FieldResult{}}
	for _, f := range fields {
		if f.CorrectAnswer == nil || f.Points <= 0 {
			continue
		}
		res := FieldResult{FieldID: f.ID, PointsMax: f.Points}
		out.MaxScore += f.Points
		if given, ok := answers[f.ID]; ok && answerMatches(f.Type, given, f.CorrectAnswer) {
			res.Correct = true
			res.PointsEarned = f.Points
			out.Score += f.Points
		}
		out.Results = append(out.Results, res)
	}

	if out.MaxScore > 0 {
		out.Percentage = out.Score / out.MaxScore * 100
	}
	out.Passed = out.Percentage >= formPassThreshold
	out.GradeScale = GradeScale(out.Percentage)
	return out
}
