package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradedField(id, fieldType string, correct interface{}, points float64) FormField {
	return FormField{ID: id, Type: fieldType, CorrectAnswer: correct, Points: points}
}

func TestScoreForm_TypeSpecificEquality(t *testing.T) {
	tests := []struct {
		name    string
		field   FormField
		answer  interface{}
		correct bool
	}{
		{"radio exact match", gradedField("q1", "radio", "b", 10), "b", true},
		{"radio case matters", gradedField("q1", "radio", "b", 10), "B", false},
		{"select exact match", gradedField("q1", "select", "opt-2", 10), "opt-2", true},
		{"checkbox bool vs string", gradedField("q1", "checkbox", true, 5), "true", true},
		{"checkbox string vs bool", gradedField("q1", "checkbox", "true", 5), true, true},
		{"checkbox one vs true", gradedField("q1", "checkbox", true, 5), float64(1), true},
		{"checkbox mismatch", gradedField("q1", "checkbox", true, 5), "false", false},
		{"text trimmed case-insensitive", gradedField("q1", "text", "Paris", 10), "  paris ", true},
		{"textarea trimmed case-insensitive", gradedField("q1", "textarea", " Quito", 10), "QUITO  ", true},
		{"text wrong answer", gradedField("q1", "text", "Paris", 10), "Lyon", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ScoreForm([]FormField{tt.field}, map[string]interface{}{"q1": tt.answer})
			require.Len(t, out.Results, 1)
			assert.Equal(t, tt.correct, out.Results[0].Correct)
			if tt.correct {
				assert.Equal(t, tt.field.Points, out.Score)
			} else {
				assert.Zero(t, out.Score)
			}
		})
	}
}

func TestScoreForm_SurveyFieldsCarryNoWeight(t *testing.T) {
	fields := []FormField{
		gradedField("q1", "radio", "a", 10),
		// no correct answer
		{ID: "q2", Type: "text"},
		// no points
		{ID: "q3", Type: "radio", CorrectAnswer: "a", Points: 0},
	}
	out := ScoreForm(fields, map[string]interface{}{"q1": "a", "q2": "anything", "q3": "a"})
	assert.Equal(t, 10.0, out.Score)
	assert.Equal(t, 10.0, out.MaxScore)
	require.Len(t, out.Results, 1)
}

func TestScoreForm_EmptyFormFloor(t *testing.T) {
	out := ScoreForm(nil, map[string]interface{}{})
	assert.Zero(t, out.MaxScore)
	assert.Zero(t, out.Percentage)
	assert.False(t, out.Passed)
	assert.Equal(t, 1.0, out.GradeScale)
}

func TestScoreForm_PassThreshold(t *testing.T) {
	fields := []FormField{
		gradedField("q1", "radio", "a", 70),
		gradedField("q2", "radio", "a", 30),
	}
	// exactly at the threshold passes
	out := ScoreForm(fields, map[string]interface{}{"q1": "a", "q2": "x"})
	assert.InDelta(t, 70.0, out.Percentage, 1e-9)
	assert.True(t, out.Passed)

	// just below fails
	fields[0].Points = 69
	fields[1].Points = 31
	out = ScoreForm(fields, map[string]interface{}{"q1": "a", "q2": "x"})
	assert.False(t, out.Passed)
}

func TestGradeScale_Bounds(t *testing.T) {
	assert.Equal(t, 1.0, GradeScale(0))
	assert.Equal(t, 10.0, GradeScale(100))
	assert.Equal(t, 5.5, GradeScale(50))

	for pct := 0.0; pct <= 100.0; pct += 0.5 {
		scale := GradeScale(pct)
		assert.GreaterOrEqual(t, scale, 1.0, "pct=%v", pct)
		assert.LessOrEqual(t, scale, 10.0, "pct=%v", pct)
		// one decimal place
		assert.InDelta(t, scale, float64(int(scale*10+0.5))/10, 1e-9, "pct=%v", pct)
	}
}

func TestExtractFormFields(t *testing.T) {
	content := []byte(`[
		{"type": "video", "url": "https://example.org/v.mp4"},
		{"type": "form", "fields": [
			{"id": "q1", "type": "radio", "correct_answer": "b", "points": 10},
			{"id": "q2", "type": "text", "correct_answer": "Paris", "points": 5}
		]},
		{"type": "form", "fields": [
			{"id": "q3", "type": "checkbox", "correct_answer": true, "points": 2}
		]}
	]`)
	fields, err := ExtractFormFields(content)
	require.NoError(t, err)
	require.Len(t, fields, 3)
	assert.Equal(t, "q1", fields[0].ID)
	assert.Equal(t, 2.0, fields[2].Points)

	assert.True(t, HasFormBlock(content))
	assert.False(t, HasFormBlock([]byte(`[{"type": "video"}]`)))
	assert.False(t, HasFormBlock(nil))
}

func TestScoreForm_AggregateExample(t *testing.T) {
	fields := []FormField{
		gradedField("q1", "radio", "a", 10),
		gradedField("q2", "text", "Nairobi", 10),
	}
	out := ScoreForm(fields, map[string]interface{}{"q1": "a", "q2": "nairobi"})
	assert.Equal(t, 20.0, out.Score)
	assert.Equal(t, 20.0, out.MaxScore)
	assert.InDelta(t, 100.0, out.Percentage, 1e-9)
	assert.True(t, out.Passed)
	assert.Equal(t, 10.0, out.GradeScale)

	half := ScoreForm(fields, map[string]interface{}{"q1": "a", "q2": "Mombasa"})
	assert.InDelta(t, 50.0, half.Percentage, 1e-9)
	assert.False(t, half.Passed)
	assert.Equal(t, 5.5, half.GradeScale)
}

func TestScoreForm_MissingAnswerCountsWrong(t *testing.T) {
	fields := []FormField{gradedField("q1", "radio", "a", 10)}
	out := ScoreForm(fields, map[string]interface{}{})
	assert.Zero(t, out.Score)
	assert.Equal(t, 10.0, out.MaxScore)
	assert.False(t, out.Results[0].Correct)
}

func ExampleScoreForm() {
	fields := []FormField{{ID: "q1", Type: "radio", CorrectAnswer: "b", Points: 10}}
	out := ScoreForm(fields, map[string]interface{}{"q1": "b"})
	fmt.Println(out.Score, out.Passed)
	// Output: 10 true
}
