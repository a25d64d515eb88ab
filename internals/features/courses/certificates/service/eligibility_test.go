package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gradingModel "sarai_backend/internals/features/courses/grading/model"
)

func TestEvaluateInstructorGrade_AwaitingGrade(t *testing.T) {
	out := EvaluateInstructorGrade(nil)
	assert.False(t, out.Eligible)
	assert.Equal(t, "awaiting grade", out.Reason)
	assert.Nil(t, out.CompletionSummary)
}

func TestEvaluateInstructorGrade_PassingGrade(t *testing.T) {
	grader := uuid.New()
	out := EvaluateInstructorGrade(&gradingModel.UserGradeModel{
		UserGradeScale:      7.5,
		UserGradePassed:     true,
		UserGradeGradedByID: &grader,
	})
	assert.True(t, out.Eligible)
	assert.Empty(t, out.Reason)
	require.NotNil(t, out.CompletionSummary)
	assert.Equal(t, "instructor_graded", out.CompletionSummary["type"])
	assert.Equal(t, 7.5, out.CompletionSummary["grade_scale"])
	assert.Equal(t, grader.String(), out.CompletionSummary["graded_by"])
}

func TestEvaluateInstructorGrade_FailingGrade(t *testing.T) {
	out := EvaluateInstructorGrade(&gradingModel.UserGradeModel{
		UserGradeScale:  4.0,
		UserGradePassed: false,
	})
	assert.False(t, out.Eligible)
	assert.Contains(t, out.Reason, "below pass score")
	require.NotNil(t, out.CompletionSummary)
	assert.Equal(t, false, out.CompletionSummary["passed"])
}

func TestEvaluateOnlineAggregate_NoGradableContent(t *testing.T) {
	out := EvaluateOnlineAggregate(70, 0, nil)
	assert.False(t, out.Eligible)
	assert.Equal(t, "no gradable content", out.Reason)

	// form modules exist but every form is weightless
	out = EvaluateOnlineAggregate(70, 1, []ModuleScore{{Score: 0, MaxScore: 0}})
	assert.False(t, out.Eligible)
	assert.Equal(t, "no gradable content", out.Reason)
}

func TestEvaluateOnlineAggregate_MissingSubmissions(t *testing.T) {
	out := EvaluateOnlineAggregate(70, 2, []ModuleScore{{Score: 10, MaxScore: 10}})
	assert.False(t, out.Eligible)
	assert.Equal(t, "1 of 2 gradable modules not yet submitted", out.Reason)
}

// Two modules, one form field of 10 points each. Both correct is 100% and
// eligible; one correct is 50% against a 70 pass score and ineligible, with
// both percentages named in the reason.
func TestEvaluateOnlineAggregate_PassScoreExamples(t *testing.T) {
	full := EvaluateOnlineAggregate(70, 2, []ModuleScore{
		{Score: 10, MaxScore: 10},
		{Score: 10, MaxScore: 10},
	})
	assert.True(t, full.Eligible)
	require.NotNil(t, full.CompletionSummary)
	assert.Equal(t, "aggregated_module_scores", full.CompletionSummary["type"])
	assert.Equal(t, 20.0, full.CompletionSummary["total_score"])
	assert.InDelta(t, 100.0, full.CompletionSummary["overall_percentage"].(float64), 1e-9)

	half := EvaluateOnlineAggregate(70, 2, []ModuleScore{
		{Score: 10, MaxScore: 10},
		{Score: 0, MaxScore: 10},
	})
	assert.False(t, half.Eligible)
	assert.Contains(t, half.Reason, "50%")
	assert.Contains(t, half.Reason, "70%")
	assert.Contains(t, half.Reason, "grade insufficient")
}

func TestEvaluateOnlineAggregate_ExactThreshold(t *testing.T) {
	out := EvaluateOnlineAggregate(70, 1, []ModuleScore{{Score: 7, MaxScore: 10}})
	assert.True(t, out.Eligible)
}

func TestRandomCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code, err := randomCode(8)
		require.NoError(t, err)
		require.Len(t, code, 8)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected rune %q", r)
		}
		seen[code] = struct{}{}
	}
	// 32^8 codes make collisions in 100 draws vanishingly unlikely
	assert.Len(t, seen, 100)
}
