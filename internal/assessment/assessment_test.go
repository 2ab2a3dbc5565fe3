package assessment

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/yungbote/team-alchemy-backend/internal/pkg/errors"
)

func scaleQuestions(n int, category string) []Question {
	out := make([]Question, n)
	for i := range out {
		out[i] = Question{ID: uint(i + 1), Text: "How often?", Type: Scale, Category: category, Weight: 1}
	}
	return out
}

func ptr(f float64) *float64 { return &f }

func TestCalculateEmpty(t *testing.T) {
	s := NewCalculator().Calculate(nil, scaleQuestions(5, "cognitive"))
	assert.Equal(t, 0.0, s.TotalScore)
	assert.Empty(t, s.CategoryScores)
	assert.Empty(t, s.TraitScores)
	assert.Equal(t, 0.0, s.CompletionPercentage)
}

func TestCalculateWeightsCategories(t *testing.T) {
	questions := []Question{
		{ID: 1, Type: Scale, Category: "interpersonal"},
		{ID: 2, Type: Scale, Category: "interpersonal"},
		{ID: 3, Type: Text, Category: "cognitive"},
		{ID: 4, Type: Scale, Category: "cognitive"},
	}
	responses := []Response{
		{QuestionID: 1, Answer: 80.0},
		{QuestionID: 2, Answer: 60.0},
		{QuestionID: 3, Answer: "free text", Confidence: ptr(0.9)},
		{QuestionID: 99, Answer: 10.0},
	}
	s := NewCalculator().Calculate(responses, questions)
	assert.Equal(t, 70.0, s.CategoryScores["interpersonal"])
	assert.InDelta(t, 90.0, s.CategoryScores["cognitive"], 1e-9)
	assert.InDelta(t, (70*1.2+90*1.0)/2.2, s.TotalScore, 1e-9)
	assert.Equal(t, 75.0, s.CompletionPercentage)
	assert.Contains(t, s.TraitScores, "Interpersonal")
	assert.Contains(t, s.TraitScores, "Cognitive")
}

func TestScoreResponse(t *testing.T) {
	assert.Equal(t, 42.0, ScoreResponse(Response{Answer: 42}))
	assert.Equal(t, 50.0, ScoreResponse(Response{Answer: "text"}))
	assert.Equal(t, 50.0, ScoreResponse(Response{Answer: []any{"a"}}))
	assert.InDelta(t, 30.0, ScoreResponse(Response{Answer: "text", Confidence: ptr(0.3)}), 1e-9)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Decision_Making", titleCase("decision_making"))
	assert.Equal(t, "Interpersonal", titleCase("INTERPERSONAL"))
}

func TestAggregate(t *testing.T) {
	empty := Aggregate(nil)
	assert.Equal(t, 0.0, empty.TeamAverage)
	assert.Empty(t, empty.CategoryAverages)

	agg := Aggregate([]Score{
		{TotalScore: 60, CategoryScores: map[string]float64{"cognitive": 60}},
		{TotalScore: 80, CategoryScores: map[string]float64{"cognitive": 80, "emotional": 40}},
	})
	assert.Equal(t, 70.0, agg.TeamAverage)
	assert.Equal(t, 100.0, agg.TeamVariance)
	assert.Equal(t, 70.0, agg.CategoryAverages["cognitive"])
	assert.Equal(t, 20.0, agg.CategoryAverages["emotional"])
	assert.Equal(t, 2, agg.TeamSize)
}

func TestValidateAssessmentValid(t *testing.T) {
	res := NewValidator().ValidateAssessment(Draft{Title: "Team Pulse", Questions: scaleQuestions(5, "cognitive")})
	assert.True(t, res.Valid(), "%+v", res.Errors)
	assert.NoError(t, res.Err())
}

func TestValidateAssessmentErrors(t *testing.T) {
	questions := []Question{
		{Text: "Pick one", Type: MultipleChoice, Options: []string{"only"}, Weight: 0.5},
		{Text: "  ", Type: Scale, Weight: 1.5},
	}
	res := NewValidator().ValidateAssessment(Draft{Title: "   ", Questions: questions})
	require.False(t, res.Valid())

	got := make([]string, len(res.Errors))
	for i, e := range res.Errors {
		got[i] = e.Field + ": " + e.Message
	}
	assert.Equal(t, []string{
		"title: Assessment title is required",
		"questions: Assessment must have at least 5 questions",
		"questions[0].options: Multiple choice questions must have at least 2 options",
		"questions[1].text: Question text is required",
		"questions[1].weight: Question weight must be between 0 and 1",
	}, got)

	err := res.Err()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Validation failed: title: Assessment title is required; "))
	assert.True(t, errors.Is(err, pkgerrors.ErrInvalidArgument))
}

func TestValidateTooManyQuestions(t *testing.T) {
	res := NewValidator().ValidateAssessment(Draft{Title: "Huge", Questions: scaleQuestions(201, "x")})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Assessment cannot have more than 200 questions", res.Errors[0].Message)
}

func TestValidateCompletedResponses(t *testing.T) {
	questions := scaleQuestions(5, "behavioral")
	questions[0].Type = MultipleChoice
	questions[0].Options = []string{"yes", "no"}
	d := Draft{
		Title:     "Done",
		Status:    StatusCompleted,
		Questions: questions,
		Responses: []Response{
			{QuestionID: 1, Answer: "maybe"},
			{QuestionID: 2, Answer: 150.0},
			{QuestionID: 2, Answer: 50.0},
			{QuestionID: 42, Answer: 1.0},
		},
	}
	res := NewValidator().ValidateAssessment(d)
	msgs := map[string]string{}
	for _, e := range res.Errors {
		msgs[e.Field] += e.Message
	}
	assert.Equal(t, "Answer 'maybe' not in valid options", msgs["responses[0].answer"])
	assert.Equal(t, "Scale answer must be between 0 and 100", msgs["responses[1].answer"])
	assert.Equal(t, "Duplicate response for question 2", msgs["responses[2].question_id"])
	assert.Equal(t, "Question 42 not found in assessment", msgs["responses[3].question_id"])
	assert.False(t, res.HasWarnings(), "4 of 5 responses meets the completion floor")

	d.Responses = d.Responses[:1]
	res = NewValidator().ValidateAssessment(d)
	require.True(t, res.HasWarnings())
	assert.Equal(t, "Only 20.0% complete (minimum 80.0% recommended)", res.Warnings[0].Message)
}

func TestValidateAnswerAndConfidence(t *testing.T) {
	assert.Len(t, ValidateAnswer(nil, Question{Type: Text}), 1)
	assert.Len(t, ValidateAnswer(3.0, Question{Type: Text}), 1)
	assert.Empty(t, ValidateAnswer("ok", Question{Type: Text}))
	assert.Len(t, ValidateAnswer("high", Question{Type: Scale}), 1)
	assert.Empty(t, ValidateAnswer([]any{"a", "b"}, Question{Type: Ranking}))

	assert.Empty(t, ValidateConfidence(nil))
	assert.Empty(t, ValidateConfidence(ptr(1)))
	errs := ValidateConfidence(ptr(1.5))
	require.Len(t, errs, 1)
	assert.Equal(t, "Confidence must be between 0 and 1", errs[0].Message)
}
