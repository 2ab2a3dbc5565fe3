package assessment

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/yungbote/team-alchemy-backend/internal/pkg/errors"
)

const (
	MinQuestions      = 5
	MaxQuestions      = 200
	MinCompletionRate = 0.8
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type ValidationError struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

type Result struct {
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
}

func (r Result) Valid() bool       { return len(r.Errors) == 0 }
func (r Result) HasWarnings() bool { return len(r.Warnings) > 0 }

// Err is nil when there are no errors.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &FailedError{Errors: r.Errors}
}

// FailedError renders as "Validation failed: field: msg; field: msg".
type FailedError struct {
	Errors []ValidationError
}

func (e *FailedError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		parts[i] = ve.Field + ": " + ve.Message
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}

func (e *FailedError) Is(target error) bool { return target == pkgerrors.ErrInvalidArgument }

type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

var fieldMessages = map[string]string{
	"title.required": "Assessment title is required",
	"title.max":      "Assessment title cannot exceed 200 characters",
	"questions.min":  fmt.Sprintf("Assessment must have at least %d questions", MinQuestions),
	"questions.max":  fmt.Sprintf("Assessment cannot have more than %d questions", MaxQuestions),
	"text.required":  "Question text is required",
	"text.max":       "Question text cannot exceed 1000 characters",
	"weight.gte":     "Question weight must be between 0 and 1",
	"weight.lte":     "Question weight must be between 0 and 1",
}

func (v *Validator) structErrors(s any, prefix string) map[string]ValidationError {
	out := map[string]ValidationError{}
	err := v.v.Struct(s)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return out
	}
	for _, fe := range fieldErrs {
		key := fe.Field() + "." + fe.Tag()
		msg, ok := fieldMessages[key]
		if !ok {
			msg = fmt.Sprintf("failed %s validation", fe.Tag())
		}
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = ValidationError{Field: prefix + fe.Field(), Message: msg, Severity: SeverityError}
		}
	}
	return out
}

// ValidateAssessment checks structure always and responses once the draft is completed.
func (v *Validator) ValidateAssessment(d Draft) Result {
	res := Result{Errors: []ValidationError{}, Warnings: []ValidationError{}}

	top := d
	top.Title = strings.TrimSpace(d.Title)
	topErrs := v.structErrors(top, "")
	for _, f := range []string{"title", "questions"} {
		if e, ok := topErrs[f]; ok {
			res.Errors = append(res.Errors, e)
		}
	}

	res.Errors = append(res.Errors, v.validateQuestions(d.Questions)...)

	if d.Status == StatusCompleted {
		errs, warns := v.validateResponses(d.Responses, d.Questions)
		res.Errors = append(res.Errors, errs...)
		res.Warnings = append(res.Warnings, warns...)
	}
	return res
}

func (v *Validator) validateQuestions(questions []Question) []ValidationError {
	var out []ValidationError
	seen := map[uint]bool{}
	for i, q := range questions {
		prefix := fmt.Sprintf("questions[%d].", i)
		if q.ID != 0 {
			if seen[q.ID] {
				out = append(out, errorf(prefix+"id", "Duplicate question ID: %d", q.ID))
			}
			seen[q.ID] = true
		}
		if !q.Type.Valid() {
			out = append(out, errorf(prefix+"question_type", "Unknown question type '%s'", q.Type))
		}

		trimmed := q
		trimmed.Text = strings.TrimSpace(q.Text)
		qErrs := v.structErrors(trimmed, prefix)
		if e, ok := qErrs["text"]; ok {
			out = append(out, e)
		}
		if q.Type == MultipleChoice && len(q.Options) < 2 {
			out = append(out, errorf(prefix+"options", "Multiple choice questions must have at least 2 options"))
		}
		if e, ok := qErrs["weight"]; ok {
			out = append(out, e)
		}
	}
	return out
}

func (v *Validator) validateResponses(responses []Response, questions []Question) (errs, warns []ValidationError) {
	rate := 0.0
	if len(questions) > 0 {
		rate = float64(len(responses)) / float64(len(questions))
	}
	if rate < MinCompletionRate {
		warns = append(warns, ValidationError{
			Field:    "responses",
			Message:  fmt.Sprintf("Only %.1f%% complete (minimum %.1f%% recommended)", rate*100, MinCompletionRate*100),
			Severity: SeverityWarning,
		})
	}

	byID := make(map[uint]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	answered := map[uint]bool{}
	for i, r := range responses {
		field := fmt.Sprintf("responses[%d].question_id", i)
		q, ok := byID[r.QuestionID]
		if !ok {
			errs = append(errs, errorf(field, "Question %d not found in assessment", r.QuestionID))
			continue
		}
		if answered[r.QuestionID] {
			errs = append(errs, errorf(field, "Duplicate response for question %d", r.QuestionID))
		}
		answered[r.QuestionID] = true
		for _, ae := range ValidateAnswer(r.Answer, q) {
			ae.Field = fmt.Sprintf("responses[%d].answer", i)
			errs = append(errs, ae)
		}
	}
	return errs, warns
}

// ValidateAnswer checks an answer's shape against its question type.
func ValidateAnswer(answer any, q Question) []ValidationError {
	if answer == nil {
		return []ValidationError{errorf("answer", "Answer cannot be null")}
	}
	switch q.Type {
	case MultipleChoice:
		s, ok := answer.(string)
		if !ok {
			return []ValidationError{errorf("answer", "Multiple choice answer must be a string")}
		}
		if len(q.Options) > 0 && !contains(q.Options, s) {
			return []ValidationError{errorf("answer", "Answer '%s' not in valid options", s)}
		}
	case Scale:
		n, ok := number(answer)
		if !ok {
			return []ValidationError{errorf("answer", "Scale answer must be a number")}
		}
		if n < 0 || n > 100 {
			return []ValidationError{errorf("answer", "Scale answer must be between 0 and 100")}
		}
	case Text:
		if _, ok := answer.(string); !ok {
			return []ValidationError{errorf("answer", "Text answer must be a string")}
		}
	}
	return nil
}

func ValidateConfidence(confidence *float64) []ValidationError {
	if confidence == nil || (*confidence >= 0 && *confidence <= 1) {
		return nil
	}
	return []ValidationError{errorf("confidence", "Confidence must be between 0 and 1")}
}

func errorf(field, format string, args ...any) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, args...), Severity: SeverityError}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
