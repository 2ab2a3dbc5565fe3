package assessment

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	Scale          QuestionType = "scale"
	Text           QuestionType = "text"
	Ranking        QuestionType = "ranking"
)

func (t QuestionType) Valid() bool {
	switch t {
	case MultipleChoice, Scale, Text, Ranking:
		return true
	}
	return false
}

type Status string

const (
	StatusDraft      Status = "draft"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusAnalyzed   Status = "analyzed"
)

type Question struct {
	ID       uint         `json:"id"`
	Text     string       `json:"text" validate:"required,max=1000"`
	Type     QuestionType `json:"question_type"`
	Options  []string     `json:"options,omitempty"`
	Category string       `json:"category"`
	Weight   float64      `json:"weight" validate:"gte=0,lte=1"`
}

type Response struct {
	QuestionID uint     `json:"question_id"`
	Answer     any      `json:"answer"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Draft is an assessment as submitted for creation or completion checks.
type Draft struct {
	Title     string     `json:"title" validate:"required,max=200"`
	Status    Status     `json:"status"`
	Questions []Question `json:"questions" validate:"min=5,max=200"`
	Responses []Response `json:"responses"`
}
