package assessment

import (
	"time"

	"gorm.io/datatypes"
)

type Assessment struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"size:200;not null;column:title" json:"title"`
	Description *string        `gorm:"size:1000;column:description" json:"description"`
	Version     string         `gorm:"size:20;default:'1.0.0';column:version" json:"version"`
	Status      string         `gorm:"size:20;default:'draft';column:status" json:"status"`
	Results     datatypes.JSON `gorm:"column:results" json:"results"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`

	Questions []*Question `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	Responses []*Response `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE" json:"responses"`
}

func (Assessment) TableName() string { return "assessments" }

type Question struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	AssessmentID uint           `gorm:"index;not null;column:assessment_id" json:"assessment_id"`
	Text         string         `gorm:"size:1000;not null;column:text" json:"text"`
	QuestionType string         `gorm:"size:50;not null;column:question_type" json:"question_type"`
	Options      datatypes.JSON `gorm:"column:options" json:"options"`
	Category     string         `gorm:"size:100;column:category" json:"category"`
	Weight       float64        `gorm:"default:1;column:weight" json:"weight"`
}

func (Question) TableName() string { return "questions" }

// Response is unique per (assessment, question).
type Response struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	AssessmentID uint           `gorm:"not null;uniqueIndex:idx_response_assessment_question;column:assessment_id" json:"assessment_id"`
	QuestionID   uint           `gorm:"not null;uniqueIndex:idx_response_assessment_question;column:question_id" json:"question_id"`
	Answer       Answer         `gorm:"column:answer" json:"answer"`
	Confidence   *float64       `gorm:"column:confidence" json:"confidence"`
	CreatedAt    time.Time      `gorm:"not null" json:"created_at"`
}

func (Response) TableName() string { return "responses" }
