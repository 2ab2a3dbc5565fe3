package assessment

import (
	"context"
	"errors"

	types "github.com/yungbote/team-alchemy-backend/internal/domain"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type QuestionRepo interface {
	GetByAssessmentID(ctx context.Context, tx *gorm.DB, assessmentID uint) ([]*types.Question, error)
	GetInAssessment(ctx context.Context, tx *gorm.DB, assessmentID, questionID uint) (*types.Question, error)
}

type questionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	repoLog := baseLog.With("repo", "QuestionRepo")
	return &questionRepo{db: db, log: repoLog}
}

func (r *questionRepo) GetByAssessmentID(ctx context.Context, tx *gorm.DB, assessmentID uint) ([]*types.Question, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Question{}
	if err := transaction.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetInAssessment returns nil, nil when the question does not belong to the assessment.
func (r *questionRepo) GetInAssessment(ctx context.Context, tx *gorm.DB, assessmentID, questionID uint) (*types.Question, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var q types.Question
	err := transaction.WithContext(ctx).
		Where("id = ? AND assessment_id = ?", questionID, assessmentID).
		First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}
