package assessment

import (
	"context"

	types "github.com/yungbote/team-alchemy-backend/internal/domain"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ResponseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, response *types.Response) (*types.Response, error)
	GetByAssessmentID(ctx context.Context, tx *gorm.DB, assessmentID uint) ([]*types.Response, error)
	Exists(ctx context.Context, tx *gorm.DB, assessmentID, questionID uint) (bool, error)
}

type responseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResponseRepo(db *gorm.DB, baseLog *logger.Logger) ResponseRepo {
	repoLog := baseLog.With("repo", "ResponseRepo")
	return &responseRepo{db: db, log: repoLog}
}

func (r *responseRepo) Create(ctx context.Context, tx *gorm.DB, response *types.Response) (*types.Response, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(response).Error; err != nil {
		return nil, err
	}
	return response, nil
}

func (r *responseRepo) GetByAssessmentID(ctx context.Context, tx *gorm.DB, assessmentID uint) ([]*types.Response, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Response{}
	if err := transaction.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *responseRepo) Exists(ctx context.Context, tx *gorm.DB, assessmentID, questionID uint) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Response{}).
		Where("assessment_id = ? AND question_id = ?", assessmentID, questionID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
