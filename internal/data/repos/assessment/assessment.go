package assessment

import (
	"context"
	"errors"

	types "github.com/yungbote/team-alchemy-backend/internal/domain"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssessmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, assessment *types.Assessment) (*types.Assessment, error)
	GetByID(ctx context.Context, tx *gorm.DB, assessmentID uint) (*types.Assessment, error)
	List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Assessment, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, assessmentID uint, status string) error
	SaveResults(ctx context.Context, tx *gorm.DB, assessmentID uint, status string, results datatypes.JSON) error
}

type assessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	repoLog := baseLog.With("repo", "AssessmentRepo")
	return &assessmentRepo{db: db, log: repoLog}
}

// Create inserts the assessment together with its questions.
func (r *assessmentRepo) Create(ctx context.Context, tx *gorm.DB, assessment *types.Assessment) (*types.Assessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(assessment).Error; err != nil {
		return nil, err
	}
	return assessment, nil
}

// GetByID preloads questions and responses; a missing row is nil, nil.
func (r *assessmentRepo) GetByID(ctx context.Context, tx *gorm.DB, assessmentID uint) (*types.Assessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var a types.Assessment
	err := transaction.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("questions.id ASC") }).
		Preload("Responses", func(db *gorm.DB) *gorm.DB { return db.Order("responses.id ASC") }).
		Where("id = ?", assessmentID).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assessmentRepo) List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Assessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Assessment{}
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *assessmentRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, assessmentID uint, status string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Assessment{}).
		Where("id = ?", assessmentID).
		Update("status", status).Error
}

func (r *assessmentRepo) SaveResults(ctx context.Context, tx *gorm.DB, assessmentID uint, status string, results datatypes.JSON) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Assessment{}).
		Where("id = ?", assessmentID).
		Updates(map[string]any{"status": status, "results": results}).Error
}
