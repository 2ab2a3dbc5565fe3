package team

import (
	"context"
	"errors"

	types "github.com/yungbote/team-alchemy-backend/internal/domain"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"gorm.io/gorm"
)

// TeamAnalysisRepo is append-only: analyses are never updated in place.
type TeamAnalysisRepo interface {
	Create(ctx context.Context, tx *gorm.DB, analysis *types.TeamAnalysis) (*types.TeamAnalysis, error)
	LatestByTeamID(ctx context.Context, tx *gorm.DB, teamID uint, analysisType string) (*types.TeamAnalysis, error)
	ListByTeamID(ctx context.Context, tx *gorm.DB, teamID uint, limit int) ([]*types.TeamAnalysis, error)
}

type teamAnalysisRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTeamAnalysisRepo(db *gorm.DB, baseLog *logger.Logger) TeamAnalysisRepo {
	repoLog := baseLog.With("repo", "TeamAnalysisRepo")
	return &teamAnalysisRepo{db: db, log: repoLog}
}

func (r *teamAnalysisRepo) Create(ctx context.Context, tx *gorm.DB, analysis *types.TeamAnalysis) (*types.TeamAnalysis, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(analysis).Error; err != nil {
		return nil, err
	}
	return analysis, nil
}

// LatestByTeamID returns nil, nil when no analysis of that type exists.
// An empty analysisType matches any type.
func (r *teamAnalysisRepo) LatestByTeamID(ctx context.Context, tx *gorm.DB, teamID uint, analysisType string) (*types.TeamAnalysis, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	q := transaction.WithContext(ctx).Where("team_id = ?", teamID)
	if analysisType != "" {
		q = q.Where("analysis_type = ?", analysisType)
	}
	var a types.TeamAnalysis
	err := q.Order("created_at DESC").Order("id DESC").First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *teamAnalysisRepo) ListByTeamID(ctx context.Context, tx *gorm.DB, teamID uint, limit int) ([]*types.TeamAnalysis, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.TeamAnalysis{}
	q := transaction.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
