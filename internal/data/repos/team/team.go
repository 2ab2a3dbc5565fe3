package team

import (
	"context"
	"errors"

	types "github.com/yungbote/team-alchemy-backend/internal/domain"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type TeamRepo interface {
	Create(ctx context.Context, tx *gorm.DB, teams []*types.Team) ([]*types.Team, error)
	GetByID(ctx context.Context, tx *gorm.DB, teamID uint) (*types.Team, error)
	NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error)
	List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Team, error)
	AddMember(ctx context.Context, tx *gorm.DB, teamID uint, user *types.User) error
	IsMember(ctx context.Context, tx *gorm.DB, teamID, userID uint) (bool, error)
}

type teamRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTeamRepo(db *gorm.DB, baseLog *logger.Logger) TeamRepo {
	repoLog := baseLog.With("repo", "TeamRepo")
	return &teamRepo{db: db, log: repoLog}
}

func (r *teamRepo) Create(ctx context.Context, tx *gorm.DB, teams []*types.Team) ([]*types.Team, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(teams) == 0 {
		return []*types.Team{}, nil
	}
	if err := transaction.WithContext(ctx).Omit("Members.*").Create(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// GetByID preloads members and their profiles; a missing team is nil, nil.
func (r *teamRepo) GetByID(ctx context.Context, tx *gorm.DB, teamID uint) (*types.Team, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var t types.Team
	err := transaction.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("users.id ASC") }).
		Preload("Members.Profile").
		Where("id = ?", teamID).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *teamRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Team{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *teamRepo) List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Team, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Team{}
	if err := transaction.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("users.id ASC") }).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *teamRepo) AddMember(ctx context.Context, tx *gorm.DB, teamID uint, user *types.User) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	t := &types.Team{ID: teamID}
	return transaction.WithContext(ctx).Model(t).Association("Members").Append(user)
}

func (r *teamRepo) IsMember(ctx context.Context, tx *gorm.DB, teamID, userID uint) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Table("team_members").
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
