package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	dbpkg "github.com/yungbote/team-alchemy-backend/internal/data/db"
	"github.com/yungbote/team-alchemy-backend/internal/data/repos"
	types "github.com/yungbote/team-alchemy-backend/internal/domain"
	pkgerrors "github.com/yungbote/team-alchemy-backend/internal/pkg/errors"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
)

type CreateTeamInput struct {
	Name        string
	Description *string
}

type TeamService interface {
	Create(ctx context.Context, in CreateTeamInput) (*types.Team, error)
	Get(ctx context.Context, teamID uint) (*types.Team, error)
	AddMember(ctx context.Context, teamID, userID uint) error
	List(ctx context.Context, skip, limit int) ([]*types.Team, error)
}

type teamService struct {
	db       *gorm.DB
	log      *logger.Logger
	teamRepo repos.TeamRepo
	userRepo repos.UserRepo
}

func NewTeamService(db *gorm.DB, log *logger.Logger, teamRepo repos.TeamRepo, userRepo repos.UserRepo) TeamService {
	serviceLog := log.With("service", "TeamService")
	return &teamService{db: db, log: serviceLog, teamRepo: teamRepo, userRepo: userRepo}
}

func (ts *teamService) Create(ctx context.Context, in CreateTeamInput) (*types.Team, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "Team name is required")
	}
	team := &types.Team{Name: name, Description: in.Description, Members: []*types.User{}}

	err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := ts.teamRepo.NameExists(ctx, tx, name)
		if err != nil {
			return fmt.Errorf("check team name: %w", err)
		}
		if exists {
			return pkgerrors.Newf(pkgerrors.ErrConflict, "Team with name '%s' already exists", name)
		}
		if _, err := ts.teamRepo.Create(ctx, tx, []*types.Team{team}); err != nil {
			if dbpkg.IsUniqueViolation(err) {
				return pkgerrors.Newf(pkgerrors.ErrConflict, "Team with name '%s' already exists", name)
			}
			return fmt.Errorf("create team: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ts.log.Info("Team created", "team_id", team.ID, "name", name)
	return team, nil
}

func (ts *teamService) Get(ctx context.Context, teamID uint) (*types.Team, error) {
	team, err := ts.teamRepo.GetByID(ctx, nil, teamID)
	if err != nil {
		return nil, fmt.Errorf("load team: %w", err)
	}
	if team == nil {
		return nil, pkgerrors.Newf(pkgerrors.ErrNotFound, "Team with id %d not found", teamID)
	}
	return team, nil
}

func (ts *teamService) AddMember(ctx context.Context, teamID, userID uint) error {
	return ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		team, err := ts.teamRepo.GetByID(ctx, tx, teamID)
		if err != nil {
			return fmt.Errorf("load team: %w", err)
		}
		if team == nil {
			return pkgerrors.Newf(pkgerrors.ErrNotFound, "Team with id %d not found", teamID)
		}
		users, err := ts.userRepo.GetByIDs(ctx, tx, []uint{userID})
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		if len(users) == 0 {
			return pkgerrors.Newf(pkgerrors.ErrNotFound, "User with id %d not found", userID)
		}
		member, err := ts.teamRepo.IsMember(ctx, tx, teamID, userID)
		if err != nil {
			return fmt.Errorf("check membership: %w", err)
		}
		if member {
			return pkgerrors.Newf(pkgerrors.ErrConflict, "User %d is already a member of team %d", userID, teamID)
		}
		if err := ts.teamRepo.AddMember(ctx, tx, teamID, users[0]); err != nil {
			if dbpkg.IsUniqueViolation(err) {
				return pkgerrors.Newf(pkgerrors.ErrConflict, "User %d is already a member of team %d", userID, teamID)
			}
			return fmt.Errorf("add member: %w", err)
		}
		ts.log.Info("Team member added", "team_id", teamID, "user_id", userID)
		return nil
	})
}

func (ts *teamService) List(ctx context.Context, skip, limit int) ([]*types.Team, error) {
	return ts.teamRepo.List(ctx, nil, skip, limit)
}
