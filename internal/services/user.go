package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dbpkg "github.com/yungbote/team-alchemy-backend/internal/data/db"
	"github.com/yungbote/team-alchemy-backend/internal/data/repos"
	types "github.com/yungbote/team-alchemy-backend/internal/domain"
	pkgerrors "github.com/yungbote/team-alchemy-backend/internal/pkg/errors"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
)

type CreateUserInput struct {
	Email    string
	Name     string
	Password *string
}

type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*types.User, error)
	Get(ctx context.Context, userID uint) (*types.User, error)
	List(ctx context.Context, skip, limit int) ([]*types.User, error)
	Authenticate(ctx context.Context, email, password string) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) Create(ctx context.Context, in CreateUserInput) (*types.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.Name)
	if email == "" || !strings.Contains(email, "@") {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "A valid email is required")
	}
	if name == "" {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "Name is required")
	}

	user := &types.User{Email: email, Name: name}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		h := string(hash)
		user.PasswordHash = &h
	}

	err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := us.userRepo.EmailExists(ctx, tx, email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if exists {
			return pkgerrors.Newf(pkgerrors.ErrConflict, "User with email '%s' already exists", email)
		}
		if _, err := us.userRepo.Create(ctx, tx, []*types.User{user}); err != nil {
			if dbpkg.IsUniqueViolation(err) {
				return pkgerrors.Newf(pkgerrors.ErrConflict, "User with email '%s' already exists", email)
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	us.log.Info("User created", "user_id", user.ID)
	return user, nil
}

func (us *userService) Get(ctx context.Context, userID uint) (*types.User, error) {
	users, err := us.userRepo.GetByIDs(ctx, nil, []uint{userID})
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if len(users) == 0 {
		return nil, pkgerrors.Newf(pkgerrors.ErrNotFound, "User with id %d not found", userID)
	}
	return users[0], nil
}

func (us *userService) List(ctx context.Context, skip, limit int) ([]*types.User, error) {
	return us.userRepo.List(ctx, nil, skip, limit)
}

func (us *userService) Authenticate(ctx context.Context, email, password string) (*types.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	users, err := us.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return nil, fmt.Errorf("load user by email: %w", err)
	}
	if len(users) == 0 || users[0].PasswordHash == nil {
		return nil, pkgerrors.Newf(pkgerrors.ErrUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*users[0].PasswordHash), []byte(password)); err != nil {
		return nil, pkgerrors.Newf(pkgerrors.ErrUnauthorized, "Invalid email or password")
	}
	return users[0], nil
}
