package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/team-alchemy-backend/internal/archetypes"
	"github.com/yungbote/team-alchemy-backend/internal/data/repos"
	types "github.com/yungbote/team-alchemy-backend/internal/domain"
	pkgerrors "github.com/yungbote/team-alchemy-backend/internal/pkg/errors"
	"github.com/yungbote/team-alchemy-backend/internal/platform/apierr"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"github.com/yungbote/team-alchemy-backend/internal/psychology/mbti"
)

type AssessmentKind string

const (
	AssessFull      AssessmentKind = "full"
	AssessMBTI      AssessmentKind = "mbti"
	AssessArchetype AssessmentKind = "archetype"
)

func ParseAssessmentKind(s string) (AssessmentKind, bool) {
	switch k := AssessmentKind(strings.ToLower(strings.TrimSpace(s))); k {
	case AssessFull, AssessMBTI, AssessArchetype:
		return k, true
	}
	return "", false
}

type ProfileUpdate struct {
	Archetype   *string
	JungianType *string
	TraitScores map[string]float64
}

type ProfileAssessment struct {
	User           *types.User        `json:"user"`
	Profile        *types.UserProfile `json:"profile"`
	Kind           AssessmentKind     `json:"assessment_type"`
	CreatedProfile bool               `json:"created_profile"`
	Jungian        *mbti.Details      `json:"jungian_profile,omitempty"`
	Classification *archetypes.Result `json:"classification,omitempty"`
	PrimaryName    string             `json:"primary_archetype,omitempty"`
}

type ProfileService interface {
	Upsert(ctx context.Context, userID uint, in ProfileUpdate) (*types.UserProfile, error)
	EnsureProfile(ctx context.Context, userID uint) (*types.UserProfile, bool, error)
	Assess(ctx context.Context, userID uint, kind string) (*ProfileAssessment, error)
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    repos.UserRepo
	profileRepo repos.UserProfileRepo
	classifier  *archetypes.Classifier
}

func NewProfileService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, profileRepo repos.UserProfileRepo) ProfileService {
	serviceLog := log.With("service", "ProfileService")
	return &profileService{
		db:          db,
		log:         serviceLog,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		classifier:  archetypes.NewClassifier(),
	}
}

// sampleTraits classify as an analyst.
var sampleTraits = map[string]float64{
	"Analytical Thinking": 85,
	"Detail Orientation":  80,
	"Logical Reasoning":   88,
	"Creativity":          60,
	"Extraversion":        35,
}

const sampleMBTI = "INTJ"

func (ps *profileService) loadUser(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error) {
	users, err := ps.userRepo.GetByIDs(ctx, tx, []uint{userID})
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if len(users) == 0 {
		return nil, pkgerrors.Newf(pkgerrors.ErrNotFound, "User with id %d not found", userID)
	}
	return users[0], nil
}

func (ps *profileService) Upsert(ctx context.Context, userID uint, in ProfileUpdate) (*types.UserProfile, error) {
	row := &types.UserProfile{UserID: userID}
	if in.JungianType != nil {
		t, ok := mbti.ParseType(*in.JungianType)
		if !ok {
			return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "Invalid MBTI type: %s", *in.JungianType)
		}
		s := string(t)
		row.JungianType = &s
	}
	if in.Archetype != nil {
		a, ok := archetypes.ParseType(*in.Archetype)
		if !ok {
			return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "Unknown archetype: %s", *in.Archetype)
		}
		s := string(a)
		row.Archetype = &s
	}
	if in.TraitScores != nil {
		if _, err := archetypes.ProfileFromScores(in.TraitScores); err != nil {
			return nil, apierr.New(http.StatusUnprocessableEntity, "validation_error", err)
		}
		raw, err := json.Marshal(in.TraitScores)
		if err != nil {
			return nil, fmt.Errorf("encode trait scores: %w", err)
		}
		row.TraitScores = datatypes.JSON(raw)
	}

	var saved *types.UserProfile
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ps.loadUser(ctx, tx, userID); err != nil {
			return err
		}
		existing, err := ps.profileRepo.GetByUserID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if existing != nil {
			if row.JungianType == nil {
				row.JungianType = existing.JungianType
			}
			if row.Archetype == nil {
				row.Archetype = existing.Archetype
			}
			if row.TraitScores == nil {
				row.TraitScores = existing.TraitScores
			}
		}
		saved, err = ps.profileRepo.Upsert(ctx, tx, row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// EnsureProfile creates the sample profile when the user has none and
// reports whether it did.
func (ps *profileService) EnsureProfile(ctx context.Context, userID uint) (*types.UserProfile, bool, error) {
	var profile *types.UserProfile
	created := false
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ps.loadUser(ctx, tx, userID); err != nil {
			return err
		}
		existing, err := ps.profileRepo.GetByUserID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if existing != nil {
			profile = existing
			return nil
		}
		raw, err := json.Marshal(sampleTraits)
		if err != nil {
			return err
		}
		mbtiType := sampleMBTI
		profile, err = ps.profileRepo.Upsert(ctx, tx, &types.UserProfile{
			UserID:      userID,
			JungianType: &mbtiType,
			TraitScores: datatypes.JSON(raw),
		})
		created = err == nil
		return err
	})
	if err != nil {
		return nil, false, err
	}
	if created {
		ps.log.Info("Sample profile created", "user_id", userID)
	}
	return profile, created, nil
}

func (ps *profileService) Assess(ctx context.Context, userID uint, kind string) (*ProfileAssessment, error) {
	k, ok := ParseAssessmentKind(kind)
	if !ok {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "Invalid assessment type: %s", kind)
	}
	user, err := ps.loadUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	profile, created, err := ps.EnsureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &ProfileAssessment{User: user, Profile: profile, Kind: k, CreatedProfile: created}

	if k == AssessFull || k == AssessMBTI {
		if profile.JungianType != nil {
			if t, ok := mbti.ParseType(*profile.JungianType); ok {
				out.Jungian, _ = mbti.Describe(t)
			}
		}
	}
	if k == AssessFull || k == AssessArchetype {
		if err := ps.classify(profile, out); err != nil {
			return nil, err
		}
	}

	saved, err := ps.profileRepo.Upsert(ctx, nil, profile)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	out.Profile = saved
	ps.log.Info("Profile assessed", "user_id", userID, "assessment_type", k)
	return out, nil
}

// classify prefers stored trait scores; without them the stored archetype
// label is reported as-is.
func (ps *profileService) classify(profile *types.UserProfile, out *ProfileAssessment) error {
	var scores map[string]float64
	if len(profile.TraitScores) > 0 {
		if err := json.Unmarshal(profile.TraitScores, &scores); err != nil {
			return pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "Stored trait scores are not numeric: %v", err)
		}
	}
	if len(scores) == 0 {
		if profile.Archetype != nil {
			out.PrimaryName = displayName(*profile.Archetype)
		}
		return nil
	}
	tp, err := archetypes.ProfileFromScores(scores)
	if err != nil {
		return apierr.New(http.StatusUnprocessableEntity, "validation_error", err)
	}
	res, err := ps.classifier.Classify(tp)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}
	primary := string(res.Primary)
	profile.Archetype = &primary
	out.Classification = &res
	out.PrimaryName = displayName(primary)
	return nil
}

func displayName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
