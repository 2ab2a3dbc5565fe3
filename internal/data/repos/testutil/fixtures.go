package testutil

import (
	"context"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/team-alchemy-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		Email: email,
		Name:  "Test User",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedProfile(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uint, mbti, archetype string) *types.UserProfile {
	tb.Helper()
	p := &types.UserProfile{
		UserID:      userID,
		JungianType: PtrString(mbti),
		Archetype:   PtrString(archetype),
		TraitScores: datatypes.JSON([]byte(`{"dominance":80,"influence":70}`)),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return p
}

func SeedTeam(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, members ...*types.User) *types.Team {
	tb.Helper()
	t := &types.Team{Name: name}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed team: %v", err)
	}
	if len(members) > 0 {
		if err := tx.WithContext(ctx).Model(t).Association("Members").Append(members); err != nil {
			tb.Fatalf("seed team members: %v", err)
		}
	}
	return t
}

func SeedAssessment(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, questions int) *types.Assessment {
	tb.Helper()
	a := &types.Assessment{Title: title, Status: types.AssessmentStatusDraft, Version: "1.0.0"}
	for i := 0; i < questions; i++ {
		a.Questions = append(a.Questions, &types.Question{
			Text:         "How do you handle deadlines?",
			QuestionType: "scale",
			Category:     "behavioral",
			Weight:       1,
		})
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed assessment: %v", err)
	}
	return a
}

func PtrString(v string) *string { return &v }

func PtrFloat(v float64) *float64 { return &v }
