package team

import (
	"context"
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/yungbote/team-alchemy-backend/internal/data/repos/testutil"
	types "github.com/yungbote/team-alchemy-backend/internal/domain"
)

func TestTeamRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewTeamRepo(db, testutil.Logger(t))
	ctx := context.Background()

	desc := "Builds the platform"
	created, err := repo.Create(ctx, tx, []*types.Team{{Name: "Platform", Description: &desc}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	teamID := created[0].ID

	exists, err := repo.NameExists(ctx, tx, "Platform")
	if err != nil || !exists {
		t.Fatalf("NameExists: got %v, %v", exists, err)
	}

	alice := testutil.SeedUser(t, ctx, tx, "alice@example.com")
	bob := testutil.SeedUser(t, ctx, tx, "bob@example.com")
	testutil.SeedProfile(t, ctx, tx, bob.ID, "ENFP", "innovator")

	for _, u := range []*types.User{bob, alice} {
		if err := repo.AddMember(ctx, tx, teamID, u); err != nil {
			t.Fatalf("AddMember(%d): %v", u.ID, err)
		}
	}

	member, err := repo.IsMember(ctx, tx, teamID, alice.ID)
	if err != nil || !member {
		t.Fatalf("IsMember: got %v, %v", member, err)
	}

	got, err := repo.GetByID(ctx, tx, teamID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Name != "Platform" || got.Description == nil || *got.Description != desc {
		t.Fatalf("GetByID: unexpected team: %+v", got)
	}
	if len(got.Members) != 2 || got.Members[0].ID != alice.ID {
		t.Fatalf("GetByID: members not ordered by id: %+v", got.Members)
	}
	if got.Members[1].Profile == nil || *got.Members[1].Profile.JungianType != "ENFP" {
		t.Fatalf("GetByID: member profile not preloaded: %+v", got.Members[1])
	}

	missing, err := repo.GetByID(ctx, tx, teamID+100)
	if err != nil || missing != nil {
		t.Fatalf("GetByID (missing): got %+v, %v", missing, err)
	}

	list, err := repo.List(ctx, tx, 0, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || len(list[0].Members) != 2 {
		t.Fatalf("List: unexpected result: %+v", list)
	}
}

func TestTeamAnalysisRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewTeamAnalysisRepo(db, testutil.Logger(t))
	ctx := context.Background()

	team := testutil.SeedTeam(t, ctx, tx, "Analysts")

	none, err := repo.LatestByTeamID(ctx, tx, team.ID, types.AnalysisTypeTeam)
	if err != nil || none != nil {
		t.Fatalf("LatestByTeamID (empty): got %+v, %v", none, err)
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, score := range []float64{55, 72} {
		s := score
		if _, err := repo.Create(ctx, tx, &types.TeamAnalysis{
			TeamID:       team.ID,
			AnalysisType: types.AnalysisTypeTeam,
			Results:      datatypes.JSON([]byte(`{"team_size":2}`)),
			Score:        &s,
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	latest, err := repo.LatestByTeamID(ctx, tx, team.ID, types.AnalysisTypeTeam)
	if err != nil {
		t.Fatalf("LatestByTeamID: %v", err)
	}
	if latest == nil || latest.Score == nil || *latest.Score != 72 {
		t.Fatalf("LatestByTeamID: unexpected row: %+v", latest)
	}

	all, err := repo.ListByTeamID(ctx, tx, team.ID, 0)
	if err != nil {
		t.Fatalf("ListByTeamID: %v", err)
	}
	if len(all) != 2 || *all[0].Score != 72 {
		t.Fatalf("ListByTeamID: expected newest first, got %+v", all)
	}
}
