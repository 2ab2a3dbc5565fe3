package domain

import (
	"github.com/yungbote/team-alchemy-backend/internal/domain/assessment"
	"github.com/yungbote/team-alchemy-backend/internal/domain/team"
	"github.com/yungbote/team-alchemy-backend/internal/domain/user"
)

const (
	AssessmentStatusDraft      = "draft"
	AssessmentStatusInProgress = "in_progress"
	AssessmentStatusCompleted  = "completed"
	AssessmentStatusAnalyzed   = "analyzed"
)

const (
	AnalysisTypeTeam       = "team"
	AnalysisTypeIndividual = "individual"
)

type User = user.User
type UserProfile = user.UserProfile

type Team = team.Team
type TeamAnalysis = team.TeamAnalysis

type Assessment = assessment.Assessment
type Question = assessment.Question
type Response = assessment.Response
type Answer = assessment.Answer

// Models lists every persisted type in migration order.
func Models() []any {
	return []any{
		&User{},
		&UserProfile{},
		&Team{},
		&TeamAnalysis{},
		&Assessment{},
		&Question{},
		&Response{},
	}
}
