package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/team-alchemy-backend/internal/data/repos"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
)

type Repos struct {
	User         repos.UserRepo
	UserProfile  repos.UserProfileRepo
	Team         repos.TeamRepo
	TeamAnalysis repos.TeamAnalysisRepo
	Assessment   repos.AssessmentRepo
	Question     repos.QuestionRepo
	Response     repos.ResponseRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:         repos.NewUserRepo(db, log),
		UserProfile:  repos.NewUserProfileRepo(db, log),
		Team:         repos.NewTeamRepo(db, log),
		TeamAnalysis: repos.NewTeamAnalysisRepo(db, log),
		Assessment:   repos.NewAssessmentRepo(db, log),
		Question:     repos.NewQuestionRepo(db, log),
		Response:     repos.NewResponseRepo(db, log),
	}
}
