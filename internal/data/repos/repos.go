package repos

import (
	"github.com/yungbote/team-alchemy-backend/internal/data/repos/assessment"
	"github.com/yungbote/team-alchemy-backend/internal/data/repos/team"
	"github.com/yungbote/team-alchemy-backend/internal/data/repos/user"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type UserRepo = user.UserRepo
type UserProfileRepo = user.UserProfileRepo

type TeamRepo = team.TeamRepo
type TeamAnalysisRepo = team.TeamAnalysisRepo

type AssessmentRepo = assessment.AssessmentRepo
type QuestionRepo = assessment.QuestionRepo
type ResponseRepo = assessment.ResponseRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewUserProfileRepo(db *gorm.DB, baseLog *logger.Logger) UserProfileRepo {
	return user.NewUserProfileRepo(db, baseLog)
}

func NewTeamRepo(db *gorm.DB, baseLog *logger.Logger) TeamRepo { return team.NewTeamRepo(db, baseLog) }
func NewTeamAnalysisRepo(db *gorm.DB, baseLog *logger.Logger) TeamAnalysisRepo {
	return team.NewTeamAnalysisRepo(db, baseLog)
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	return assessment.NewAssessmentRepo(db, baseLog)
}
func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	return assessment.NewQuestionRepo(db, baseLog)
}
func NewResponseRepo(db *gorm.DB, baseLog *logger.Logger) ResponseRepo {
	return assessment.NewResponseRepo(db, baseLog)
}
