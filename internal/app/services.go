package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"github.com/yungbote/team-alchemy-backend/internal/services"
)

type Services struct {
	User       services.UserService
	Auth       services.AuthService
	Team       services.TeamService
	Profile    services.ProfileService
	Analysis   services.AnalysisService
	Assessment services.AssessmentService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients) Services {
	log.Info("Wiring services...")
	userService := services.NewUserService(db, log, repos.User)
	analysisCfg := services.AnalysisConfig{
		MaxRecommendations: cfg.MaxRecommendations,
		CacheTTL:           cfg.AnalysisCacheTTL,
	}
	return Services{
		User:       userService,
		Auth:       services.NewAuthService(log, userService, cfg.SecretKey, cfg.AccessTokenTTL),
		Team:       services.NewTeamService(db, log, repos.Team, repos.User),
		Profile:    services.NewProfileService(db, log, repos.User, repos.UserProfile),
		Analysis:   services.NewAnalysisService(db, log, repos.Team, repos.TeamAnalysis, clients.Cache, analysisCfg),
		Assessment: services.NewAssessmentService(db, log, repos.Assessment, repos.Question, repos.Response),
	}
}
