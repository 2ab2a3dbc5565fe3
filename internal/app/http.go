package app

import (
	httpserver "github.com/yungbote/team-alchemy-backend/internal/http"
	httpH "github.com/yungbote/team-alchemy-backend/internal/http/handlers"
	httpMW "github.com/yungbote/team-alchemy-backend/internal/http/middleware"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"github.com/yungbote/team-alchemy-backend/internal/psychology/casestudy"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health     *httpH.HealthHandler
	Archetype  *httpH.ArchetypeHandler
	Psychology *httpH.PsychologyHandler
	Analysis   *httpH.AnalysisHandler
	Team       *httpH.TeamHandler
	User       *httpH.UserHandler
	Auth       *httpH.AuthHandler
	Assessment *httpH.AssessmentHandler
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireHandlers(log *logger.Logger, cfg Config, services Services, cases *casestudy.Mapper) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(cfg.AppName, cfg.AppVersion),
		Archetype:  httpH.NewArchetypeHandler(),
		Psychology: httpH.NewPsychologyHandler(log, cases, cfg.EnableShadowWork),
		Analysis:   httpH.NewAnalysisHandler(log, services.Analysis, cfg.EnableRecommendations),
		Team:       httpH.NewTeamHandler(log, services.Team),
		User:       httpH.NewUserHandler(log, services.User, services.Profile),
		Auth:       httpH.NewAuthHandler(log, services.Auth),
		Assessment: httpH.NewAssessmentHandler(log, services.Assessment),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *httpserver.Server {
	serviceName := ""
	if cfg.OtelEnabled {
		serviceName = otelServiceName
	}
	return httpserver.NewServer(httpserver.RouterConfig{
		Log:               log.With("middleware", "RequestLogger"),
		ServiceName:       serviceName,
		APIPrefix:         cfg.APIPrefix,
		CORSOrigins:       cfg.CORSOrigins,
		AuthMiddleware:    middleware.Auth,
		HealthHandler:     handlers.Health,
		ArchetypeHandler:  handlers.Archetype,
		PsychologyHandler: handlers.Psychology,
		AnalysisHandler:   handlers.Analysis,
		TeamHandler:       handlers.Team,
		UserHandler:       handlers.User,
		AuthHandler:       handlers.Auth,
		AssessmentHandler: handlers.Assessment,
	})
}
