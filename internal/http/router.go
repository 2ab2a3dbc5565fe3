package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/team-alchemy-backend/internal/http/handlers"
	httpMW "github.com/yungbote/team-alchemy-backend/internal/http/middleware"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	APIPrefix   string
	CORSOrigins []string

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler     *httpH.HealthHandler
	ArchetypeHandler  *httpH.ArchetypeHandler
	PsychologyHandler *httpH.PsychologyHandler
	AnalysisHandler   *httpH.AnalysisHandler
	TeamHandler       *httpH.TeamHandler
	UserHandler       *httpH.UserHandler
	AuthHandler       *httpH.AuthHandler
	AssessmentHandler *httpH.AssessmentHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	httpH.RegisterValidation()

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	if cfg.AuthMiddleware != nil {
		r.Use(cfg.AuthMiddleware.Identify())
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Root)
		r.GET("/health", cfg.HealthHandler.HealthCheck)
	}

	prefix := cfg.APIPrefix
	if prefix == "" {
		prefix = "/api/v1"
	}
	api := r.Group(prefix)
	{
		if cfg.HealthHandler != nil {
			api.GET("/health", cfg.HealthHandler.HealthCheck)
		}

		// Archetypes
		if cfg.ArchetypeHandler != nil {
			api.GET("/archetypes/", cfg.ArchetypeHandler.List)
			api.GET("/archetypes/:type", cfg.ArchetypeHandler.Get)
		}

		// Psychology
		if h := cfg.PsychologyHandler; h != nil {
			api.GET("/psychology/jungian/profile/:mbti", h.JungianProfile)
			api.GET("/psychology/jungian/compatibility/:t1/:t2", h.JungianCompatibility)
			api.GET("/psychology/jungian/types", h.JungianTypes)
			api.POST("/psychology/freudian/defense-mechanisms", h.DefenseMechanisms)
			api.GET("/psychology/freudian/mechanisms", h.Mechanisms)
			api.GET("/psychology/case-studies", h.CaseStudies)
			api.GET("/psychology/case-studies/frameworks", h.Frameworks)
			api.GET("/psychology/case-studies/:id", h.CaseStudy)
			api.POST("/psychology/case-studies/similar", h.SimilarCases)
			api.POST("/psychology/case-studies/recommendations", h.CaseRecommendations)
			api.POST("/psychology/shadow/analysis", h.ShadowAnalysis)
		}

		// Analysis
		if h := cfg.AnalysisHandler; h != nil {
			api.POST("/analysis/team/:id", h.AnalyzeTeam)
			api.POST("/analysis/team/:id/stored", h.AnalyzeStoredTeam)
			api.GET("/analysis/team/:id/latest", h.LatestAnalysis)
			api.GET("/analysis/team/:id/recommendations", h.Recommendations)
			api.GET("/analysis/individual/:user_id", h.AnalyzeIndividual)
			api.POST("/analysis/compatibility", h.Compatibility)
		}

		// Teams
		if h := cfg.TeamHandler; h != nil {
			api.POST("/teams/", h.Create)
			api.GET("/teams/", h.List)
			api.GET("/teams/:id", h.Get)
			api.POST("/teams/:id/members/:user_id", h.AddMember)
		}

		// Users
		if h := cfg.UserHandler; h != nil {
			api.POST("/users/", h.Create)
			api.GET("/users/", h.List)
			api.GET("/users/me", h.GetMe)
			api.GET("/users/:id", h.Get)
			api.PUT("/users/:id/profile", h.UpdateProfile)
		}

		// Auth
		if cfg.AuthHandler != nil {
			api.POST("/auth/token", cfg.AuthHandler.Token)
		}

		// Assessments
		if h := cfg.AssessmentHandler; h != nil {
			api.POST("/assessments/", h.Create)
			api.GET("/assessments/", h.List)
			api.GET("/assessments/:id", h.Get)
			api.POST("/assessments/:id/responses", h.SubmitResponse)
			api.POST("/assessments/:id/calculate", h.Calculate)
		}
	}

	return r
}
