package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/team-alchemy-backend/internal/http/response"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"github.com/yungbote/team-alchemy-backend/internal/services"
)

type AnalysisHandler struct {
	log                    *logger.Logger
	analysis               services.AnalysisService
	recommendationsEnabled bool
}

func NewAnalysisHandler(log *logger.Logger, analysis services.AnalysisService, recommendationsEnabled bool) *AnalysisHandler {
	return &AnalysisHandler{
		log:                    log.With("handler", "AnalysisHandler"),
		analysis:               analysis,
		recommendationsEnabled: recommendationsEnabled,
	}
}

// POST /analysis/team/:id
func (h *AnalysisHandler) AnalyzeTeam(c *gin.Context) {
	teamID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req services.TeamAnalysisRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.analysis.AnalyzeTeam(c.Request.Context(), teamID, req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, res)
}

// POST /analysis/team/:id/stored
// Analyzes the team from its members' stored profiles.
func (h *AnalysisHandler) AnalyzeStoredTeam(c *gin.Context) {
	teamID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	res, err := h.analysis.AnalyzeStoredTeam(c.Request.Context(), teamID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, res)
}

// GET /analysis/individual/:user_id?mbti_type=&behaviors=a,b
func (h *AnalysisHandler) AnalyzeIndividual(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	var behaviors []string
	for _, b := range strings.Split(c.Query("behaviors"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			behaviors = append(behaviors, b)
		}
	}
	res, err := h.analysis.AnalyzeIndividual(c.Request.Context(), userID, c.Query("mbti_type"), behaviors)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, res)
}

type compatibilityRequest struct {
	UserIDs   []uint   `json:"user_ids" binding:"required"`
	MBTITypes []string `json:"mbti_types" binding:"required"`
}

// POST /analysis/compatibility
func (h *AnalysisHandler) Compatibility(c *gin.Context) {
	var req compatibilityRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.analysis.Compatibility(c.Request.Context(), req.UserIDs, req.MBTITypes)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, m)
}

// GET /analysis/team/:id/latest
func (h *AnalysisHandler) LatestAnalysis(c *gin.Context) {
	teamID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	row, err := h.analysis.LatestAnalysis(c.Request.Context(), teamID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

type recommendationQuery struct {
	Max int `form:"max,default=5" binding:"min=1,max=50"`
}

// GET /analysis/team/:id/recommendations?max=
func (h *AnalysisHandler) Recommendations(c *gin.Context) {
	if !h.recommendationsEnabled {
		response.RespondErrorf(c, http.StatusNotFound, response.CodeFeatureDisabled, "Recommendations are disabled")
		return
	}
	teamID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var q recommendationQuery
	if !bindQuery(c, &q) {
		return
	}
	report, err := h.analysis.Recommend(c.Request.Context(), teamID, q.Max)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, report)
}
