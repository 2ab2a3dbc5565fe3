package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/team-alchemy-backend/internal/http/response"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"github.com/yungbote/team-alchemy-backend/internal/psychology/casestudy"
	"github.com/yungbote/team-alchemy-backend/internal/psychology/freudian"
	"github.com/yungbote/team-alchemy-backend/internal/psychology/mbti"
	"github.com/yungbote/team-alchemy-backend/internal/psychology/shadow"
)

type PsychologyHandler struct {
	log           *logger.Logger
	cases         *casestudy.Mapper
	shadowEnabled bool
}

func NewPsychologyHandler(log *logger.Logger, cases *casestudy.Mapper, shadowEnabled bool) *PsychologyHandler {
	return &PsychologyHandler{
		log:           log.With("handler", "PsychologyHandler"),
		cases:         cases,
		shadowEnabled: shadowEnabled,
	}
}

func invalidMBTI(raw string) error {
	codes := make([]string, len(mbti.AllTypes))
	for i, t := range mbti.AllTypes {
		codes[i] = string(t)
	}
	return fmt.Errorf("Invalid MBTI type: %s. Must be one of: %s", raw, strings.Join(codes, ", "))
}

// GET /psychology/jungian/profile/:mbti
func (h *PsychologyHandler) JungianProfile(c *gin.Context) {
	raw := c.Param("mbti")
	t, ok := mbti.ParseType(raw)
	if !ok {
		response.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, invalidMBTI(raw))
		return
	}
	details, ok := mbti.Describe(t)
	if !ok {
		response.RespondErrorf(c, http.StatusNotFound, response.CodeNotFound, "Profile not found for MBTI type: %s", raw)
		return
	}
	response.RespondOK(c, details)
}

// GET /psychology/jungian/compatibility/:t1/:t2
func (h *PsychologyHandler) JungianCompatibility(c *gin.Context) {
	var types [2]mbti.Type
	for i, name := range []string{"t1", "t2"} {
		raw := c.Param(name)
		t, ok := mbti.ParseType(raw)
		if !ok {
			response.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, invalidMBTI(raw))
			return
		}
		types[i] = t
	}
	response.RespondOK(c, mbti.AssessCompatibility(types[0], types[1]))
}

// GET /psychology/jungian/types
func (h *PsychologyHandler) JungianTypes(c *gin.Context) {
	response.RespondOK(c, gin.H{"types": mbti.Types()})
}

type defenseRequest struct {
	Behaviors       []string       `json:"behaviors" binding:"required"`
	StressResponses map[string]any `json:"stress_responses"`
}

type defenseView struct {
	freudian.DefenseProfile
	IsMaladaptive bool `json:"is_maladaptive"`
}

// POST /psychology/freudian/defense-mechanisms
func (h *PsychologyHandler) DefenseMechanisms(c *gin.Context) {
	var req defenseRequest
	if !bindJSON(c, &req) {
		return
	}
	profiles := freudian.IdentifyDefenses(req.Behaviors, req.StressResponses)
	conflict := freudian.AnalyzeConflictPatterns(profiles)
	views := make([]defenseView, len(profiles))
	for i, p := range profiles {
		views[i] = defenseView{DefenseProfile: p, IsMaladaptive: p.IsMaladaptive()}
	}
	response.RespondOK(c, gin.H{
		"defense_profiles":    views,
		"defensiveness_level": conflict.DefensivenessLevel,
		"defense_maturity":    conflict.DefenseMaturity,
		"maladaptive_count":   conflict.MaladaptiveCount,
		"primary_conflicts":   conflict.PrimaryConflicts,
		"recommendations":     conflict.Recommendations,
	})
}

// GET /psychology/freudian/mechanisms
func (h *PsychologyHandler) Mechanisms(c *gin.Context) {
	out := make([]gin.H, 0, len(freudian.AllMechanisms))
	for _, m := range freudian.AllMechanisms {
		out = append(out, gin.H{
			"name":         string(m),
			"type":         m.Name(),
			"adaptiveness": freudian.Adaptiveness(m),
			"indicators":   freudian.Indicators(m),
		})
	}
	response.RespondOK(c, gin.H{"mechanisms": out})
}

type caseSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Framework string `json:"framework"`
	CreatedAt string `json:"created_at"`
}

func summarize(cases []casestudy.Case) []caseSummary {
	out := make([]caseSummary, 0, len(cases))
	for _, cs := range cases {
		out = append(out, caseSummary{
			ID:        cs.ID,
			Title:     cs.Title,
			Summary:   cs.Summary(),
			Framework: cs.Framework,
			CreatedAt: cs.CreatedAt.Format("2006-01-02T15:04:05"),
		})
	}
	return out
}

// GET /psychology/case-studies
func (h *PsychologyHandler) CaseStudies(c *gin.Context) {
	response.RespondOK(c, summarize(h.cases.All()))
}

// GET /psychology/case-studies/frameworks
func (h *PsychologyHandler) Frameworks(c *gin.Context) {
	response.RespondOK(c, gin.H{"frameworks": h.cases.Frameworks()})
}

// GET /psychology/case-studies/:id
func (h *PsychologyHandler) CaseStudy(c *gin.Context) {
	id := c.Param("id")
	cs, ok := h.cases.Get(id)
	if !ok {
		response.RespondErrorf(c, http.StatusNotFound, response.CodeNotFound, "Case study not found: %s", id)
		return
	}
	response.RespondOK(c, casestudy.Report(cs, true))
}

type similarRequest struct {
	Profile map[string]any `json:"profile" binding:"required"`
	Limit   *int           `json:"limit" binding:"omitempty,min=1,max=20"`
}

func (r similarRequest) limit() int {
	if r.Limit == nil {
		return 5
	}
	return *r.Limit
}

// POST /psychology/case-studies/similar
func (h *PsychologyHandler) SimilarCases(c *gin.Context) {
	var req similarRequest
	if !bindJSON(c, &req) {
		return
	}
	response.RespondOK(c, summarize(h.cases.FindSimilar(req.Profile, req.limit())))
}

// POST /psychology/case-studies/recommendations
func (h *PsychologyHandler) CaseRecommendations(c *gin.Context) {
	var req similarRequest
	if !bindJSON(c, &req) {
		return
	}
	similar := h.cases.FindSimilar(req.Profile, req.limit())
	response.RespondOK(c, gin.H{
		"recommendations": h.cases.RecommendInterventions(req.Profile),
		"similar_cases":   summarize(similar),
		"lessons":         casestudy.ExtractLessons(similar),
	})
}

type shadowRequest struct {
	PsychologicalData map[string]any `json:"psychological_data"`
	Behaviors         []string       `json:"behaviors"`
	Projections       []string       `json:"projections"`
	TimePeriod        string         `json:"time_period"`
}

type shadowElementView struct {
	Element   shadow.Element    `json:"element"`
	Timeline  string            `json:"timeline"`
	Plan      shadow.Plan       `json:"integration_plan"`
	Exercises []shadow.Exercise `json:"exercises"`
}

// POST /psychology/shadow/analysis
func (h *PsychologyHandler) ShadowAnalysis(c *gin.Context) {
	if !h.shadowEnabled {
		response.RespondErrorf(c, http.StatusNotFound, response.CodeFeatureDisabled, "Shadow work analysis is disabled")
		return
	}
	var req shadowRequest
	if !bindJSON(c, &req) {
		return
	}
	period := req.TimePeriod
	if period == "" {
		period = "current"
	}
	elements := shadow.Identify(req.PsychologicalData, req.Behaviors, req.Projections)
	views := make([]shadowElementView, 0, len(elements))
	for _, e := range elements {
		views = append(views, shadowElementView{
			Element:   e,
			Timeline:  shadow.Timeline(e),
			Plan:      shadow.IntegrationPlan(e),
			Exercises: shadow.Exercises(e),
		})
	}
	h.log.Debug("Shadow analysis", "elements", len(elements))
	response.RespondOK(c, gin.H{
		"elements": views,
		"progress": shadow.Progress(elements, period),
	})
}
