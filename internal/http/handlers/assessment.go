package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/team-alchemy-backend/internal/http/response"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"github.com/yungbote/team-alchemy-backend/internal/services"
)

type AssessmentHandler struct {
	log               *logger.Logger
	assessmentService services.AssessmentService
}

func NewAssessmentHandler(log *logger.Logger, assessmentService services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{log: log.With("handler", "AssessmentHandler"), assessmentService: assessmentService}
}

type questionRequest struct {
	Text         string   `json:"text"`
	QuestionType string   `json:"question_type" binding:"required,oneof=multiple_choice scale text ranking"`
	Options      []string `json:"options"`
	Category     string   `json:"category"`
	Weight       *float64 `json:"weight"`
}

type createAssessmentRequest struct {
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Questions   []questionRequest `json:"questions" binding:"dive"`
}

// POST /assessments/
// Content rules (title, question count, options, weights) are checked by
// the service so every violation is reported at once.
func (h *AssessmentHandler) Create(c *gin.Context) {
	var req createAssessmentRequest
	if !bindJSON(c, &req) {
		return
	}
	in := services.CreateAssessmentInput{Title: req.Title, Description: req.Description}
	for _, q := range req.Questions {
		in.Questions = append(in.Questions, services.QuestionInput{
			Text:         q.Text,
			QuestionType: q.QuestionType,
			Options:      q.Options,
			Category:     q.Category,
			Weight:       q.Weight,
		})
	}
	a, err := h.assessmentService.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondCreated(c, a)
}

// GET /assessments/:id
func (h *AssessmentHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	a, err := h.assessmentService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, a)
}

type responseRequest struct {
	QuestionID uint     `json:"question_id" binding:"required"`
	Answer     any      `json:"answer"`
	Confidence *float64 `json:"confidence"`
}

// POST /assessments/:id/responses
func (h *AssessmentHandler) SubmitResponse(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req responseRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.assessmentService.SubmitResponse(c.Request.Context(), id, services.ResponseInput{
		QuestionID: req.QuestionID,
		Answer:     req.Answer,
		Confidence: req.Confidence,
	})
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondCreated(c, r)
}

// POST /assessments/:id/calculate
func (h *AssessmentHandler) Calculate(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	res, err := h.assessmentService.Calculate(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, res)
}

// GET /assessments/?skip=&limit=
func (h *AssessmentHandler) List(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.assessmentService.List(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, list)
}
