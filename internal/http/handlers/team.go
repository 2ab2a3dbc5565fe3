package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/team-alchemy-backend/internal/http/response"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"github.com/yungbote/team-alchemy-backend/internal/services"
)

type TeamHandler struct {
	log         *logger.Logger
	teamService services.TeamService
}

func NewTeamHandler(log *logger.Logger, teamService services.TeamService) *TeamHandler {
	return &TeamHandler{log: log.With("handler", "TeamHandler"), teamService: teamService}
}

type createTeamRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// POST /teams/
func (h *TeamHandler) Create(c *gin.Context) {
	var req createTeamRequest
	if !bindJSON(c, &req) {
		return
	}
	team, err := h.teamService.Create(c.Request.Context(), services.CreateTeamInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondCreated(c, team)
}

// GET /teams/:id
func (h *TeamHandler) Get(c *gin.Context) {
	teamID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	team, err := h.teamService.Get(c.Request.Context(), teamID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, team)
}

// POST /teams/:id/members/:user_id
func (h *TeamHandler) AddMember(c *gin.Context) {
	teamID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	if err := h.teamService.AddMember(c.Request.Context(), teamID, userID); err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{
		"message": "User added to team successfully",
		"team_id": teamID,
		"user_id": userID,
	})
}

// GET /teams/?skip=&limit=
func (h *TeamHandler) List(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	teams, err := h.teamService.List(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, teams)
}
