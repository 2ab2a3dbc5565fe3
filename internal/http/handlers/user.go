package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/team-alchemy-backend/internal/http/response"
	"github.com/yungbote/team-alchemy-backend/internal/platform/ctxutil"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"github.com/yungbote/team-alchemy-backend/internal/services"
)

type UserHandler struct {
	log            *logger.Logger
	userService    services.UserService
	profileService services.ProfileService
}

func NewUserHandler(log *logger.Logger, userService services.UserService, profileService services.ProfileService) *UserHandler {
	return &UserHandler{
		log:            log.With("handler", "UserHandler"),
		userService:    userService,
		profileService: profileService,
	}
}

type createUserRequest struct {
	Email    string  `json:"email" binding:"required,email,max=255"`
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Password *string `json:"password" binding:"omitempty,min=8,max=72"`
}

// POST /users/
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.userService.Create(c.Request.Context(), services.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondCreated(c, u)
}

// GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	u, err := h.userService.Get(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, u)
}

// GET /users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	id := ctxutil.GetIdentity(c.Request.Context())
	if id == nil {
		response.RespondErrorf(c, http.StatusUnauthorized, response.CodeUnauthorized, "Not authenticated")
		return
	}
	u, err := h.userService.Get(c.Request.Context(), id.UserID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, u)
}

// GET /users/?skip=&limit=
func (h *UserHandler) List(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	users, err := h.userService.List(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, users)
}

type updateProfileRequest struct {
	Archetype   *string            `json:"archetype" binding:"omitempty,max=50"`
	JungianType *string            `json:"jungian_type" binding:"omitempty,len=4"`
	TraitScores map[string]float64 `json:"trait_scores"`
}

// PUT /users/:id/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req updateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.profileService.Upsert(c.Request.Context(), userID, services.ProfileUpdate{
		Archetype:   req.Archetype,
		JungianType: req.JungianType,
		TraitScores: req.TraitScores,
	})
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, p)
}
