package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yungbote/team-alchemy-backend/internal/http/response"
	pkgerrors "github.com/yungbote/team-alchemy-backend/internal/pkg/errors"
	"github.com/yungbote/team-alchemy-backend/internal/platform/apierr"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
)

// respondServiceError maps a service error onto the error envelope.
// Pre-classified apierr values win over sentinel kinds.
func respondServiceError(c *gin.Context, log *logger.Logger, err error) {
	if ae, ok := apierr.As(err); ok {
		response.RespondError(c, ae.Status, ae.Code, errors.New(pkgerrors.Detail(ae)))
		return
	}
	detail := errors.New(pkgerrors.Detail(err))
	switch {
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, response.CodeNotFound, detail)
	case errors.Is(err, pkgerrors.ErrUnauthorized):
		response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthorized, detail)
	case errors.Is(err, pkgerrors.ErrConflict):
		response.RespondError(c, http.StatusBadRequest, response.CodeConflict, detail)
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		response.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, detail)
	default:
		if log != nil {
			log.Error("Unhandled service error", "path", c.FullPath(), "error", err)
		}
		response.RespondErrorf(c, http.StatusInternalServerError, response.CodeInternal, "Internal server error")
	}
}

func respondValidation(c *gin.Context, err error) {
	response.RespondErrorf(c, http.StatusUnprocessableEntity, response.CodeValidation, "%s", validationDetail(err))
}

func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fieldMessage(fe))
	}
	return strings.Join(parts, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: field required", fe.Field())
	case "min", "gte":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s: must be greater than or equal to %s", fe.Field(), fe.Param())
	case "max", "lte":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s: must be less than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed %q validation", fe.Field(), fe.Tag())
	}
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondValidation(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		respondValidation(c, err)
		return false
	}
	return true
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		respondValidation(c, fmt.Errorf("%s: must be a positive integer, got %q", name, raw))
		return 0, false
	}
	return uint(v), true
}

// pageQuery is shared by every list endpoint.
type pageQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=1,max=100"`
}
