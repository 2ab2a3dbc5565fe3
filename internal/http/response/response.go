package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes carried in ErrorBody.Code.
const (
	CodeBadRequest      = "bad_request"
	CodeConflict        = "conflict"
	CodeNotFound        = "not_found"
	CodeUnauthorized    = "unauthorized"
	CodeValidation      = "validation_error"
	CodeFeatureDisabled = "feature_disabled"
	CodeInternal        = "internal_error"
)

// ErrorBody is the error envelope every endpoint returns.
type ErrorBody struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

// RespondError aborts with err's message as the detail.
func RespondError(c *gin.Context, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorBody{Detail: msg, Code: code})
}

func RespondErrorf(c *gin.Context, status int, code, format string, args ...any) {
	c.AbortWithStatusJSON(status, ErrorBody{Detail: fmt.Sprintf(format, args...), Code: code})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
