package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/team-alchemy-backend/internal/platform/ctxutil"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
)

// Route params logged under a resource-specific key, picked by route prefix.
var resourceParams = []struct {
	prefix, param, field string
}{
	{"/teams/", "id", "team_id"},
	{"/analysis/team/", "id", "team_id"},
	{"/assessments/", "id", "assessment_id"},
	{"/users/", "id", "user_id_param"},
	{"/analysis/individual/", "user_id", "user_id_param"},
	{"/teams/", "user_id", "member_id"},
	{"/archetypes/", "type", "archetype"},
	{"/psychology/jungian/profile/", "mbti", "mbti_type"},
	{"/psychology/case-studies/", "id", "case_study_id"},
}

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		status := c.Writer.Status()
		route := c.FullPath()
		path := route
		if path == "" {
			path = c.Request.URL.Path
		}
		ctx := c.Request.Context()

		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"bytes", c.Writer.Size(),
		}
		fields = append(fields, resourceFields(c, route)...)
		if td := ctxutil.GetTraceData(ctx); td != nil && td.RequestID != "" {
			fields = append(fields, "request_id", td.RequestID)
			if td.TraceID != "" && td.TraceID != td.RequestID {
				fields = append(fields, "trace_id", td.TraceID)
			}
		}
		if id := ctxutil.GetIdentity(ctx); id != nil && id.UserID != 0 {
			fields = append(fields, "user_id", id.UserID)
		}
		if errs := c.Errors.ByType(gin.ErrorTypeAny).String(); errs != "" {
			fields = append(fields, "errors", strings.TrimSpace(errs))
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		case strings.HasSuffix(route, "/health") || route == "/":
			log.Debug("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}

func resourceFields(c *gin.Context, route string) []interface{} {
	var out []interface{}
	seen := map[string]bool{}
	for _, rp := range resourceParams {
		if seen[rp.param] || !strings.Contains(route, rp.prefix) {
			continue
		}
		if v := c.Param(rp.param); v != "" {
			out = append(out, rp.field, v)
			seen[rp.param] = true
		}
	}
	return out
}
