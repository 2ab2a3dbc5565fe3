package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	types "github.com/yungbote/team-alchemy-backend/internal/domain"
	"github.com/yungbote/team-alchemy-backend/internal/platform/ctxutil"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"github.com/yungbote/team-alchemy-backend/internal/services"
)

func identityRouter(t *testing.T) (*gin.Engine, services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth := services.NewAuthService(logger.Nop(), nil, "middleware-secret", time.Hour)
	r := gin.New()
	r.Use(AttachTraceContext(), NewAuthMiddleware(logger.Nop(), auth).Identify())
	r.GET("/whoami", func(c *gin.Context) {
		id := ctxutil.GetIdentity(c.Request.Context())
		if id == nil {
			c.JSON(http.StatusOK, gin.H{"user_id": 0})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id.UserID, "email": id.Email})
	})
	return r, auth
}

func TestIdentifyWithoutToken(t *testing.T) {
	r, _ := identityRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":0}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.NotEmpty(t, rec.Header().Get("X-Trace-Id"))
}

func TestIdentifyValidToken(t *testing.T) {
	r, auth := identityRouter(t)
	token, err := auth.IssueToken(&types.User{ID: 7, Email: "seven@example.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":7,"email":"seven@example.com"}`, rec.Body.String())
}

func TestIdentifyMalformedToken(t *testing.T) {
	r, _ := identityRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"unauthorized"`)
}

func TestAttachTraceContextKeepsIncomingIDs(t *testing.T) {
	r, _ := identityRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Request-Id", "req-1")
	req.Header.Set("X-Trace-Id", "trace-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "req-1", rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "trace-1", rec.Header().Get("X-Trace-Id"))
}

func TestAttachTraceContextReplacesUnsafeIDs(t *testing.T) {
	r, _ := identityRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Request-Id", "req 1\tinjected")
	req.Header.Set("X-Trace-Id", strings.Repeat("t", 200))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.NotContains(t, rec.Header().Get("X-Request-Id"), "injected")
	assert.Len(t, rec.Header().Get("X-Trace-Id"), 36)
}

func TestRequestLoggerRecordsResourceFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	r := gin.New()
	r.Use(AttachTraceContext(), RequestLogger(log))
	r.POST("/api/v1/teams/:id/members/:user_id", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/api/v1/assessments/:id", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.JSON(http.StatusNotFound, gin.H{"detail": "missing"})
	})
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/api/v1/teams/7/members/3", nil),
		httptest.NewRequest(http.MethodGet, "/api/v1/assessments/42", nil),
		httptest.NewRequest(http.MethodGet, "/health", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	entries := logs.All()
	require.Len(t, entries, 3)

	member := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "7", member["team_id"])
	assert.Equal(t, "3", member["member_id"])
	assert.Equal(t, "/api/v1/teams/:id/members/:user_id", member["path"])
	assert.NotEmpty(t, member["request_id"])

	missing := entries[1].ContextMap()
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "42", missing["assessment_id"])
	assert.Contains(t, missing["errors"], assert.AnError.Error())

	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
}
