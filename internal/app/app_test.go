package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.DatabaseURL = fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", uuid.NewString())
	cfg.RedisURL = ""
	cfg.APIHost = "127.0.0.1"
	return cfg
}

func TestNewWithConfigRejectsInvalid(t *testing.T) {
	cfg := testConfig()
	cfg.APIPrefix = "v1"
	_, err := NewWithConfig(context.Background(), cfg, logger.Nop())
	require.Error(t, err)
}

func TestNewWithConfigRejectsUnknownDatabase(t *testing.T) {
	cfg := testConfig()
	cfg.DatabaseURL = "mysql://root@localhost/alchemy"
	_, err := NewWithConfig(context.Background(), cfg, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init database")
}

func TestAppServeAndShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	a, err := NewWithConfig(context.Background(), testConfig(), logger.Nop())
	require.NoError(t, err)
	defer a.Close()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx, ln) }()

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}
	defer transport.CloseIdleConnections()

	url := "http://" + ln.Addr().String() + "/health"
	var body map[string]any
	require.Eventually(t, func() bool {
		resp, err := client.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && json.Unmarshal(raw, &body) == nil
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "healthy", body["status"])

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop after cancel")
	}
	a.Close()
	a.Close()
}
