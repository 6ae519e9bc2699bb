package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/reelslot/internal/domain"
)

func captureDebugLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	srv, machines, _ := newTestServer(t)
	id := uuid.New()
	machines.On("PullLever", mock.Anything, id).Return(domain.MachineView{ID: id, Phase: domain.PhaseSpinning}, nil)
	buf := captureDebugLogs(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/machines/"+id.String()+"/lever", nil)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	req.Header.Set(HeaderAuthorization, "Bearer cabinet-token")
	req.Header.Set(HeaderCookie, "session=abc123")
	req.Header.Set("User-Agent", "reel-client/1.0")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, testAPIKey)
	assert.NotContains(t, out, "cabinet-token")
	assert.NotContains(t, out, "abc123")
	assert.Contains(t, out, RedactedValue)
	assert.Contains(t, out, "reel-client/1.0")
}

func TestLoggingMiddleware_SkipsHealthChecks(t *testing.T) {
	srv, _, _ := newTestServer(t)
	buf := captureDebugLogs(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(HeaderAPIKey, testAPIKey)
		srv.Handler().ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.NotContains(t, buf.String(), LogMsgRequestStarted)
	assert.NotContains(t, buf.String(), testAPIKey)
}

func TestSanitizeHeaders(t *testing.T) {
	in := http.Header{
		"X-Api-Key":    {testAPIKey},
		"Cookie":       {"session=abc123"},
		"Content-Type": {"application/json"},
	}

	out := sanitizeHeaders(in)

	assert.Equal(t, []string{RedactedValue}, out["X-Api-Key"])
	assert.Equal(t, []string{RedactedValue}, out["Cookie"])
	assert.Equal(t, []string{"application/json"}, out["Content-Type"])
	assert.Equal(t, []string{testAPIKey}, in["X-Api-Key"], "input is not modified")
}
