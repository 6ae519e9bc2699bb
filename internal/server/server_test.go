package server

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/sse"
	"github.com/osse101/reelslot/mocks"
)

const testAPIKey = "test-key"

type stubPool struct{ err error }

func (p stubPool) Ping(context.Context) error { return p.err }
func (p stubPool) Close()                     {}

func newTestServer(t *testing.T) (*Server, *mocks.MockMachineService, *mocks.MockEventLogService) {
	t.Helper()
	machines := mocks.NewMockMachineService(t)
	history := mocks.NewMockEventLogService(t)
	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	srv := NewServer(Options{
		Stream:      hub,
		Port:        0,
		APIKey:      testAPIKey,
		DBPool:      stubPool{},
		Machines:    machines,
		EventLog:    history,
		MachineName: "Test Cabinet",
	})
	return srv, machines, history
}

func TestServer_PublicRoutes(t *testing.T) {
	srv, _, _ := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz", "/version"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestServer_APIRequiresKey(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/machines", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_MachineRoute(t *testing.T) {
	srv, machines, _ := newTestServer(t)
	id := uuid.New()
	machines.On("PullLever", mock.Anything, id).Return(domain.MachineView{ID: id, Phase: domain.PhaseSpinning}, nil)

	req := httptest.NewRequest("POST", "/api/v1/machines/"+id.String()+"/lever", nil)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"phase":"spinning"`)
}

func TestServer_HistoryRoute(t *testing.T) {
	srv, _, history := newTestServer(t)
	id := uuid.New()
	history.On("History", mock.Anything, id.String(), mock.Anything).Return(nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/machines/"+id.String()+"/events", nil)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestLoggingMiddleware_TickIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/v1/machines/x/tick", nil))
	assert.Empty(t, buf.String())

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/v1/machines/x/lever", nil))
	assert.True(t, strings.Contains(buf.String(), LogMsgRequestCompleted))
}

func TestServer_EventStreamFlushesThroughMiddleware(t *testing.T) {
	srv, _, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/v1/events/stream", nil)
	require.NoError(t, err)
	req.Header.Set(HeaderAPIKey, testAPIKey)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "id: "))
}
