package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/reelslot/internal/domain"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	srv, machines, _ := newTestServer(t)
	id := uuid.New()
	machines.On("Get", mock.Anything, id).Return(domain.MachineView{ID: id, Phase: domain.PhaseIdle}, nil).Maybe()

	tests := []struct {
		name       string
		method     string
		path       string
		key        string
		wantStatus int
		wantCache  string
	}{
		{"health check", http.MethodGet, "/healthz", "", http.StatusOK, ""},
		{"version", http.MethodGet, "/version", "", http.StatusOK, ""},
		{"machine view", http.MethodGet, "/api/v1/machines/" + id.String(), testAPIKey, http.StatusOK, HeaderValueNoStore},
		{"rejected lever pull", http.MethodPost, "/api/v1/machines/" + id.String() + "/lever", "wrong", http.StatusUnauthorized, HeaderValueNoStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
			assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
			assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
			assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
			assert.Equal(t, tt.wantCache, rec.Header().Get(HeaderCacheControl))
		})
	}
}

func TestSecurityHeadersMiddleware_HandlerCanOverrideCaching(t *testing.T) {
	// the event stream sets its own Cache-Control
	handler := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderCacheControl, "no-cache")
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events/stream", nil))

	assert.Equal(t, "no-cache", rec.Header().Get(HeaderCacheControl))
}
