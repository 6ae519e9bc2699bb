package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	detector := NewSuspiciousActivityDetector(DefaultDetectorConfig())
	middleware := AuthMiddleware(apiKey, nil, detector)

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, "/api/v1/machines", http.StatusOK},
		{"Invalid API Key", "wrong-key", "/api/v1/machines", http.StatusUnauthorized},
		{"Missing API Key", "", "/api/v1/machines", http.StatusUnauthorized},
		{"Public Path - Healthz", "", "/healthz", http.StatusOK},
		{"Public Path - Metrics", "", "/metrics", http.StatusOK},
		{"Public Path - Version", "", "/version", http.StatusOK},
		{"Public Path - Swagger", "", "/swagger/index.html", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set("X-API-Key", tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	detector := NewSuspiciousActivityDetector(DefaultDetectorConfig())
	handler := AuthMiddleware("key", nil, detector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/api/v1/machines", nil)
		req.RemoteAddr = "10.0.0.9:5555"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.0.0.9"])
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct", "1.2.3.4:80", "", nil, "1.2.3.4"},
		{"untrusted forward ignored", "1.2.3.4:80", "9.9.9.9", nil, "1.2.3.4"},
		{"trusted forward", "10.0.0.1:80", "9.9.9.9, 8.8.8.8", []string{"10.0.0.1"}, "8.8.8.8"},
		{"unparseable remote", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}
