package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{"Database Connected", nil, http.StatusOK, `"status":"ok"`},
		{"Database Connection Failed", assert.AnError, http.StatusServiceUnavailable, `"message":"database connection failed"`},
		{"Database Timeout", context.DeadlineExceeded, http.StatusServiceUnavailable, `"status":"unavailable"`},
		{"Database Connection Refused", errors.New("connection refused"), http.StatusServiceUnavailable, `"status":"unavailable"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := &MockDBPool{}
			mockDB.On("Ping", mock.Anything).Return(tt.pingErr)

			req := httptest.NewRequest("GET", "/readyz", nil)
			w := httptest.NewRecorder()

			HandleReadyz(mockDB).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockDB.AssertExpectations(t)
		})
	}
}

func TestHandleVersion(t *testing.T) {
	t.Setenv("VERSION", "1.2.3")

	req := httptest.NewRequest("GET", "/version", nil)
	w := httptest.NewRecorder()

	HandleVersion("pachislot-default").ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var info VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "pachislot-default", info.Machine)
	assert.NotEmpty(t, info.GoVersion)
}
