package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PitchBot_Go/internal/farming"
)

type stubProvider struct {
	alive int
}

func (s stubProvider) Alive() int { return s.alive }
func (s stubProvider) Snapshot() []farming.Status {
	return []farming.Status{{Identity: "alice", State: farming.StateWaiting}}
}

func TestRouter_Routes(t *testing.T) {
	router := NewRouter(stubProvider{alive: 1})

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"healthz", "/healthz", http.StatusOK, `"status":"ok"`},
		{"readyz", "/readyz", http.StatusOK, `"status":"ok"`},
		{"workers", "/api/v1/workers", http.StatusOK, `"identity":"alice"`},
		{"metrics", "/metrics", http.StatusOK, "go_goroutines"},
		{"unknown", "/nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRouter_ReadyzWithoutWorkers(t *testing.T) {
	router := NewRouter(stubProvider{alive: 0})

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, w.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, w.Header().Get(HeaderReferrerPolicy))
}

func TestLoggingMiddleware_CapturesStatus(t *testing.T) {
	var seen int
	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw, ok := w.(*responseWriter)
		require.True(t, ok)
		w.WriteHeader(http.StatusTeapot)
		seen = rw.statusCode
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workers", nil)
	req.Header.Set(HeaderAuthorization, "Bearer secret")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, http.StatusTeapot, seen)
}

func TestIsQuietPath(t *testing.T) {
	assert.True(t, isQuietPath("/healthz"))
	assert.True(t, isQuietPath("/metrics"))
	assert.False(t, isQuietPath("/api/v1/workers"))
}
