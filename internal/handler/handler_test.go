package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PitchBot_Go/internal/farming"
)

type fakeProvider struct {
	alive    int
	statuses []farming.Status
}

func (f fakeProvider) Alive() int                 { return f.alive }
func (f fakeProvider) Snapshot() []farming.Status { return f.statuses }

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("workers running", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(fakeProvider{alive: 2}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("all workers stopped", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(fakeProvider{alive: 0}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), MsgNoWorkersAlive)
	})
}

func TestHandleGetWorkers(t *testing.T) {
	provider := fakeProvider{
		alive: 1,
		statuses: []farming.Status{
			{Identity: "alice", State: farming.StateWaiting, Balance: 10},
			{Identity: "bob", State: farming.StateFailed, LastError: "authentication failed"},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workers", nil)
	w := httptest.NewRecorder()

	HandleGetWorkers(provider).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp WorkersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Alive)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, farming.StateFailed, resp.Workers[1].State)
	assert.Equal(t, "authentication failed", resp.Workers[1].LastError)
}
