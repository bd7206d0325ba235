package handler

import (
	"net/http"

	"github.com/osse101/PitchBot_Go/internal/farming"
)

// StatusProvider exposes the farming supervisor's status table
type StatusProvider interface {
	LivenessChecker
	Snapshot() []farming.Status
}

// WorkersResponse lists every farming worker's status
type WorkersResponse struct {
	Alive   int              `json:"alive"`
	Total   int              `json:"total"`
	Workers []farming.Status `json:"workers"`
}

// HandleGetWorkers returns the farming worker status table
func HandleGetWorkers(provider StatusProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workers := provider.Snapshot()
		respondJSON(w, http.StatusOK, WorkersResponse{
			Alive:   provider.Alive(),
			Total:   len(workers),
			Workers: workers,
		})
	}
}
