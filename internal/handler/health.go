package handler

import (
	"net/http"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// LivenessChecker reports how many farming workers are still running
type LivenessChecker interface {
	Alive() int
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports ready while at least one farming worker is running
func HandleReadyz(checker LivenessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker.Alive() == 0 {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: MsgNoWorkersAlive,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}
