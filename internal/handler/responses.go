package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Health status values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

const MsgNoWorkersAlive = "no farming workers running"

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already sent, log only
		slog.Error("Failed to encode JSON response", "error", err)
	}
}
