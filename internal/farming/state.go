package farming

import (
	"errors"
	"time"

	"github.com/osse101/PitchBot_Go/internal/domain"
)

// State is a farming worker's position in its loop
type State string

const (
	StateStart         State = "START"
	StateAuthenticated State = "AUTHENTICATED"
	StateWaiting       State = "WAITING"
	StateClaimed       State = "CLAIMED"
	StateFailed        State = "FAILED"
	StateStopped       State = "STOPPED"
)

// Terminal reports whether the worker has left its loop
func (s State) Terminal() bool {
	return s == StateFailed || s == StateStopped
}

// Status is the observable state of one identity's worker
type Status struct {
	Identity    string    `json:"identity"`
	State       State     `json:"state"`
	Claims      int       `json:"claims"`
	Balance     int64     `json:"balance"`
	NextClaimAt time.Time `json:"next_claim_at,omitempty"`
	LastError   string    `json:"last_error,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WaitDuration returns how long to sleep before claiming. A cycle that is
// still running waits until its end plus grace; anything else waits minDelay.
func WaitDuration(state *domain.FarmingState, now time.Time, grace, minDelay time.Duration) time.Duration {
	if !state.RunningAt(now) {
		return minDelay
	}
	return state.EndTime.Sub(now) + grace
}

// failureKind maps an error onto the error taxonomy
func failureKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuthFailed):
		return FailureAuth
	case errors.Is(err, domain.ErrFetchFailed):
		return FailureFetch
	case errors.Is(err, domain.ErrClaimFailed):
		return FailureClaim
	default:
		return FailureUnknown
	}
}
