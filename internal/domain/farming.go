package domain

import "time"

// AuthData is the bearer credential returned by the auth endpoint
type AuthData struct {
	AccessToken string `json:"accessToken"`
}

// FarmingState is a snapshot of an account's farming cycle
type FarmingState struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Coins     int64      `json:"coins"`
}

// RunningAt reports whether the cycle is still running at now
func (s *FarmingState) RunningAt(now time.Time) bool {
	return s != nil && s.EndTime != nil && s.EndTime.After(now)
}
