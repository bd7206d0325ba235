package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Remote API errors
	ErrMsgAuthFailed  = "authentication failed"
	ErrMsgFetchFailed = "failed to get farming data"
	ErrMsgClaimFailed = "claim failed"

	// Token errors
	ErrMsgEmptyAccessToken = "empty access token"

	// Identity errors
	ErrMsgInvalidQueryID    = "invalid query id"
	ErrMsgDuplicateIdentity = "duplicate identity"
	ErrMsgNoIdentities      = "no identities configured"

	// Farming errors
	ErrMsgNoFarmingState = "no farming state"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Remote API errors
	ErrAuthFailed  = errors.New(ErrMsgAuthFailed)
	ErrFetchFailed = errors.New(ErrMsgFetchFailed)
	ErrClaimFailed = errors.New(ErrMsgClaimFailed)

	ErrEmptyAccessToken = errors.New(ErrMsgEmptyAccessToken)

	// Identity errors
	ErrInvalidQueryID    = errors.New(ErrMsgInvalidQueryID)
	ErrDuplicateIdentity = errors.New(ErrMsgDuplicateIdentity)
	ErrNoIdentities      = errors.New(ErrMsgNoIdentities)

	ErrNoFarmingState = errors.New(ErrMsgNoFarmingState)
)
