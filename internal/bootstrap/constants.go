package bootstrap

import "time"

const (
	// ShutdownTimeout bounds the whole graceful shutdown sequence
	ShutdownTimeout = 15 * time.Second

	// PoolQueueSize is the referral pool's queue depth
	PoolQueueSize = 4

	// ReferralJobName labels the scheduled referral job in logs
	ReferralJobName = "referral"
)

// Log messages for startup
const (
	LogMsgStartingPitchBot    = "Starting PitchBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgIdentitiesLoaded    = "Identities loaded"
	LogMsgNotificationsOn     = "Discord notifications enabled"
	LogMsgStatusServerFailed  = "Status server failed"
	LogMsgStartupReferral     = "Running referral job on startup"
	LogMsgStartupReferralFail = "Failed to enqueue startup referral job"
)

// Log messages for shutdown
const (
	LogMsgShuttingDown         = "Shutting down..."
	LogMsgServerForcedShutdown = "Status server forced to shutdown"
	LogMsgSchedulerStopFailed  = "Scheduler shutdown failed"
	LogMsgSupervisorStopFailed = "Farming workers did not stop in time"
	LogMsgStopped              = "PitchBot stopped"
)

// Error messages
const (
	ErrMsgLoadIdentities = "failed to load identities"
	ErrMsgBuildClient    = "failed to build API client"
	ErrMsgBuildNotifier  = "failed to create Discord notifier"
	ErrMsgSchedule       = "failed to schedule referral job"
)
