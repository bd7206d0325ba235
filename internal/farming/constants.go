package farming

// Log messages
const (
	LogMsgStartFarming     = "================ Start Farming Pitch ================"
	LogMsgEndFarming       = "================ End Farming Pitch ================"
	LogMsgAuthFailed       = "Fail to authenticate"
	LogMsgFetchFailed      = "Fail to get farmings data"
	LogMsgClaimFailed      = "Fail to claim"
	LogMsgWaiting          = "Waiting for farming to mature"
	LogMsgClaimed          = "Farming claimed"
	LogMsgWorkerStopped    = "Farming worker stopped"
	LogMsgSupervisorStart  = "Starting farming workers"
	LogMsgSupervisorDone   = "All farming workers finished"
	LogMsgShutdown         = "Shutting down farming supervisor"
	LogMsgShutdownComplete = "Farming supervisor shutdown complete"
	LogMsgShutdownTimeout  = "Farming supervisor shutdown timeout"
)

// Failure kinds used as metric labels
const (
	FailureAuth    = "auth"
	FailureFetch   = "fetch"
	FailureClaim   = "claim"
	FailureUnknown = "unknown"
)
