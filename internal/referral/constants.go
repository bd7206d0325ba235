package referral

// Log messages
const (
	LogMsgStart          = "================ Start Claim Ref Pitch ================"
	LogMsgEnd            = "================ End Claim Ref Pitch ================"
	LogMsgTokenFailed    = "Fail to get token"
	LogMsgCountFailed    = "Fail to count ref"
	LogMsgClaimFailed    = "Fail to claim ref"
	LogMsgNothingToClaim = "No referral rewards to claim"
	LogMsgClaimed        = "Claim ref"
	LogMsgSkipped        = "Referral pass still running, skipping"
)
