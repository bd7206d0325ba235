package notify

// MaxMessageLength is Discord's message content limit
const MaxMessageLength = 2000

const (
	MsgFarmingClaimed  = "🌾 **%s** claimed farming. Balance: %s"
	MsgReferralClaimed = "🤝 **%s** claimed %d referral reward(s). Balance: %s"
	MsgWorkerFailed    = "⚠️ **%s** farming stopped: %v"
)

const LogMsgNotifyFailed = "Notification delivery failed"
