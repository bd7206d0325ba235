package logger

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "pitch-bot"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
	DefaultLogDir      = "logs"
)

// Environment String Values
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRunID       = "run_id"
	AttrKeyIdentity    = "identity"
)

// Rotating file settings
const (
	LogFileName       = "pitch-bot.log"
	LogFileMaxSizeMB  = 25
	LogFileMaxBackups = 9
	LogFileMaxAgeDays = 14
)
