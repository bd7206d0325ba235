package config

import "time"

// Defaults
const (
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "pitch-bot"
	DefaultVersion          = "dev"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultLogDir           = "logs"
	DefaultAPIBaseURL       = "https://api.pitchtalk.app/v1/api"
	DefaultWebAppOrigin     = "https://webapp.pitchtalk.app"
	DefaultHTTPTimeout      = 30 * time.Second
	DefaultIdentitiesFile   = "configs/identities.yaml"
	DefaultClaimGrace       = 5 * time.Second
	DefaultMinDelay         = 5 * time.Second
	DefaultReferralSchedule = "0 0 */4 * * *"
	DefaultReferralWorkers  = 4
	DefaultStatusPort       = 8090
)

// Environment names
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "prod"
)
