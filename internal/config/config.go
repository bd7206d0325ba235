package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config holds the application configuration
type Config struct {
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string // empty disables file logging

	// PitchTalk API
	APIBaseURL   string        `validate:"required,url"`
	WebAppOrigin string        `validate:"required,url"`
	HTTPTimeout  time.Duration `validate:"gt=0"`
	ProxyURL     string        `validate:"omitempty,url"` // used by identities without their own proxy

	// Identities
	IdentitiesFile string `validate:"required"`

	// Farming
	ClaimGrace time.Duration `validate:"gte=0"`
	MinDelay   time.Duration `validate:"gt=0"`

	// Referral job
	ReferralSchedule  string `validate:"required"`
	ReferralOnStartup bool
	ReferralWorkers   int `validate:"gte=1"`

	// Status server, 0 disables it
	StatusPort int `validate:"gte=0,lte=65535"`

	// Discord notifications, both required to enable
	DiscordToken     string
	DiscordChannelID string `validate:"required_with=DiscordToken"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:       getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:       getEnv("SERVICE_NAME", DefaultServiceName),
		Version:           getEnv("VERSION", DefaultVersion),
		LogLevel:          getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:            getEnv("LOG_DIR", DefaultLogDir),
		APIBaseURL:        strings.TrimRight(getEnv("API_BASE_URL", DefaultAPIBaseURL), "/"),
		WebAppOrigin:      getEnv("WEBAPP_ORIGIN", DefaultWebAppOrigin),
		HTTPTimeout:       getEnvAsDuration("HTTP_TIMEOUT", DefaultHTTPTimeout),
		ProxyURL:          getEnv("PROXY_URL", ""),
		IdentitiesFile:    getEnv("IDENTITIES_FILE", DefaultIdentitiesFile),
		ClaimGrace:        getEnvAsDuration("CLAIM_GRACE", DefaultClaimGrace),
		MinDelay:          getEnvAsDuration("MIN_DELAY", DefaultMinDelay),
		ReferralSchedule:  getEnv("REFERRAL_SCHEDULE", DefaultReferralSchedule),
		ReferralOnStartup: getEnvAsBool("REFERRAL_ON_STARTUP", true),
		ReferralWorkers:   getEnvAsInt("REFERRAL_WORKERS", DefaultReferralWorkers),
		DiscordToken:      getEnv("DISCORD_TOKEN", ""),
		DiscordChannelID:  getEnv("DISCORD_CHANNEL_ID", ""),
	}

	portStr := getEnv("STATUS_PORT", strconv.Itoa(DefaultStatusPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STATUS_PORT value: %w", err)
	}
	cfg.StatusPort = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints and the referral cron expression
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := ParseSchedule(c.ReferralSchedule); err != nil {
		return fmt.Errorf("invalid REFERRAL_SCHEDULE %q: %w", c.ReferralSchedule, err)
	}
	return nil
}

// ParseSchedule parses a cron expression with a leading seconds field.
// Descriptors such as "@every 4h" are accepted too.
func ParseSchedule(spec string) (cron.Schedule, error) {
	return cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	).Parse(spec)
}

// IsDevelopment reports whether source locations should be logged
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDev || c.Environment == EnvironmentDevelopment
}

// NotificationsEnabled reports whether a Discord notifier should be built
func (c *Config) NotificationsEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvAsDuration accepts Go durations ("5s") or plain seconds ("5")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
