package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"ENVIRONMENT", "SERVICE_NAME", "VERSION", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR",
	"API_BASE_URL", "WEBAPP_ORIGIN", "HTTP_TIMEOUT", "PROXY_URL", "IDENTITIES_FILE",
	"CLAIM_GRACE", "MIN_DELAY", "REFERRAL_SCHEDULE", "REFERRAL_ON_STARTUP",
	"REFERRAL_WORKERS", "STATUS_PORT", "DISCORD_TOKEN", "DISCORD_CHANNEL_ID",
}

// clearEnvVars blanks every variable Load reads; t.Setenv restores them afterwards
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
	// empty strings are "set", so put the defaults-relevant ones back to their default values
	t.Setenv("ENVIRONMENT", DefaultEnvironment)
	t.Setenv("SERVICE_NAME", DefaultServiceName)
	t.Setenv("LOG_LEVEL", DefaultLogLevel)
	t.Setenv("LOG_FORMAT", DefaultLogFormat)
	t.Setenv("API_BASE_URL", DefaultAPIBaseURL)
	t.Setenv("WEBAPP_ORIGIN", DefaultWebAppOrigin)
	t.Setenv("IDENTITIES_FILE", DefaultIdentitiesFile)
	t.Setenv("REFERRAL_SCHEDULE", DefaultReferralSchedule)
	t.Setenv("REFERRAL_ON_STARTUP", "true")
	t.Setenv("REFERRAL_WORKERS", "4")
	t.Setenv("STATUS_PORT", "8090")
}

func TestLoad(t *testing.T) {
	t.Run("loads defaults", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
		assert.Equal(t, DefaultWebAppOrigin, cfg.WebAppOrigin)
		assert.Equal(t, 5*time.Second, cfg.ClaimGrace)
		assert.Equal(t, 5*time.Second, cfg.MinDelay)
		assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
		assert.Equal(t, DefaultReferralSchedule, cfg.ReferralSchedule)
		assert.True(t, cfg.ReferralOnStartup)
		assert.Equal(t, 8090, cfg.StatusPort)
		assert.False(t, cfg.NotificationsEnabled())
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("loads custom values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_BASE_URL", "http://localhost:9000/v1/api/")
		t.Setenv("CLAIM_GRACE", "10s")
		t.Setenv("MIN_DELAY", "7")
		t.Setenv("REFERRAL_SCHEDULE", "@every 1h")
		t.Setenv("REFERRAL_ON_STARTUP", "false")
		t.Setenv("STATUS_PORT", "0")
		t.Setenv("LOG_FORMAT", "JSON")
		t.Setenv("DISCORD_TOKEN", "token")
		t.Setenv("DISCORD_CHANNEL_ID", "123")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/v1/api", cfg.APIBaseURL, "trailing slash trimmed")
		assert.Equal(t, 10*time.Second, cfg.ClaimGrace)
		assert.Equal(t, 7*time.Second, cfg.MinDelay)
		assert.False(t, cfg.ReferralOnStartup)
		assert.Equal(t, 0, cfg.StatusPort)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.NotificationsEnabled())
	})

	t.Run("rejects invalid STATUS_PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("STATUS_PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "STATUS_PORT")
	})

	t.Run("rejects invalid schedule", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("REFERRAL_SCHEDULE", "every four hours")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "REFERRAL_SCHEDULE")
	})

	t.Run("rejects discord token without channel", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("DISCORD_TOKEN", "token")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("rejects bad base url", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_BASE_URL", "not a url")

		_, err := Load()

		assert.Error(t, err)
	})
}

func TestParseSchedule(t *testing.T) {
	sched, err := ParseSchedule(DefaultReferralSchedule)
	require.NoError(t, err)

	from := time.Date(2024, 7, 1, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 7, 1, 4, 0, 0, 0, time.UTC), sched.Next(from))

	_, err = ParseSchedule("0 0 0/4 ? * *")
	assert.NoError(t, err, "quartz-style question mark is accepted for day fields")
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Run("returns default when unset", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "")
		assert.Equal(t, time.Minute, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
	})

	t.Run("parses go duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "1500ms")
		assert.Equal(t, 1500*time.Millisecond, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
	})

	t.Run("parses plain seconds", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "30")
		assert.Equal(t, 30*time.Second, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
	})

	t.Run("returns default for garbage", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "soon")
		assert.Equal(t, time.Minute, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
	})
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL_VAR", "false")
	assert.False(t, getEnvAsBool("TEST_BOOL_VAR", true))

	t.Setenv("TEST_BOOL_VAR", "maybe")
	assert.True(t, getEnvAsBool("TEST_BOOL_VAR", true))
}
