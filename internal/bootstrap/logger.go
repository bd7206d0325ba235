package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/PitchBot_Go/internal/config"
	"github.com/osse101/PitchBot_Go/internal/logger"
)

// SetupLogger initializes slog from the application config. When LogDir is
// set output also goes to a rotating file; the returned closer flushes it.
func SetupLogger(cfg *config.Config) io.Closer {
	closer := logger.InitLogger(loggerConfig(cfg))

	slog.Info(LogMsgStartingPitchBot,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"api_base_url", cfg.APIBaseURL,
		"identities_file", cfg.IdentitiesFile,
		"referral_schedule", cfg.ReferralSchedule,
		"status_port", cfg.StatusPort,
		"proxy", cfg.ProxyURL != "")

	return closer
}

// loggerConfig starts from the development or production logger defaults and
// applies the values set in cfg.
func loggerConfig(cfg *config.Config) logger.Config {
	base := logger.ProductionConfig()
	if cfg.IsDevelopment() {
		base = logger.DevelopmentConfig()
	}
	return base.Apply(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		Dir:         cfg.LogDir,
	})
}
