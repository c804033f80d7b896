package app

import (
	"os"
	"strconv"
	"time"

	"github.com/sumansi/storefront/internal/notify"
	"github.com/sumansi/storefront/pkg/jwtx"
)

type Config struct {
	// JWTSecret and JWTRefreshSecret sign the access and refresh tokens
	// respectively. Both are required; startup fails without them.
	JWTSecret        string
	JWTRefreshSecret string

	Issuer        string        // Issuer claim for minted tokens (default: storefront)
	RefreshExpiry time.Duration // Refresh token lifetime (default: 7 days)

	DatabaseFile string // Path to SQLite database file (default: ./storefront.db)

	// ResetURLBase is the client page reset links point at. The emailed
	// token is appended as the last path segment.
	ResetURLBase string

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 5000)

	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	Mail notify.Config
}

func LoadConfig() Config {
	return Config{
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTRefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),

		Issuer:        getEnvOrDefault("JWT_ISSUER", "storefront"),
		RefreshExpiry: getEnvDurationOrDefault("JWT_REFRESH_EXPIRY", jwtx.DefaultRefreshTokenTTL),

		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "storefront.db"),
		ResetURLBase: getEnvOrDefault("RESET_URL_BASE", "http://localhost:3000/reset-password"),

		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 5000),

		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		Mail: notify.Config{
			Provider: getEnvOrDefault("MAIL_PROVIDER", "log"),
			From:     os.Getenv("MAIL_FROM"),
			SMTP: notify.SMTPConfig{
				Host:     os.Getenv("SMTP_HOST"),
				Port:     getEnvOrDefault("SMTP_PORT", "587"),
				Username: os.Getenv("SMTP_USERNAME"),
				Password: os.Getenv("SMTP_PASSWORD"),
			},
			Mailgun: notify.MailgunConfig{
				Domain: os.Getenv("MAILGUN_DOMAIN"),
				APIKey: os.Getenv("MAILGUN_API_KEY"),
			},
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "168h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer days, matching the old "7d"-style knob
	if days, err := strconv.Atoi(value); err == nil {
		return time.Duration(days) * 24 * time.Hour
	}

	return defaultValue
}
