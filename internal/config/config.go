package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds application configuration
type Config struct {
	Port           string
	DBConn         string
	LogLevel       string
	JWTSecret      string
	TokenTTL       time.Duration
	AppEnv         string
	CookieName     string
	DigestSchedule string

	// SMTP settings are optional; mail notifications are disabled when SMTPHost is empty.
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBConn:         os.Getenv("DB_CONN"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AppEnv:         getEnv("APP_ENV", "development"),
		CookieName:     getEnv("COOKIE_NAME", "token"),
		DigestSchedule: getEnv("DIGEST_SCHEDULE", "@weekly"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   os.Getenv("SMTP_USERNAME"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
		SenderEmail:    os.Getenv("SENDER_EMAIL"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = ttl

	return cfg, nil
}

// Production reports whether the service runs with production settings.
// Controls the Secure flag on the session cookie.
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
