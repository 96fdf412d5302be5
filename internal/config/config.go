package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration.
// Populated from environment variables in Load().
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Mail     MailConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string

	// AdminUserID is the single user id granted access to the
	// admin-gated post management routes.
	AdminUserID int64
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type SessionConfig struct {
	CookieName string
	TTLHours   int
	Secure     bool
}

// MailConfig carries the outbound SMTP relay settings for the contact
// form. Account and Password have no defaults: the contact relay is
// useless without them, so Validate() treats absence as fatal.
type MailConfig struct {
	Host     string
	Port     string
	Account  string // sending account, also the envelope sender
	Password string
	To       string // fixed feedback recipient
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Daham Blog"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			AdminUserID: int64(getEnvInt("ADMIN_USER_ID", 1)),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "blog"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE", "blog_session"),
			TTLHours:   getEnvInt("SESSION_TTL_HOURS", 168), // 7 days
			Secure:     getEnv("APP_ENV", "development") == "production",
		},
		Mail: MailConfig{
			Host:     getEnv("SMTP_HOST", "smtp.zoho.com"),
			Port:     getEnv("SMTP_PORT", "587"),
			Account:  os.Getenv("EMAIL"),
			Password: os.Getenv("PASSWORD"),
			To:       getEnv("FEEDBACK_TO", "daham31con@gmail.com"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the config is usable. Mail credentials are
// required in every environment: the contact route sends synchronously
// and a missing credential must fail at startup, not mid-request.
func (c *Config) Validate() error {
	if c.Mail.Account == "" {
		return fmt.Errorf("EMAIL must be set (outbound mail account)")
	}
	if c.Mail.Password == "" {
		return fmt.Errorf("PASSWORD must be set (outbound mail credential)")
	}
	if c.App.AdminUserID <= 0 {
		return fmt.Errorf("ADMIN_USER_ID must be a positive user id")
	}
	if c.App.Environment == "production" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD must be set in production")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
