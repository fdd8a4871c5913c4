package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration. It is loaded once at startup and
// never mutated afterwards, so it is safe to share across concurrent
// invocations without synchronization.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Lead storage
	TableName string // DynamoDB table for lead records (required)
	Store     string // "dynamodb" or "memory"

	// Email
	EmailProvider  string // "ses", "sendgrid" or "stub"
	FromEmail      string // verified sender address (required)
	FromName       string
	OwnerEmails    []string // owner notification recipients; defaults to FromEmail
	SendGridAPIKey string

	// CORS
	AllowedOrigins []string // exact origins, or "*" to allow any; empty allows none

	// Retention
	TTLDays int // record time-to-live in days; 0 disables expiry

	// AWS
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string

	// Abuse protection on the public intake route (cmd/api only)
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// Load reads configuration from environment variables. Missing required
// values are an error so a misconfigured process never becomes ready.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		TableName: strings.TrimSpace(getEnv("TABLE_NAME", "")),
		Store:     strings.ToLower(strings.TrimSpace(getEnv("LEAD_STORE", "dynamodb"))),

		EmailProvider:  strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "ses"))),
		FromEmail:      strings.TrimSpace(getEnv("SES_FROM", "")),
		FromName:       getEnv("SES_FROM_NAME", ""),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		TTLDays: getEnvAsInt("TTL_DAYS", 0),

		AWSRegion:           getEnv("AWS_REGION", "eu-central-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),

		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 2),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 10),
	}

	if cfg.TableName == "" {
		return nil, errors.New("config: TABLE_NAME is required")
	}
	if cfg.FromEmail == "" {
		return nil, errors.New("config: SES_FROM is required")
	}

	cfg.OwnerEmails = splitList(getEnv("SES_OWNER_TO", cfg.FromEmail))
	cfg.AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", ""))

	return cfg, nil
}

// splitList splits a comma-separated value, trimming whitespace and
// discarding empty entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
