package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	StaticDir string // built SPA directory served with an index.html fallback

	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	SMTPFromName  string

	// MessageRecipient is where forwarded contact messages are delivered.
	// Empty means the send-message endpoint answers 500 until configured.
	MessageRecipient string

	OutscraperAPIKey string
	GooglePlaceID    string
	ReviewsLimit     int

	ReviewsCachePath    string
	ReviewsCacheBackend string // "file" | "s3"

	BusinessInfoPath string
	ServicesPath     string

	MessageLogPath string

	VerificationBackend string // "memory" | "dynamo"
	VerificationTable   string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	S3BucketName   string

	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3001"),
		AppEnv:  getEnv("APP_ENV", "development"),

		StaticDir: getEnv("STATIC_DIR", "./dist"),

		SMTPHost:      getEnv("SMTP_HOST", "localhost"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USER", ""),
		SMTPPassword:  getEnv("SMTP_PASS", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", getEnv("SMTP_USER", "noreply@example.com")),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "The Pampered Pooch"),

		MessageRecipient: getEnv("MESSAGE_RECIPIENT", ""),

		OutscraperAPIKey: getEnv("OUTSCRAPER_API_KEY", ""),
		GooglePlaceID:    getEnv("GOOGLE_PLACE_ID", "ChIJs2DI-0wlsWoRcIhv9lHWxXg"),
		ReviewsLimit:     getEnvInt("REVIEWS_LIMIT", 500),

		ReviewsCachePath:    getEnv("REVIEWS_CACHE_PATH", "./reviews-cache.json"),
		ReviewsCacheBackend: getEnv("REVIEWS_CACHE_BACKEND", "file"),

		BusinessInfoPath: getEnv("BUSINESS_INFO_PATH", "./BUSINESS_INFO.json"),
		ServicesPath:     getEnv("SERVICES_PATH", "./SERVICES.json"),

		MessageLogPath: getEnv("MESSAGE_LOG_PATH", "./contact-messages.jsonl"),

		VerificationBackend: getEnv("VERIFICATION_BACKEND", "memory"),
		VerificationTable:   getEnv("DYNAMO_TABLE_VERIFICATIONS", "contact_verifications"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		S3BucketName:   getEnv("S3_BUCKET_NAME", "pooch-site-data"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
