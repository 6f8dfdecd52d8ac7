package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration, derived from environment
// variables once at startup.
type Config struct {
	Port      string
	AppEnv    string
	PublicDir string

	// Storage. MongoURI selects the remote key/value backend; DatabaseURL
	// selects Postgres; with neither set, records live in JSON files
	// under DataDir.
	DataDir     string
	KVPrefix    string
	MongoURI    string
	MongoDB     string
	DatabaseURL string

	// Collection caps. Oldest entries are dropped past these sizes.
	MaxRequests int
	MaxReviews  int

	// Outbound mail. Notifications are skipped unless SMTPHost, SMTPUser
	// and SMTPPass are all present.
	EmailTo    string
	EmailFrom  string
	SMTPHost   string
	SMTPPort   int
	SMTPSecure bool
	SMTPUser   string
	SMTPPass   string

	TestEmailKey string
	AdminKey     string

	FrontendURL string
	SentryDSN   string
}

// Load reads configuration from the environment. A .env file is loaded
// first if present; real environment variables take precedence.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on environment variables")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "3000"),
		AppEnv:       getEnv("APP_ENV", "development"),
		PublicDir:    getEnv("PUBLIC_DIR", "./public"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		KVPrefix:     getEnv("KV_PREFIX", "prod"),
		MongoURI:     getEnv("MONGODB_URI", ""),
		MongoDB:      getEnv("MONGODB_DATABASE", "valiant"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		MaxRequests:  getEnvInt("MAX_REQUESTS", 5000),
		MaxReviews:   getEnvInt("MAX_REVIEWS", 1000),
		EmailTo:      getEnv("REQUESTS_TO", "vm@valiantdoor.com"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPass:     getEnv("SMTP_PASS", ""),
		TestEmailKey: getEnv("TEST_EMAIL_KEY", ""),
		AdminKey:     getEnv("ADMIN_KEY", ""),
		FrontendURL:  getEnv("FRONTEND_URL", ""),
		SentryDSN:    getEnv("SENTRY_DSN", ""),
	}
	cfg.EmailFrom = getEnv("REQUESTS_FROM", cfg.EmailTo)
	cfg.SMTPSecure, _ = strconv.ParseBool(getEnv("SMTP_SECURE", "false"))

	return cfg
}

// MailConfigured reports whether enough SMTP settings are present to
// attempt delivery.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value, "default", defaultValue)
	}
	return defaultValue
}
