package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Session tokens
	JWTSecret            string
	SessionExpiryDuration time.Duration
	JWTIssuer            string

	// Base URL embedded into verification links
	AppBaseURL string

	// SMTP dispatch for verification mail
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// Verification token hygiene
	TokenPurgeCron   string
	TokenPurgeMaxAge time.Duration

	// Bootstrap super admin (seeded when no super admin exists)
	BootstrapAdminUsername string
	BootstrapAdminPassword string
	BootstrapAdminName     string
	BootstrapAdminEmail    string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("SESSION_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "weekly-log-app")
	viper.SetDefault("APP_BASE_URL", "http://localhost:8080")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "")
	viper.SetDefault("TOKEN_PURGE_CRON", "0 3 * * *")
	viper.SetDefault("TOKEN_PURGE_MAX_AGE", "2160h")
	viper.SetDefault("BOOTSTRAP_ADMIN_USERNAME", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_NAME", "Super Admin")
	viper.SetDefault("BOOTSTRAP_ADMIN_EMAIL", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	sessionExpiryStr := viper.GetString("SESSION_EXPIRY_DURATION")
	sessionExpiry, err := time.ParseDuration(sessionExpiryStr)
	if err != nil {
		sessionExpiry = 12 * time.Hour
		log.Printf("Warning: Invalid value for SESSION_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", sessionExpiryStr, sessionExpiry)
	}
	cfg.SessionExpiryDuration = sessionExpiry

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.AppBaseURL = viper.GetString("APP_BASE_URL")

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetString("SMTP_PORT")
	cfg.SMTPUsername = viper.GetString("SMTP_USERNAME")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.SMTPFrom = viper.GetString("SMTP_FROM")
	if cfg.SMTPHost == "" {
		log.Println("Warning: SMTP_HOST not set. Verification emails will be logged, not sent.")
	}

	cfg.TokenPurgeCron = viper.GetString("TOKEN_PURGE_CRON")
	purgeMaxAgeStr := viper.GetString("TOKEN_PURGE_MAX_AGE")
	purgeMaxAge, err := time.ParseDuration(purgeMaxAgeStr)
	if err != nil {
		purgeMaxAge = 90 * 24 * time.Hour
		log.Printf("Warning: Invalid value for TOKEN_PURGE_MAX_AGE ('%s'). Defaulting to %s.\n", purgeMaxAgeStr, purgeMaxAge)
	}
	cfg.TokenPurgeMaxAge = purgeMaxAge

	cfg.BootstrapAdminUsername = viper.GetString("BOOTSTRAP_ADMIN_USERNAME")
	cfg.BootstrapAdminPassword = viper.GetString("BOOTSTRAP_ADMIN_PASSWORD")
	cfg.BootstrapAdminName = viper.GetString("BOOTSTRAP_ADMIN_NAME")
	cfg.BootstrapAdminEmail = viper.GetString("BOOTSTRAP_ADMIN_EMAIL")

	return cfg, nil
}
