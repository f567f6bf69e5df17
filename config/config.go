package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const devSecret = "dev-secret-change-in-production"

type Config struct {
	Port        string
	Environment string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisURL string
	CartTTL  time.Duration

	AdminJWTSecret string
	SessionTTL     time.Duration

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

// Load reads configuration from the environment, falling back to sane
// development defaults. It returns an error when a production deployment
// is missing the session signing secret.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", ""),
		PostgresDB:       getEnv("POSTGRES_DB", "storefront"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		CartTTL:  time.Hour * 24 * 7,

		AdminJWTSecret: os.Getenv("ADMIN_JWT_SECRET"),
		SessionTTL:     time.Hour * 24 * 7,

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getEnv("SMTP_PORT", "587"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: getEnv("SMTP_FROM", "5J Kitchens <noreply@5jkitchens.com>"),
	}

	if cfg.AdminJWTSecret == "" {
		if cfg.IsProduction() {
			return Config{}, fmt.Errorf("ADMIN_JWT_SECRET must be set in production")
		}
		cfg.AdminJWTSecret = devSecret
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// SMTPConfigured reports whether enough SMTP settings are present to
// actually deliver mail. Without them, sending degrades to a logged no-op.
func (c Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
