package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrMissingSecret   = errors.New("JWT_SECRET is not set")
	ErrMissingMongoURI = errors.New("MONGODB_URI is not set")
)

// Config carries every process-wide setting. Handlers and middleware take it
// by injection; nothing reads the environment after Load returns.
type Config struct {
	Port           int
	MongoURI       string
	DatabaseName   string
	JWTSecret      []byte
	TokenValidity  time.Duration
	AdminEmails    []string
	Environment    string
	DevAuthBypass  bool
	AllowedOrigins []string
}

// Load reads an optional .env file, then the environment, and validates the
// result. There is deliberately no fallback signing secret: a process
// without JWT_SECRET must not start.
func Load() (*Config, error) {
	// Missing .env is fine, the variables may already be exported.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnvInt("PORT", 3000),
		MongoURI:       os.Getenv("MONGODB_URI"),
		DatabaseName:   getEnv("MONGODB_DATABASE", "collegetours"),
		JWTSecret:      []byte(os.Getenv("JWT_SECRET")),
		TokenValidity:  getEnvDuration("TOKEN_VALIDITY", 24*time.Hour),
		AdminEmails:    splitList(os.Getenv("ADMIN_EMAILS")),
		Environment:    getEnv("APP_ENV", "development"),
		DevAuthBypass:  getEnvBool("AUTH_DEV_BYPASS", false),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.JWTSecret) == 0 {
		return ErrMissingSecret
	}
	if c.MongoURI == "" {
		return ErrMissingMongoURI
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsAdmin reports whether the email is on the allow-list.
func (c *Config) IsAdmin(email string) bool {
	for _, admin := range c.AdminEmails {
		if admin == email {
			return true
		}
	}
	return false
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

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
