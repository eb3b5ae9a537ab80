package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr           = ":8080"
	defaultDatabaseURL    = "hotel.db"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultTokenTTL       = "24h"
	defaultFormSessionTTL = "30m"
)

type Config struct {
	AppEnv         string
	Addr           string
	DatabaseURL    string
	JWTSecret      string
	TokenTTL       time.Duration
	FormSessionTTL time.Duration
}

// Load reads configuration from the environment, after loading .env if one
// is present (missing .env is not an error).
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env")
	}

	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = strings.TrimSpace(getEnv("ADDR", defaultAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.TokenTTL, err = parseDurationEnv("TOKEN_TTL", defaultTokenTTL)
	if err != nil {
		return nil, err
	}

	cfg.FormSessionTTL, err = parseDurationEnv("FORM_SESSION_TTL", defaultFormSessionTTL)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be > 0")
	}
	if cfg.FormSessionTTL <= 0 {
		return fmt.Errorf("FORM_SESSION_TTL must be > 0")
	}
	if cfg.AppEnv != "dev" && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set outside dev")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := strings.TrimSpace(getEnv(key, fallback))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return d, nil
}
