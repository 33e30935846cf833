package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultHTTPAddr  = ":8080"
	defaultDSN       = "equiprent.db"
	defaultJWTTTL    = "24h"
	defaultJWTSecret = "change-me-jwt-secret"
)

type Config struct {
	HTTPAddr       string
	DatabaseURL    string
	JWTSecret      string
	JWTTTL         time.Duration
	AllowedOrigins []string
}

// Load reads configuration from the environment, picking up a .env file
// first when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		zap.L().Info("loaded .env file")
	}

	cfg := &Config{
		HTTPAddr:    envOr("HTTP_ADDR", defaultHTTPAddr),
		DatabaseURL: envOr("DATABASE_URL", defaultDSN),
		JWTSecret:   envOr("JWT_SECRET", defaultJWTSecret),
	}

	ttl, err := time.ParseDuration(envOr("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, err
	}
	cfg.JWTTTL = ttl

	cfg.AllowedOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if cfg.JWTSecret == defaultJWTSecret {
		zap.L().Warn("JWT_SECRET not set, using development default")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
