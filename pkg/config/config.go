package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
}

// Load reads environment variables, optionally from a .env file if present.
//
// JWT_SECRET has no default on purpose: a process without a resolved signing
// secret must fail at startup rather than silently issue tokens signed with a
// baked-in development value.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTIssuer:     getEnv("JWT_ISSUER", "my-mvp-startup-backend"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 24*60),
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is not set")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
