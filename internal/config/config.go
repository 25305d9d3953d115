package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime settings, read from the environment.
// A .env file is honored when present so local runs need no exported vars.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	CORSOrigin  string
}

const defaultPort = "8080"

// Load reads the configuration. DATABASE_URL and JWT_SECRET are required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigin:  os.Getenv("CORS_ORIGIN"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
