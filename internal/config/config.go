package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the binaries read from the environment.
type Config struct {
	Port          string
	DatabaseURL   string
	AllowedOrigin string
	LogLevel      string
}

// Load reads configuration from the process environment, after loading a
// .env file from the working directory when one exists.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "3000")
	v.SetDefault("ALLOWED_ORIGIN", "http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := Config{
		Port:          v.GetString("PORT"),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		AllowedOrigin: v.GetString("ALLOWED_ORIGIN"),
		LogLevel:      v.GetString("LOG_LEVEL"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("environment variable DATABASE_URL not found")
	}
	return cfg, nil
}
