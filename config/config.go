package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	ClientURL string
	DevMode   bool
	LogLevel  slog.Level

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	DynamoDBTable      string
	AccountsTable      string

	// Empty disables visit event publishing
	RedisEndpoint string
}

// Load reads an optional .env file (existing environment wins) and then the
// process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	devMode, err := parseBool("DEV_MODE", false)
	if err != nil {
		return nil, err
	}

	logLevel, err := parseLevel(getString("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:               getString("PORT", "3000"),
		ClientURL:          getString("CLIENT_URL", "http://localhost:5173"),
		DevMode:            devMode,
		LogLevel:           logLevel,
		AWSRegion:          getString("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		DynamoDBTable:      getString("DYNAMODB_TABLE", "HerbalGarden"),
		AccountsTable:      getString("DYNAMODB_ACCOUNTS_TABLE", "HerbalGardenAccounts"),
		RedisEndpoint:      os.Getenv("REDIS_ENDPOINT"),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q", cfg.Port)
	}
	if cfg.DevMode && cfg.DynamoDBEndpoint == "" {
		return nil, errors.New("DYNAMODB_ENDPOINT is required in dev mode")
	}

	return cfg, nil
}

func getString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func parseBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", key, v)
	}
	return b, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
}
