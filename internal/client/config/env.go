package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, loading a .env file
// first when one exists. A missing .env is not an error; the process
// environment is used as-is.
//
// Recognized variables:
//
//	TAPCOIN_SERVER_URL       base URL of the backend server
//	TAPCOIN_REQUEST_TIMEOUT  request timeout in seconds
//	TAPCOIN_POLL_INTERVAL    balance poll interval in seconds
//	TAPCOIN_DATABASE_PATH    path to the local sqlite database
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("TAPCOIN_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("TAPCOIN_REQUEST_TIMEOUT"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}
	if v := os.Getenv("TAPCOIN_POLL_INTERVAL"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			cfg.PollInterval = time.Duration(seconds) * time.Second
		}
	}
	if v := os.Getenv("TAPCOIN_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
}
