package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL = "http://localhost:8080/api"
	defaultTimeout = 12 * time.Second
)

type Config struct {
	BaseURL  string
	Timeout  time.Duration
	LogLevel string
}

// Load reads configuration from the environment, with an optional .env
// file in the working directory.
func Load() Config {
	_ = godotenv.Load()

	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("KINOBILET_API_URL")), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout, _ := time.ParseDuration(os.Getenv("KINOBILET_TIMEOUT"))
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	level := strings.TrimSpace(os.Getenv("KINOBILET_LOG_LEVEL"))
	if level == "" {
		level = "info"
	}

	return Config{
		BaseURL:  baseURL,
		Timeout:  timeout,
		LogLevel: level,
	}
}
