package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("KINOBILET_API_URL", "")
	t.Setenv("KINOBILET_TIMEOUT", "")
	t.Setenv("KINOBILET_LOG_LEVEL", "")

	cfg := Load()
	if cfg.BaseURL == "" {
		t.Fatal("expected a default base url")
	}
	if cfg.Timeout != 12*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Timeout)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoad_TrimsTrailingSlash(t *testing.T) {
	t.Setenv("KINOBILET_API_URL", "https://cinema.example/api/")
	t.Setenv("KINOBILET_TIMEOUT", "3s")

	cfg := Load()
	if cfg.BaseURL != "https://cinema.example/api" {
		t.Fatalf("unexpected base url: %s", cfg.BaseURL)
	}
	if cfg.Timeout != 3*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Timeout)
	}
}
