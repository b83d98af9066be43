package config

import (
	"testing"
	"time"
)

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://billing.example.com/api")
	t.Setenv("HTTP_TIMEOUT", "30s")
	t.Setenv("HTTP_RETRY_ATTEMPTS", "2")
	t.Setenv("BILLING_SESSION_FILE", "/tmp/test-session")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := New("does-not-exist.env")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if cfg.APIBaseURL != "https://billing.example.com/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.RetryAttempts != 2 {
		t.Errorf("RetryAttempts = %d", cfg.RetryAttempts)
	}
	if cfg.SessionFile != "/tmp/test-session" {
		t.Errorf("SessionFile = %q", cfg.SessionFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestNewDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:8080")

	cfg, err := New("does-not-exist.env")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("default HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.RetryAttempts != 0 {
		t.Errorf("default RetryAttempts = %d", cfg.RetryAttempts)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("default LogFormat = %q", cfg.LogFormat)
	}
	if cfg.SessionFile == "" {
		t.Error("SessionFile default not filled in")
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	if _, err := New("does-not-exist.env"); err == nil {
		t.Fatal("missing API_BASE_URL accepted")
	}
}

func TestNewRejectsMalformedBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "not a url")
	if _, err := New("does-not-exist.env"); err == nil {
		t.Fatal("malformed API_BASE_URL accepted")
	}
}
