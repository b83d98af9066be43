package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

// Config holds everything the client reads from the environment.
// Precedence: explicit env var > .env file > default.
type Config struct {
	APIBaseURL    string        `env:"API_BASE_URL"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`
	RetryAttempts int           `env:"HTTP_RETRY_ATTEMPTS" envDefault:"0"`
	SessionFile   string        `env:"BILLING_SESSION_FILE"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"LOG_FORMAT" envDefault:"text"`
}

// New loads configuration from envPath (optional .env file) and the process
// environment. A missing .env file is not an error.
func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}

	if c.APIBaseURL == "" {
		return Config{}, errors.New("API_BASE_URL is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("invalid API_BASE_URL: %q", c.APIBaseURL)
	}

	if c.SessionFile == "" {
		c.SessionFile = defaultSessionFile()
	}

	return c, nil
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "billing-client", "session")
}
