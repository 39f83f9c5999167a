package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	CommerceEndpoint string
	StorefrontToken  string
	ContentEndpoint  string
	ContentToken     string
	SessionFile      string
	HTTPTimeout      time.Duration
	RequestsPerSec   float64
	RequestBurst     int
	CatalogPageSize  int
	LogLevel         string
	LogFormat        string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		CommerceEndpoint: getEnv("COMMERCE_ENDPOINT", ""),
		StorefrontToken:  strings.TrimSpace(os.Getenv("STOREFRONT_ACCESS_TOKEN")),
		ContentEndpoint:  getEnv("CONTENT_ENDPOINT", ""),
		ContentToken:     strings.TrimSpace(os.Getenv("CONTENT_ACCESS_TOKEN")),
		SessionFile:      getEnv("SESSION_FILE", defaultSessionFile()),
		HTTPTimeout:      getDuration("HTTP_TIMEOUT", 15*time.Second),
		RequestsPerSec:   getFloat("REQUESTS_PER_SEC", 4),
		RequestBurst:     getInt("REQUEST_BURST", 8),
		CatalogPageSize:  getInt("CATALOG_PAGE_SIZE", 20),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "pretty"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.CommerceEndpoint) == "" {
		return fmt.Errorf("COMMERCE_ENDPOINT is required")
	}

	if c.StorefrontToken == "" {
		return fmt.Errorf("STOREFRONT_ACCESS_TOKEN is required")
	}

	if strings.TrimSpace(c.SessionFile) == "" {
		return fmt.Errorf("SESSION_FILE cannot be empty")
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}

	if c.RequestsPerSec <= 0 {
		return fmt.Errorf("REQUESTS_PER_SEC must be positive")
	}

	if c.CatalogPageSize <= 0 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be positive")
	}

	if c.LogFormat != "pretty" && c.LogFormat != "text" {
		return fmt.Errorf("LOG_FORMAT must be pretty or text")
	}

	return nil
}

func defaultSessionFile() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "atelier-storefront", "session.json")
	}

	return "./session.json"
}

func getEnv(key string, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	return v
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}

func getFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}

	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return v
}
