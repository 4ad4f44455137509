package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	DataPath        string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Display scale applied to the precipitation series on the grouped
	// plot. Cosmetic only; the loaded data is never modified.
	PrecipDisplayScale float64

	// Maximum number of cached render results (one per selection).
	RenderCacheSize int
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	precipScale, err := parsePrecipScale()
	if err != nil {
		return nil, err
	}

	cacheSize, err := parseCacheSize()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataPath:           envOrDefault("DATA_PATH", "data/open-meteo-subset.csv"),
		HTTPAddr:           envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           envOrDefault("LOG_LEVEL", "info"),
		LogFormat:          envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		PrecipDisplayScale: precipScale,
		RenderCacheSize:    cacheSize,
	}

	if cfg.DataPath == "" {
		return nil, errors.New("DATA_PATH is required")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q (want json or text)", cfg.LogFormat)
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}
	return d, nil
}

func parsePrecipScale() (float64, error) {
	s := os.Getenv("PRECIP_DISPLAY_SCALE")
	if s == "" {
		return 10, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid PRECIP_DISPLAY_SCALE %q", s)
	}
	return v, nil
}

func parseCacheSize() (int, error) {
	s := os.Getenv("RENDER_CACHE_SIZE")
	if s == "" {
		return 256, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid RENDER_CACHE_SIZE %q", s)
	}
	return n, nil
}
