// Package config loads pathfinder settings from the environment (optionally
// seeded from a .env file) and lets command-line flags override them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds every runtime knob of the CLI.
type Config struct {
	Search  SearchConfig
	Results ResultsConfig
	Logging LoggingConfig
}

// SearchConfig tunes the query runner.
type SearchConfig struct {
	TopK     int
	Workers  int
	CacheTTL time.Duration
}

// ResultsConfig controls where and how reports are written.
type ResultsConfig struct {
	Dir string
	BOM bool
}

// LoggingConfig selects the log level and an optional rotating log file.
type LoggingConfig struct {
	Level    string
	FilePath string
}

// LoadDotEnv loads the given .env files (default ".env") into the process
// environment. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return nil
}

// Load reads the configuration from the environment, falling back to defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Search: SearchConfig{
			TopK:     getIntEnv("PATHFINDER_TOP_K", 3),
			Workers:  getIntEnv("PATHFINDER_WORKERS", 1),
			CacheTTL: getDurationEnv("PATHFINDER_CACHE_TTL", 10*time.Minute),
		},
		Results: ResultsConfig{
			Dir: getEnv("PATHFINDER_RESULTS_DIR", "./results/"),
			BOM: getBoolEnv("PATHFINDER_RESULTS_BOM", false),
		},
		Logging: LoggingConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			FilePath: getEnv("LOG_FILE", ""),
		},
	}

	return cfg, cfg.Validate()
}

// Validate rejects settings the runner cannot honour.
func (c *Config) Validate() error {
	switch {
	case c.Search.TopK < 1:
		return fmt.Errorf("%w: top-k must be ≥ 1, got %d", ErrInvalid, c.Search.TopK)
	case c.Search.Workers < 1:
		return fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrInvalid, c.Search.Workers)
	case c.Search.CacheTTL < 0:
		return fmt.Errorf("%w: cache ttl must be ≥ 0, got %s", ErrInvalid, c.Search.CacheTTL)
	case c.Results.Dir == "":
		return fmt.Errorf("%w: results dir is empty", ErrInvalid)
	}

	return nil
}

// BindFlags registers flags on fs whose defaults are the current values,
// so parsed flags override the environment.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Results.Dir, "results-dir", c.Results.Dir, "directory the report is written to")
	fs.BoolVar(&c.Results.BOM, "bom", c.Results.BOM, "prefix the report with a UTF-8 byte order mark")
	fs.IntVar(&c.Search.TopK, "k", c.Search.TopK, "number of fastest routes per request")
	fs.IntVar(&c.Search.Workers, "workers", c.Search.Workers, "number of requests solved concurrently")
	fs.DurationVar(&c.Search.CacheTTL, "cache-ttl", c.Search.CacheTTL, "lifetime of memoised answers (0 disables the cache)")
	fs.StringVar(&c.Logging.Level, "log-level", c.Logging.Level, "log level (debug, info, warn, error)")
	fs.StringVar(&c.Logging.FilePath, "log-file", c.Logging.FilePath, "optional rotating log file")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
