// This file contains the lightweight configuration for standalone MCP
// operation. It requires no external databases and uses sensible defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// LiteConfig is a simplified configuration for running the MCP server
// standalone: seeded sqlite stores under a single data directory and a
// language model reachable with just an API key.
type LiteConfig struct {
	// Data storage
	DataDir string // Base directory for data files

	// Language model settings
	LLMBaseURL      string
	LLMAPIKey       string
	ExtractionModel string
	SynthesisModel  string
	LLMMaxTokens    int
	LLMTimeout      time.Duration
	LLMRateLimit    int

	// Cache settings
	CacheMaxItems int           // Maximum items in memory cache
	CacheTTL      time.Duration // Default cache TTL

	// Transport settings
	Transport string // Transport type: stdio, http
	HTTPPort  int    // HTTP port (if transport is http)

	// Logging
	LogLevel  string // Log level: debug, info, warn, error
	LogFormat string // Log format: json, text
}

// DefaultLiteConfig returns a configuration with sensible defaults.
func DefaultLiteConfig() *LiteConfig {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".clinical-scales")

	return &LiteConfig{
		DataDir:         dataDir,
		LLMBaseURL:      "https://api.anthropic.com",
		ExtractionModel: "claude-sonnet-4-20250514",
		SynthesisModel:  "claude-sonnet-4-20250514",
		LLMMaxTokens:    4096,
		LLMTimeout:      60 * time.Second,
		LLMRateLimit:    5,
		CacheMaxItems:   512,
		CacheTTL:        15 * time.Minute,
		Transport:       "stdio",
		HTTPPort:        8080,
		LogLevel:        "info",
		LogFormat:       "json",
	}
}

// LoadLiteConfig loads configuration from environment variables.
// Falls back to defaults if not set.
func LoadLiteConfig() *LiteConfig {
	cfg := DefaultLiteConfig()

	if v := os.Getenv("SCALES_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	// Language model settings
	if v := os.Getenv("SCALES_LLM_BASE_URL"); v != "" {
		cfg.LLMBaseURL = v
	}
	cfg.LLMAPIKey = os.Getenv("SCALES_LLM_API_KEY")
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if v := os.Getenv("SCALES_EXTRACTION_MODEL"); v != "" {
		cfg.ExtractionModel = v
	}
	if v := os.Getenv("SCALES_SYNTHESIS_MODEL"); v != "" {
		cfg.SynthesisModel = v
	}
	if v := os.Getenv("SCALES_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LLMMaxTokens = n
		}
	}
	if v := os.Getenv("SCALES_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.LLMTimeout = d
		}
	}

	// Cache settings
	if v := os.Getenv("SCALES_CACHE_MAX_ITEMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheMaxItems = n
		}
	}
	if v := os.Getenv("SCALES_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.CacheTTL = d
		}
	}

	// Transport
	if v := os.Getenv("SCALES_TRANSPORT"); v != "" {
		cfg.Transport = v
	}
	if v := os.Getenv("SCALES_HTTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPPort = n
		}
	}

	// Logging
	if v := os.Getenv("SCALES_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SCALES_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	return cfg
}

// CatalogDBPath returns the path of the sqlite catalog database
func (c *LiteConfig) CatalogDBPath() string {
	return filepath.Join(c.DataDir, "catalog.db")
}

// SessionDBPath returns the path of the sqlite session database
func (c *LiteConfig) SessionDBPath() string {
	return filepath.Join(c.DataDir, "sessions.db")
}

// EnsureDataDir creates the data directory if it does not exist
func (c *LiteConfig) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}
