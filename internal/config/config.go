// Package config loads application configuration from file, environment and
// defaults using Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/clinical-scales-server/internal/domain"
)

// Manager implements the ConfigManager interface using Viper
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/clinical-scales-server/")

	viper.SetEnvPrefix("SCALES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and environment variables suffice
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// Catalog store defaults
	viper.SetDefault("catalog.driver", "sqlite")
	viper.SetDefault("catalog.sqlite_path", "./data/catalog.db")
	viper.SetDefault("catalog.host", "localhost")
	viper.SetDefault("catalog.port", 5432)
	viper.SetDefault("catalog.database", "clinical_scales")
	viper.SetDefault("catalog.username", "postgres")
	viper.SetDefault("catalog.password", "")
	viper.SetDefault("catalog.ssl_mode", "disable")
	viper.SetDefault("catalog.max_conns", 25)
	viper.SetDefault("catalog.min_conns", 5)
	viper.SetDefault("catalog.conn_max_lifetime", "5m")
	viper.SetDefault("catalog.migrations_path", "./migrations")

	// Session store defaults
	viper.SetDefault("session.driver", "sqlite")
	viper.SetDefault("session.sqlite_path", "./data/sessions.db")

	// Language model defaults
	viper.SetDefault("llm.base_url", "https://api.anthropic.com")
	viper.SetDefault("llm.extraction_model", "claude-sonnet-4-20250514")
	viper.SetDefault("llm.synthesis_model", "claude-sonnet-4-20250514")
	viper.SetDefault("llm.max_tokens", 4096)
	viper.SetDefault("llm.timeout", "60s")
	viper.SetDefault("llm.rate_limit", 5)

	// Cache defaults
	viper.SetDefault("cache.max_entries", 512)
	viper.SetDefault("cache.redis_url", "")
	viper.SetDefault("cache.default_ttl", "15m")
	viper.SetDefault("cache.pool_size", 10)
	viper.SetDefault("cache.pool_timeout", "4s")
	viper.SetDefault("cache.max_retries", 3)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetServerConfig returns server configuration
func (m *Manager) GetServerConfig() *domain.ServerConfig {
	return &m.config.Server
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	switch config.Catalog.Driver {
	case "sqlite":
		if config.Catalog.SQLitePath == "" {
			return fmt.Errorf("catalog sqlite path is required")
		}
	case "postgres":
		if config.Catalog.Host == "" {
			return fmt.Errorf("catalog database host is required")
		}
		if config.Catalog.Database == "" {
			return fmt.Errorf("catalog database name is required")
		}
		if config.Catalog.Username == "" {
			return fmt.Errorf("catalog database username is required")
		}
	case "memory":
		// Seeded in-process catalog, nothing to validate
	default:
		return fmt.Errorf("invalid catalog driver: %s", config.Catalog.Driver)
	}

	switch config.Session.Driver {
	case "sqlite":
		if config.Session.SQLitePath == "" {
			return fmt.Errorf("session sqlite path is required")
		}
	case "postgres":
		if config.Session.DatabaseURL == "" {
			return fmt.Errorf("session database URL is required")
		}
	default:
		return fmt.Errorf("invalid session driver: %s", config.Session.Driver)
	}

	if config.LLM.APIKey == "" {
		return fmt.Errorf("language model API key is required")
	}
	if config.LLM.ExtractionModel == "" {
		return fmt.Errorf("extraction model is required")
	}
	if config.LLM.SynthesisModel == "" {
		return fmt.Errorf("synthesis model is required")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}
