package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("BOOKRADAR")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		fmt.Println("Warning: No database path configured")
	}

	if viper.GetString("open_library.base_url") == "" {
		return fmt.Errorf("open_library.base_url must not be empty")
	}

	// Auto-correct out-of-range aggregation settings
	if viper.GetInt("search.page_size") <= 0 {
		viper.Set("search.page_size", 100)
	}
	if viper.GetInt("search.max_pages") <= 0 || viper.GetInt("search.max_pages") > 100 {
		viper.Set("search.max_pages", 100)
	}
	if viper.GetInt("search.max_concurrent_pages") <= 0 {
		viper.Set("search.max_concurrent_pages", 10)
	}
	if viper.GetDuration("history.dedup_window") <= 0 {
		viper.Set("history.dedup_window", time.Minute)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.OpenLibrary.BaseURL == "" {
		return fmt.Errorf("open_library.base_url must not be empty")
	}

	if c.Search.PageSize <= 0 {
		c.Search.PageSize = 100
	}
	if c.Search.MaxPages <= 0 || c.Search.MaxPages > 100 {
		c.Search.MaxPages = 100
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/bookradar.db")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.log_queries", false)
	viper.SetDefault("database.verbose", false)

	// OpenLibrary defaults
	viper.SetDefault("open_library.base_url", "https://openlibrary.org")
	viper.SetDefault("open_library.covers_url", "https://covers.openlibrary.org")
	viper.SetDefault("open_library.timeout", 10*time.Second)
	viper.SetDefault("open_library.user_agent", "BookRadarAPI/1.0")

	// Search aggregation defaults
	viper.SetDefault("search.page_size", 100)
	viper.SetDefault("search.max_pages", 100)
	viper.SetDefault("search.max_concurrent_pages", 10)
	viper.SetDefault("search.request_timeout", 60*time.Second)

	// History defaults
	viper.SetDefault("history.dedup_window", time.Minute)
	viper.SetDefault("history.default_limit", 50)
	viper.SetDefault("history.max_limit", 500)

	// Recommendations defaults
	viper.SetDefault("recommendations.default_limit", 20)
	viper.SetDefault("recommendations.recent_view_count", 20)
}
