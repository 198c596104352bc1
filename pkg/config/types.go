package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment     string                `mapstructure:"environment"`
	Server          ServerConfig          `mapstructure:"server"`
	Database        DatabaseConfig        `mapstructure:"database"`
	OpenLibrary     OpenLibraryConfig     `mapstructure:"open_library"`
	Search          SearchConfig          `mapstructure:"search"`
	History         HistoryConfig         `mapstructure:"history"`
	Recommendations RecommendationsConfig `mapstructure:"recommendations"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	LogQueries            bool          `mapstructure:"log_queries"`
	Verbose               bool          `mapstructure:"verbose"`
}

// OpenLibraryConfig contains OpenLibrary API settings
type OpenLibraryConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	CoversURL string        `mapstructure:"covers_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// SearchConfig contains result aggregation settings
type SearchConfig struct {
	PageSize           int           `mapstructure:"page_size"`
	MaxPages           int           `mapstructure:"max_pages"`
	MaxConcurrentPages int           `mapstructure:"max_concurrent_pages"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
}

// HistoryConfig contains search/view history settings
type HistoryConfig struct {
	DedupWindow  time.Duration `mapstructure:"dedup_window"`
	DefaultLimit int           `mapstructure:"default_limit"`
	MaxLimit     int           `mapstructure:"max_limit"`
}

// RecommendationsConfig contains recommendation listing settings
type RecommendationsConfig struct {
	DefaultLimit    int `mapstructure:"default_limit"`
	RecentViewCount int `mapstructure:"recent_view_count"`
}
