package config

import (
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config is the root configuration for filmboard.
type Config struct {
	Scraper Scraper `mapstructure:"scraper" yaml:"scraper"`
	Fetcher Fetcher `mapstructure:"fetcher" yaml:"fetcher"`
	Storage Storage `mapstructure:"storage" yaml:"storage"`
	Web     Web     `mapstructure:"web"     yaml:"web"`
	Logging Logging `mapstructure:"logging" yaml:"logging"`
}

// Scraper controls the index page and detail page scraping run.
type Scraper struct {
	IndexURL       string        `mapstructure:"index_url"       yaml:"index_url"`
	BaseURL        string        `mapstructure:"base_url"        yaml:"base_url"`
	AllTables      bool          `mapstructure:"all_tables"      yaml:"all_tables"`
	UserAgent      string        `mapstructure:"user_agent"      yaml:"user_agent"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
}

// Fetcher controls the shared HTTP client.
type Fetcher struct {
	FollowRedirects bool          `mapstructure:"follow_redirects"  yaml:"follow_redirects"`
	MaxRedirects    int           `mapstructure:"max_redirects"     yaml:"max_redirects"`
	MaxBodySize     int64         `mapstructure:"max_body_size"     yaml:"max_body_size"`
	TLSInsecure     bool          `mapstructure:"tls_insecure"      yaml:"tls_insecure"`
	IdleConnTimeout time.Duration `mapstructure:"idle_conn_timeout" yaml:"idle_conn_timeout"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    yaml:"max_idle_conns"`
}

// Storage controls the export sinks.
type Storage struct {
	DatabasePath string `mapstructure:"database_path" yaml:"database_path"`
	JSONPath     string `mapstructure:"json_path"     yaml:"json_path"`
	Mongo        Mongo  `mapstructure:"mongo"         yaml:"mongo"`
}

// Mongo controls the optional MongoDB mirror sink.
type Mongo struct {
	Enabled    bool   `mapstructure:"enabled"    yaml:"enabled"`
	URI        string `mapstructure:"uri"        yaml:"uri"`
	Database   string `mapstructure:"database"   yaml:"database"`
	Collection string `mapstructure:"collection" yaml:"collection"`
}

// Web controls the presentation server.
type Web struct {
	Port int `mapstructure:"port" yaml:"port"`
}

// Logging controls logging behavior.
type Logging struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scraper: Scraper{
			IndexURL:       "https://en.wikipedia.org/wiki/List_of_highest-grossing_films",
			BaseURL:        "https://en.wikipedia.org",
			AllTables:      false,
			UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			RequestTimeout: 30 * time.Second,
		},
		Fetcher: Fetcher{
			FollowRedirects: true,
			MaxRedirects:    10,
			MaxBodySize:     10 * 1024 * 1024, // 10MB
			IdleConnTimeout: 90 * time.Second,
			MaxIdleConns:    100,
		},
		Storage: Storage{
			DatabasePath: "films.db",
			JSONPath:     "grossing_films.json",
			Mongo: Mongo{
				Enabled:    false,
				URI:        "mongodb://localhost:27017",
				Database:   "filmboard",
				Collection: "films",
			},
		},
		Web: Web{
			Port: 8080,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}
