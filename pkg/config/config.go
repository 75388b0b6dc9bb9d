package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/umputun/exclude-pages/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// exclusion store types
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config holds the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database  DatabaseConfig  `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Exclusion ExclusionConfig `yaml:"exclusion" json:"exclusion" jsonschema:"description=Page exclusion configuration"`
	Redis     RedisConfig     `yaml:"redis" json:"redis" jsonschema:"description=Redis configuration, used by redis exclusion store"`
	Admin     AdminConfig     `yaml:"admin" json:"admin" jsonschema:"description=Admin interface configuration"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen    string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL   string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS feed and links"`
	SiteTitle string        `yaml:"site_title" json:"site_title" jsonschema:"default=Site,description=Site title shown on pages and in RSS"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:exclude-pages.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// ExclusionConfig defines where excluded page ids are kept
type ExclusionConfig struct {
	Key   string `yaml:"key" json:"key" jsonschema:"default=exclude_pages,description=Settings key holding excluded page ids"`
	Store string `yaml:"store" json:"store" jsonschema:"default=sqlite,enum=sqlite,enum=redis,description=Exclusion store backend"`
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Addr     string `yaml:"addr" json:"addr" jsonschema:"default=localhost:6379,description=Redis address"`
	Password string `yaml:"password" json:"password" jsonschema:"description=Redis password (can use environment variable)"`
	DB       int    `yaml:"db" json:"db" jsonschema:"default=0,description=Redis database number"`
}

// AdminConfig holds admin interface credentials, admin routes are open if user is empty
type AdminConfig struct {
	User     string `yaml:"user" json:"user" jsonschema:"description=Admin basic auth user"`
	Password string `yaml:"password" json:"password" jsonschema:"description=Admin basic auth password (can use environment variable)"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// setDefaults fills missing values
func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}
	if c.Server.SiteTitle == "" {
		c.Server.SiteTitle = "Site"
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:exclude-pages.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Exclusion.Key == "" {
		c.Exclusion.Key = domain.SettingExcludedPages
	}
	if c.Exclusion.Store == "" {
		c.Exclusion.Store = StoreSQLite
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if !strings.HasPrefix(cfg.Server.BaseURL, "http://") && !strings.HasPrefix(cfg.Server.BaseURL, "https://") {
		return fmt.Errorf("server.base_url must start with http:// or https://")
	}

	switch cfg.Exclusion.Store {
	case StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("exclusion.store must be %q or %q, got %q", StoreSQLite, StoreRedis, cfg.Exclusion.Store)
	}

	if cfg.Admin.User != "" && cfg.Admin.Password == "" {
		return fmt.Errorf("admin.password is required when admin.user is set")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFullConfig returns the full configuration
func (c *Config) GetFullConfig() *Config {
	return c
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
