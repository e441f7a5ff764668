package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for every environment override, e.g. WILDCAT_STORAGE_TYPE
const EnvPrefix = "wildcat"

// DefaultConfigFile is read when WILDCAT_CONFIG_FILE is unset and the file exists
const DefaultConfigFile = "wildcat.yaml"

// Storage backends for the high score record
const (
	StorageFile          = "file"
	StorageMemory        = "memory"
	StorageSQLite        = "sqlite"
	StorageRedis         = "redis"
	StorageElasticsearch = "elasticsearch"
	StoragePostgres      = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// Environment
	Environment string `yaml:"environment" envconfig:"ENVIRONMENT"` // "development" or "production"
	LogLevel    string `yaml:"log_level" envconfig:"LOG_LEVEL"`

	// Game
	Seed int64 `yaml:"seed" envconfig:"SEED"` // 0 means seed from the clock

	// High score storage
	DataDir       string `yaml:"data_dir" envconfig:"DATA_DIR"`
	StorageType   string `yaml:"storage_type" envconfig:"STORAGE_TYPE"`
	HighScorePath string `yaml:"highscore_path" envconfig:"HIGHSCORE_PATH"`
	SQLitePath    string `yaml:"sqlite_path" envconfig:"SQLITE_PATH"`

	RedisURL string `yaml:"redis_url" envconfig:"REDIS_URL"`
	RedisKey string `yaml:"redis_key" envconfig:"REDIS_KEY"`

	ElasticsearchURL      string `yaml:"elasticsearch_url" envconfig:"ELASTICSEARCH_URL"`
	ElasticsearchUsername string `yaml:"elasticsearch_username" envconfig:"ELASTICSEARCH_USERNAME"`
	ElasticsearchPassword string `yaml:"elasticsearch_password" envconfig:"ELASTICSEARCH_PASSWORD"`
	ElasticsearchIndex    string `yaml:"elasticsearch_index" envconfig:"ELASTICSEARCH_INDEX"`

	PostgresDSN string `yaml:"postgres_dsn" envconfig:"POSTGRES_DSN"`

	// Discord reporting, optional
	DiscordToken     string `yaml:"discord_token" envconfig:"DISCORD_TOKEN"`
	DiscordChannelID string `yaml:"discord_channel_id" envconfig:"DISCORD_CHANNEL_ID"`
}

// Load reads the configuration from .env, an optional YAML file and the
// environment, in that order of precedence (later wins)
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// loadFile decodes the YAML config file. An explicitly named file must
// exist; the default one is optional.
func (c *Config) loadFile() error {
	path, explicit := os.LookupEnv("WILDCAT_CONFIG_FILE")
	if !explicit {
		path = DefaultConfigFile
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error opening config file: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(c); err != nil {
		return fmt.Errorf("error decoding config file %s: %w", path, err)
	}
	return nil
}

// applyDefaults fills anything neither the file nor the environment set
func (c *Config) applyDefaults() error {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.StorageType == "" {
		c.StorageType = StorageFile
	}
	c.StorageType = strings.ToLower(c.StorageType)

	if c.DataDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		c.DataDir = filepath.Join(wd, "data")
	}
	if c.HighScorePath == "" {
		c.HighScorePath = filepath.Join(c.DataDir, "highscore.txt")
	}
	if c.SQLitePath == "" {
		c.SQLitePath = filepath.Join(c.DataDir, "wildcat.db")
	}
	if c.RedisKey == "" {
		c.RedisKey = "wildcat:highscore"
	}
	if c.ElasticsearchIndex == "" {
		c.ElasticsearchIndex = "wildcat_highscore"
	}
	return nil
}

// Validate checks the selected backend has what it needs. Call it again
// after overriding fields loaded by Load.
func (c *Config) Validate() error {
	c.StorageType = strings.ToLower(c.StorageType)

	switch c.StorageType {
	case StorageFile, StorageMemory, StorageSQLite:
	case StorageRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("WILDCAT_REDIS_URL is required for redis storage")
		}
	case StorageElasticsearch:
		if c.ElasticsearchURL == "" {
			return fmt.Errorf("WILDCAT_ELASTICSEARCH_URL is required for elasticsearch storage")
		}
	case StoragePostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("WILDCAT_POSTGRES_DSN is required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown storage type: %q", c.StorageType)
	}

	if (c.DiscordToken == "") != (c.DiscordChannelID == "") {
		return fmt.Errorf("WILDCAT_DISCORD_TOKEN and WILDCAT_DISCORD_CHANNEL_ID must be set together")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// DiscordEnabled reports whether round summaries should be posted to Discord
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}
