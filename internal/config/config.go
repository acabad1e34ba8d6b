package config

import (
	"fmt"
	"os"
	"time"
)

const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Config holds runtime settings shared by cmd/cli and cmd/server.
//
// Advisor* fields configure the OpenAI-compatible chat endpoint used for
// review suggestions and summaries; an empty endpoint disables it. S3* fields
// configure the snapshot target of the backup command.
type Config struct {
	DataDir   string
	Storage   string
	SQLiteDSN string

	HTTPAddr      string
	SecretKey     string
	TokenValidity time.Duration

	LogLevel string
	LogJSON  bool

	Seed          bool
	AdminPassword string

	AdvisorEndpoint string
	AdvisorModel    string
	AdvisorAPIKey   string
	AdvisorTimeout  time.Duration

	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	// BackupPassphrase, when set, seals every snapshot object before upload.
	BackupPassphrase string
}

// LoadDefaults populates c with development defaults.
// NOTE: SecretKey and AdminPassword must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.DataDir = "app_data"
	c.Storage = StorageFile
	c.SQLiteDSN = "file:newsboard.db?_pragma=foreign_keys(1)"
	c.HTTPAddr = ":8080"
	c.SecretKey = "secretKey"
	c.TokenValidity = 24 * time.Hour
	c.LogLevel = "info"
	c.LogJSON = false
	c.Seed = true
	c.AdminPassword = "12345"
	c.AdvisorEndpoint = "https://api.openai.com/v1/chat/completions"
	c.AdvisorModel = "gpt-4o-mini"
	c.AdvisorTimeout = 30 * time.Second
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "newsboard"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// Validate rejects settings no component can run with.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageFile, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.Storage == StorageFile && c.DataDir == "" {
		return fmt.Errorf("data dir is required for file storage")
	}
	if c.Storage == StorageSQLite && c.SQLiteDSN == "" {
		return fmt.Errorf("sqlite dsn is required for sqlite storage")
	}
	if c.TokenValidity <= 0 {
		return fmt.Errorf("token validity must be positive")
	}
	return nil
}

// LoadConfig builds a Config from defaults, the optional JSON file, the
// environment (after loading .env) and finally args (without the program
// name).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
