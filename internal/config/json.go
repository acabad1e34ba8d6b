package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/newsboard/internal/flagx"
	"github.com/dmitrijs2005/newsboard/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// zero values mean "not set" so a partial file only overrides what it names.
type JsonConfig struct {
	DataDir       string         `json:"data_dir"`
	Storage       string         `json:"storage"`
	SQLiteDSN     string         `json:"sqlite_dsn"`
	HTTPAddr      string         `json:"http_addr"`
	SecretKey     string         `json:"secret_key"`
	TokenValidity timex.Duration `json:"token_validity"`
	LogLevel      string         `json:"log_level"`
	LogJSON       *bool          `json:"log_json"`
	Seed          *bool          `json:"seed"`
	AdminPassword string         `json:"admin_password"`
	Advisor       struct {
		Endpoint string         `json:"endpoint"`
		Model    string         `json:"model"`
		APIKey   string         `json:"api_key"`
		Timeout  timex.Duration `json:"timeout"`
	} `json:"advisor"`
	S3 struct {
		RootUser     string `json:"root_user"`
		RootPassword string `json:"root_password"`
		Bucket       string `json:"bucket"`
		Region       string `json:"region"`
		BaseEndpoint string `json:"base_endpoint"`
		Passphrase   string `json:"passphrase"`
	} `json:"s3"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args. No
// flag means no JSON stage.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	jc.apply(cfg)
	return nil
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.Storage, jc.Storage)
	setString(&cfg.SQLiteDSN, jc.SQLiteDSN)
	setString(&cfg.HTTPAddr, jc.HTTPAddr)
	setString(&cfg.SecretKey, jc.SecretKey)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.AdminPassword, jc.AdminPassword)
	setString(&cfg.AdvisorEndpoint, jc.Advisor.Endpoint)
	setString(&cfg.AdvisorModel, jc.Advisor.Model)
	setString(&cfg.AdvisorAPIKey, jc.Advisor.APIKey)
	setString(&cfg.S3RootUser, jc.S3.RootUser)
	setString(&cfg.S3RootPassword, jc.S3.RootPassword)
	setString(&cfg.S3Bucket, jc.S3.Bucket)
	setString(&cfg.S3Region, jc.S3.Region)
	setString(&cfg.S3BaseEndpoint, jc.S3.BaseEndpoint)
	setString(&cfg.BackupPassphrase, jc.S3.Passphrase)

	if jc.TokenValidity.Duration > 0 {
		cfg.TokenValidity = jc.TokenValidity.Duration
	}
	if jc.Advisor.Timeout.Duration > 0 {
		cfg.AdvisorTimeout = jc.Advisor.Timeout.Duration
	}
	if jc.LogJSON != nil {
		cfg.LogJSON = *jc.LogJSON
	}
	if jc.Seed != nil {
		cfg.Seed = *jc.Seed
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
