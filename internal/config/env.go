package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "NEWSBOARD_"

// loadDotEnv exports the variables of path into the process environment
// without overriding ones already set. A missing file is ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// parseEnv overlays cfg with NEWSBOARD_* variables resolved through lookup.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(envPrefix + name)
		return v, ok && v != ""
	}

	strs := map[string]*string{
		"DATA_DIR":          &cfg.DataDir,
		"STORAGE":           &cfg.Storage,
		"SQLITE_DSN":        &cfg.SQLiteDSN,
		"HTTP_ADDR":         &cfg.HTTPAddr,
		"SECRET_KEY":        &cfg.SecretKey,
		"LOG_LEVEL":         &cfg.LogLevel,
		"ADMIN_PASSWORD":    &cfg.AdminPassword,
		"ADVISOR_ENDPOINT":  &cfg.AdvisorEndpoint,
		"ADVISOR_MODEL":     &cfg.AdvisorModel,
		"ADVISOR_API_KEY":   &cfg.AdvisorAPIKey,
		"S3_ROOT_USER":      &cfg.S3RootUser,
		"S3_ROOT_PASSWORD":  &cfg.S3RootPassword,
		"S3_BUCKET":         &cfg.S3Bucket,
		"S3_REGION":         &cfg.S3Region,
		"S3_BASE_ENDPOINT":  &cfg.S3BaseEndpoint,
		"BACKUP_PASSPHRASE": &cfg.BackupPassphrase,
	}
	for name, dst := range strs {
		if v, ok := get(name); ok {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"TOKEN_VALIDITY":  &cfg.TokenValidity,
		"ADVISOR_TIMEOUT": &cfg.AdvisorTimeout,
	}
	for name, dst := range durations {
		if v, ok := get(name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, name, err)
			}
			*dst = d
		}
	}

	bools := map[string]*bool{
		"LOG_JSON": &cfg.LogJSON,
		"SEED":     &cfg.Seed,
	}
	for name, dst := range bools {
		if v, ok := get(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, name, err)
			}
			*dst = b
		}
	}

	return nil
}
