package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "app_data", c.DataDir)
	assert.Equal(t, StorageFile, c.Storage)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, 24*time.Hour, c.TokenValidity)
	assert.Equal(t, 30*time.Second, c.AdvisorTimeout)
	assert.Equal(t, "newsboard", c.S3Bucket)
	assert.True(t, c.Seed)
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown storage", func(c *Config) { c.Storage = "mongo" }},
		{"file without dir", func(c *Config) { c.DataDir = "" }},
		{"sqlite without dsn", func(c *Config) { c.Storage = StorageSQLite; c.SQLiteDSN = "" }},
		{"zero token validity", func(c *Config) { c.TokenValidity = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"data_dir": "/from/json",
		"http_addr": ":7000",
		"log_level": "debug",
		"advisor": {"model": "json-model", "timeout": "5s"}
	}`), 0o600))

	t.Setenv("NEWSBOARD_HTTP_ADDR", ":7100")
	t.Setenv("NEWSBOARD_ADVISOR_API_KEY", "env-key")

	cfg, err := LoadConfig([]string{"-c", path, "-a", ":7200"})
	require.NoError(t, err)

	want := defaults()
	want.DataDir = "/from/json"
	want.LogLevel = "debug"
	want.AdvisorModel = "json-model"
	want.AdvisorTimeout = 5 * time.Second
	want.AdvisorAPIKey = "env-key"
	want.HTTPAddr = ":7200"

	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_MissingJsonFile(t *testing.T) {
	_, err := LoadConfig([]string{"-config", filepath.Join(t.TempDir(), "absent.json")})
	assert.Error(t, err)
}

func TestLoadConfig_InvalidResult(t *testing.T) {
	_, err := LoadConfig([]string{"-s", "mongo"})
	assert.Error(t, err)
}
