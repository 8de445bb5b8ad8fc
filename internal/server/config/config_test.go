package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, ":8080", cfg.EndpointAddrHTTP)
	require.Equal(t, 60*time.Second, cfg.UploadGrantTTL)
	require.Equal(t, "photofolio", cfg.S3Bucket)
	require.NotEmpty(t, cfg.DatabaseDSN)
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://env:env@db:5432/env")
	t.Setenv("UPLOAD_GRANT_TTL", "90s")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "postgres://env:env@db:5432/env", cfg.DatabaseDSN)
	require.Equal(t, 90*time.Second, cfg.UploadGrantTTL)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	// Untouched fields keep their defaults.
	require.Equal(t, ":8080", cfg.EndpointAddrHTTP)
}

func TestParseJson_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	payload := map[string]any{
		"endpoint_addr_http": ":9090",
		"upload_grant_ttl":   "2m",
		"s3_bucket":          "json-bucket",
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"photofolio", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, ":9090", cfg.EndpointAddrHTTP)
	require.Equal(t, 2*time.Minute, cfg.UploadGrantTTL)
	require.Equal(t, "json-bucket", cfg.S3Bucket)
	require.Equal(t, "us-east-1", cfg.S3Region, "absent fields keep defaults")
}

func TestParseFlags_Overlay(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"photofolio", "-a", ":7070", "-t", "30", "-b", "flag-bucket"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, ":7070", cfg.EndpointAddrHTTP)
	require.Equal(t, 30*time.Second, cfg.UploadGrantTTL)
	require.Equal(t, "flag-bucket", cfg.S3Bucket)
}
