package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"client"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 3, cfg.FetchRetries)
	require.Equal(t, 500*time.Millisecond, cfg.FetchRetryDelay)
	require.Equal(t, 800, cfg.CompressMaxWidth)
	require.Equal(t, 70, cfg.CompressQuality)
	require.NotEmpty(t, cfg.APIEndpoint)
}

func TestLoadConfig_JsonOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_endpoint": "https://api.example.com/v1",
		"fetch_retries": 5,
		"fetch_retry_delay": "250ms",
		"compress_quality": 0
	}`), 0o600))

	withArgs(t, "-c", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "https://api.example.com/v1", cfg.APIEndpoint)
	require.Equal(t, 5, cfg.FetchRetries)
	require.Equal(t, 250*time.Millisecond, cfg.FetchRetryDelay)
	// explicit zero in JSON wins over the default
	require.Equal(t, 0, cfg.CompressQuality)
}

func TestLoadConfig_EnvOverridesJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"s3_bucket":"from-json"}`), 0o600))

	t.Setenv("BOOTH_S3_BUCKET", "from-env")
	t.Setenv("BOOTH_FETCH_RETRY_DELAY", "2s")
	withArgs(t, "-c", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.S3Bucket)
	require.Equal(t, 2*time.Second, cfg.FetchRetryDelay)
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	t.Setenv("BOOTH_API_ENDPOINT", "https://env.example.com/v1")
	withArgs(t, "-a", "https://flag.example.com/v1", "-r", "7")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "https://flag.example.com/v1", cfg.APIEndpoint)
	require.Equal(t, 7, cfg.FetchRetries)
}

func TestLoadConfig_BadJsonFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{nope`), 0o600))

	withArgs(t, "-c", path)

	_, err := LoadConfig()
	require.Error(t, err)
}
