package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://api.hackmatch.example.com", c.BackendBaseURL)
	assert.Equal(t, "https://securetoken.googleapis.com/v1/token", c.IdentityTokenURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, 15*time.Second, c.AuthWaitTimeout)
	assert.Equal(t, ":8787", c.ProxyAddr)
}

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("HACKMATCH_BACKEND_URL", "http://localhost:8080")
	t.Setenv("HACKMATCH_REQUEST_TIMEOUT", "5s")
	t.Setenv("HACKMATCH_RATE_LIMIT_RPS", "2.5")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://localhost:8080", c.BackendBaseURL)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, 2.5, c.RateLimitRPS)
	// untouched fields keep their defaults
	assert.Equal(t, ":8787", c.ProxyAddr)
}

func TestParseEnv_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("HACKMATCH_REQUEST_TIMEOUT", "not-a-duration")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 30*time.Second, c.RequestTimeout)
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{orig[0]}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestParseJson_OverridesOnlyPresentFields(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"backend_base_url": "https://staging.hackmatch.example.com",
		"request_timeout": "10s"
	}`), 0o600))

	withArgs(t, "-c", file)

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://staging.hackmatch.example.com", c.BackendBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 15*time.Second, c.AuthWaitTimeout)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	withArgs(t)

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://api.hackmatch.example.com", c.BackendBaseURL)
}

func TestParseFlags_OverridesEarlierLayers(t *testing.T) {
	withArgs(t, "-b", "http://localhost:9999", "-t", "7")

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "http://localhost:9999", c.BackendBaseURL)
	assert.Equal(t, 7*time.Second, c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://api.hackmatch.example.com", cfg.BackendBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
