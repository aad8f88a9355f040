// Package config holds runtime settings for the hackmatch client and the
// forwarder server. Sources are layered: defaults, then environment
// (including a .env file), then a JSON config file, then command-line
// flags; later sources win.
package config

import (
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	// BackendBaseURL is the origin of the team-matching REST backend.
	BackendBaseURL string

	// IdentityTokenURL is the identity provider's token endpoint
	// (refresh-token grant). IdentityAPIKey is appended as ?key= when set.
	IdentityTokenURL string
	IdentityAPIKey   string

	// CredentialFile is where the bearer credential is cached between runs.
	// Empty disables durable caching.
	CredentialFile string

	RequestTimeout  time.Duration
	AuthWaitTimeout time.Duration

	// RateLimitRPS throttles outgoing backend requests; 0 disables.
	RateLimitRPS float64

	// Forwarder server settings.
	ProxyAddr     string
	AgentEndpoint string
}

func (c *Config) LoadDefaults() {
	c.BackendBaseURL = "https://api.hackmatch.example.com"
	c.IdentityTokenURL = "https://securetoken.googleapis.com/v1/token"
	c.CredentialFile = defaultCredentialFile()
	c.RequestTimeout = 30 * time.Second
	c.AuthWaitTimeout = 15 * time.Second
	c.ProxyAddr = ":8787"
}

func defaultCredentialFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hackmatch", "credentials.json")
}

// LoadConfig constructs a Config, applying the layered sources in order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
