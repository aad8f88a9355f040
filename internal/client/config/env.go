package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; real environment variables
// take precedence over it, as godotenv never overwrites existing ones.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("HACKMATCH_BACKEND_URL"); v != "" {
		cfg.BackendBaseURL = v
	}
	if v := os.Getenv("HACKMATCH_IDENTITY_TOKEN_URL"); v != "" {
		cfg.IdentityTokenURL = v
	}
	if v := os.Getenv("HACKMATCH_IDENTITY_API_KEY"); v != "" {
		cfg.IdentityAPIKey = v
	}
	if v := os.Getenv("HACKMATCH_CREDENTIAL_FILE"); v != "" {
		cfg.CredentialFile = v
	}
	if v := os.Getenv("HACKMATCH_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("HACKMATCH_AUTH_WAIT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.AuthWaitTimeout = d
		}
	}
	if v := os.Getenv("HACKMATCH_RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		}
	}
	if v := os.Getenv("HACKMATCH_PROXY_ADDR"); v != "" {
		cfg.ProxyAddr = v
	}
	if v := os.Getenv("HACKMATCH_AGENT_ENDPOINT"); v != "" {
		cfg.AgentEndpoint = v
	}
}
