package config

import (
	"encoding/json"
	"os"

	"github.com/TRu-S3/hackmatch-go/internal/flagx"
	"github.com/TRu-S3/hackmatch-go/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations can
// be given as strings like "30s" or as integer nanoseconds (timex.Duration).
type JsonConfig struct {
	BackendBaseURL   string         `json:"backend_base_url"`
	IdentityTokenURL string         `json:"identity_token_url"`
	IdentityAPIKey   string         `json:"identity_api_key"`
	CredentialFile   string         `json:"credential_file"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	AuthWaitTimeout  timex.Duration `json:"auth_wait_timeout"`
	RateLimitRPS     float64        `json:"rate_limit_rps"`
	ProxyAddr        string         `json:"proxy_addr"`
	AgentEndpoint    string         `json:"agent_endpoint"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flags. Missing file path means no JSON layer. Only fields
// present in the file override earlier layers. Read or unmarshal errors
// panic; config is resolved once at startup and a bad file is fatal.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendBaseURL != "" {
		cfg.BackendBaseURL = jc.BackendBaseURL
	}
	if jc.IdentityTokenURL != "" {
		cfg.IdentityTokenURL = jc.IdentityTokenURL
	}
	if jc.IdentityAPIKey != "" {
		cfg.IdentityAPIKey = jc.IdentityAPIKey
	}
	if jc.CredentialFile != "" {
		cfg.CredentialFile = jc.CredentialFile
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.AuthWaitTimeout.Duration > 0 {
		cfg.AuthWaitTimeout = jc.AuthWaitTimeout.Duration
	}
	if jc.RateLimitRPS > 0 {
		cfg.RateLimitRPS = jc.RateLimitRPS
	}
	if jc.ProxyAddr != "" {
		cfg.ProxyAddr = jc.ProxyAddr
	}
	if jc.AgentEndpoint != "" {
		cfg.AgentEndpoint = jc.AgentEndpoint
	}
}
