package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// APIKeyEnv names the environment variable holding the scoring API credential.
	APIKeyEnv = "PAGESPEED_API_KEY"

	defaultPageSpeedEndpoint = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"
)

// Config holds application configuration.
type Config struct {
	Port              string
	CORSAllowOrigin   []string
	Env               string
	PageSpeedEndpoint string
	UpstreamTimeout   time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// The API credential is deliberately absent: it is read per request through APIKey.
func Load() Config {
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:              getEnv("PORT", "8080"),
		CORSAllowOrigin:   splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		Env:               normalizeEnv(getEnv("ENV", "dev")),
		PageSpeedEndpoint: getEnv("PAGESPEED_ENDPOINT", defaultPageSpeedEndpoint),
		UpstreamTimeout:   getSeconds("UPSTREAM_TIMEOUT_SECONDS"),
	}
}

// APIKey returns the scoring API credential from the current environment.
func APIKey() string {
	return strings.TrimSpace(os.Getenv(APIKeyEnv))
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getSeconds(key string) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return 0
	}
	return time.Duration(parsed) * time.Second
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
