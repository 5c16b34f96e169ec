package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// HFKeyPlaceholder is the value shipped in the sample .env; a key equal to it
// is treated as not configured.
const HFKeyPlaceholder = "hf_your_token_here"

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	GroqAPIKey       string
	GroqModel        string
	GroqBaseURL      string
	HFAPIKey         string
	HFModel          string
	HFBaseURL        string
	AllowedOrigins   []string
	SessionCacheSize int
	RateLimitPerMin  int
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. The AI provider keys are optional: a
// missing Groq key surfaces as per-artifact failures and a missing Hugging
// Face key surfaces as the guided-setup response, both at call time, so the
// server still starts without them.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		GroqAPIKey:       strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		GroqModel:        getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GroqBaseURL:      getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		HFAPIKey:         strings.TrimSpace(os.Getenv("HF_API_KEY")),
		HFModel:          getEnv("HF_MODEL", "stabilityai/stable-diffusion-xl-base-1.0"),
		HFBaseURL:        getEnv("HF_BASE_URL", "https://api-inference.huggingface.co"),
		AllowedOrigins:   getEnvList("CORS_ALLOWED_ORIGINS", nil),
		SessionCacheSize: getEnvInt("SESSION_CACHE_SIZE", 1024),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 180)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	return cfg, nil
}

// HFConfigured reports whether a usable Hugging Face key is present.
func (c *Config) HFConfigured() bool {
	return c.HFAPIKey != "" && c.HFAPIKey != HFKeyPlaceholder
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
