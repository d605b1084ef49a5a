package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Engine selects which registered inference engine serves requests.
	Engine            string `envconfig:"GLOT_ENGINE" default:"nllb"`
	EngineEndpoint    string `envconfig:"GLOT_ENGINE_ENDPOINT" default:"http://127.0.0.1:8763"`
	EngineTimeoutSecs int    `envconfig:"GLOT_ENGINE_TIMEOUT_SECS" default:"120"`

	DefaultSrcLang string `envconfig:"GLOT_DEFAULT_SRC_LANG" default:"eng_Latn"`
	DefaultTgtLang string `envconfig:"GLOT_DEFAULT_TGT_LANG" default:"hin_Deva"`

	// RestoreStrategy picks how mangled placeholders are repaired after
	// translation: "conservative" (exact tokens only) or "heuristic"
	// (transliteration repair).
	RestoreStrategy string `envconfig:"GLOT_RESTORE_STRATEGY" default:"conservative"`

	// GlossaryPath optionally points at a YAML file of extra term pairs
	// merged over the built-in vocabulary at startup.
	GlossaryPath string `envconfig:"GLOT_GLOSSARY_PATH" default:""`

	// DetectSource enables source-language detection for requests that
	// omit src_lang or pass "auto".
	DetectSource bool `envconfig:"GLOT_DETECT_SOURCE" default:"false"`

	// StrictRequests validates every stdio request line against the wire
	// schema before dispatch.
	StrictRequests bool `envconfig:"GLOT_STRICT_REQUESTS" default:"false"`

	MaxLineBytes int `envconfig:"GLOT_MAX_LINE_BYTES" default:"1048576"`

	// DatabaseURL enables the Postgres translation cache when set.
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`

	HTTPAddr           string `envconfig:"GLOT_HTTP_ADDR" default:"127.0.0.1:8764"`
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Engine) == "" {
		return fmt.Errorf("GLOT_ENGINE is required")
	}
	if strings.TrimSpace(c.EngineEndpoint) == "" {
		return fmt.Errorf("GLOT_ENGINE_ENDPOINT is required")
	}
	if c.EngineTimeoutSecs < 1 {
		return fmt.Errorf("GLOT_ENGINE_TIMEOUT_SECS must be >= 1")
	}
	switch strings.ToLower(strings.TrimSpace(c.RestoreStrategy)) {
	case "conservative", "heuristic":
	default:
		return fmt.Errorf("GLOT_RESTORE_STRATEGY must be conservative or heuristic, got %q", c.RestoreStrategy)
	}
	if strings.TrimSpace(c.DefaultSrcLang) == "" {
		return fmt.Errorf("GLOT_DEFAULT_SRC_LANG is required")
	}
	if strings.TrimSpace(c.DefaultTgtLang) == "" {
		return fmt.Errorf("GLOT_DEFAULT_TGT_LANG is required")
	}
	if c.MaxLineBytes < 4096 {
		return fmt.Errorf("GLOT_MAX_LINE_BYTES must be >= 4096")
	}
	return nil
}

func (c *Config) EngineTimeout() time.Duration {
	if c == nil || c.EngineTimeoutSecs < 1 {
		return 120 * time.Second
	}
	return time.Duration(c.EngineTimeoutSecs) * time.Second
}

func (c *Config) CacheEnabled() bool {
	return c != nil && strings.TrimSpace(c.DatabaseURL) != ""
}

func (c *Config) CORSAllowedOriginsList() []string {
	if c == nil {
		return nil
	}

	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		if _, exists := seen[origin]; exists {
			continue
		}
		seen[origin] = struct{}{}
		origins = append(origins, origin)
	}
	return origins
}
