package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BerylCAtieno/creator-command-center/internal/generator"
	"github.com/BerylCAtieno/creator-command-center/internal/session"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	Model       string
	SessionTTL  time.Duration
	CORSOrigins []string
}

func (c Config) Production() bool {
	return c.Env == "production" || c.Env == "prod"
}

// Load reads an optional .env file and then the process environment. Values
// already present in the environment win over the file.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := Config{
		Port:       getenv("PORT", "8080"),
		Env:        strings.ToLower(getenv("APP_ENV", "development")),
		Model:      getenv("GEMINI_MODEL", generator.DefaultModel),
		SessionTTL: session.DefaultTTL,
	}

	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_TTL %q: %w", raw, err)
		}
		if ttl <= 0 {
			return Config{}, fmt.Errorf("SESSION_TTL must be positive, got %s", ttl)
		}
		cfg.SessionTTL = ttl
	}

	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
