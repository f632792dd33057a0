package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full process configuration, read from the environment.
// SUPABASE_URL and SUPABASE_ANON_KEY are required; the process refuses to
// start without them.
type Config struct {
	Port     string `env:"PORT,      default=8000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AllowedOrigins is the CORS allow-list. Defaults to the local
	// development origins of the dashboard frontend.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, delimiter=;"`

	Supabase SupabaseConfig
}

type SupabaseConfig struct {
	URL     string        `env:"SUPABASE_URL,      required"`
	AnonKey string        `env:"SUPABASE_ANON_KEY, required"`
	Timeout time.Duration `env:"SUPABASE_TIMEOUT,  default=10s"`
}

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = defaultAllowedOrigins
	}
	return &cfg, nil
}
