package config

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// ErrMissingSecret is returned when SECRET_KEY is unset. Starting without a
// signing secret would let anyone forge session tokens, so the process
// refuses to come up instead.
var ErrMissingSecret = errors.New("config: SECRET_KEY must be set")

type Config struct {
	Port        string `env:"PORT,         default=8080"`
	Env         string `env:"ENV,          default=development"`
	SecretKey   string `env:"SECRET_KEY"`
	DatabaseURL string `env:"DATABASE_URL, default=postgres://localhost:5432/gatehouse?sslmode=disable"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`

	SessionTTL  time.Duration `env:"SESSION_TTL,  default=24h"`
	RememberTTL time.Duration `env:"REMEMBER_TTL, default=720h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}
	if cfg.SecretKey == "" {
		return nil, ErrMissingSecret
	}
	return &cfg, nil
}
