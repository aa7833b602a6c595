package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret has no default on purpose: starting with a guessable
	// embedded fallback would make every issued token forgeable.
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=2h"`

	// DataDir holds the JSON collection files (users.json, projects.json).
	DataDir string `env:"DATA_DIR, default=./data"`

	// AllowedOrigins is the comma-separated CORS allow list.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:3002"`

	// StaticDir, when set, serves a built frontend with an index.html
	// fallback for client-side routes.
	StaticDir string `env:"STATIC_DIR"`

	Redis    RedisConfig
	DeepSeek DeepSeekConfig
}

type RedisConfig struct {
	// Addr left empty disables the prompt cache entirely.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type DeepSeekConfig struct {
	BaseURL string        `env:"DEEPSEEK_BASE_URL, default=https://api.deepseek.com"`
	APIKey  string        `env:"DEEPSEEK_KEY"`
	Model   string        `env:"DEEPSEEK_MODEL,    default=deepseek-chat"`
	Timeout time.Duration `env:"DEEPSEEK_TIMEOUT,  default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(logger *slog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}
	return &cfg
}
