package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port        string `env:"PORT" envDefault:"8000"`
	Version     string `env:"VERSION" envDefault:"v0.1.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`
	GinMode     string `env:"GIN_MODE" envDefault:"release"`

	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	TracesExporter string `env:"OTEL_TRACES_EXPORTER" envDefault:"otlp"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`

	// PostgresDSN optionally points at a seeded catalog; empty keeps the built-in tables.
	PostgresDSN string `env:"POSTGRES_DSN"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// RandomSeed makes every draw reproducible when non-zero.
	RandomSeed      uint64        `env:"RANDOM_SEED" envDefault:"0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads a .env file when one exists, then the process environment,
// applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	return parseConfig(env.Options{})
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("config: PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("config: GIN_MODE must be one of debug, release, test, got %q", c.GinMode)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("config: SHUTDOWN_TIMEOUT must be positive")
	}
	if len(c.CORSAllowedOrigins) == 0 {
		return errors.New("config: CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	return nil
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	return ":" + c.Port
}
