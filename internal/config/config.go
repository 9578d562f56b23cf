package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the runtime settings for the auth server.
type Config struct {
	Addr          string        `env:"ADDR"                envDefault:":5000"`
	Env           string        `env:"ENV"                 envDefault:"development"`
	BaseURL       string        `env:"BASE_URL"            envDefault:"http://localhost:5000"`
	AllowedOrigin string        `env:"CORS_ALLOWED_ORIGIN" envDefault:"http://localhost:3000"`
	MongoURI      string        `env:"MONGODB_URI"         envDefault:"mongodb://localhost:27017"`
	MongoDatabase string        `env:"MONGODB_DATABASE"    envDefault:"multivion"`
	JWTSecret     string        `env:"JWT_SECRET"`
	JWTIssuer     string        `env:"JWT_ISSUER"          envDefault:"multivion"`
	SessionTTL    time.Duration `env:"SESSION_TTL"         envDefault:"24h"`
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL"     envDefault:"1h"`
}

// New creates a Config instance from environment variables.
func New(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate configuration")
	}

	return &cfg
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("missing JWT_SECRET environment variable")
	}

	return nil
}
