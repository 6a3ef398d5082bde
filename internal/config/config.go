package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds minimal runtime configuration. Extend as needed.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Upload limits
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"` // 10MB in bytes

	// Internal service token verification
	JWTSecret string `env:"INTERNAL_JWT_SECRET" validate:"required"`

	// Vertex Gemini endpoint identifiers
	GeminiProjectID    string `env:"GEMINI_PROJECT_ID" validate:"required"`
	GeminiLocation     string `env:"GEMINI_LOCATION" envDefault:"us-central1"`
	GeminiModel        string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	ServiceAccountFile string `env:"GEMINI_SERVICE_ACCOUNT_FILE" validate:"required"`

	// Audit trail
	AuditProvider string `env:"AUDIT_PROVIDER" envDefault:"none"` // "none" or "postgres"
	DBURL         string `env:"DB_URL"`

	// Verification events
	EventsProvider string `env:"EVENTS_PROVIDER" envDefault:"none"` // "none" or "nats"
	QueueURL       string `env:"QUEUE_URL"`
}

// Load reads configuration from environment variables with defaults and
// rejects configs missing required values.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
