package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"

	"civicfix-ai/internal/audit"
	"civicfix-ai/internal/auth"
	"civicfix-ai/internal/classify"
	"civicfix-ai/internal/config"
	"civicfix-ai/internal/credentials"
	"civicfix-ai/internal/events"
	"civicfix-ai/internal/logger"
	"civicfix-ai/internal/vertex"
)

// Deps bundles common runtime dependencies for the gateway.
type Deps struct {
	Config     config.Config
	Log        *slog.Logger
	Gate       *auth.Gate
	Classifier classify.Classifier
	Audit      audit.Recorder
	Events     events.Publisher
}

// Build loads env, config, and shared components.
func Build(ctx context.Context) (Deps, error) {
	if err := godotenv.Load(); err != nil {
		slog.Default().Debug("no .env file loaded", "err", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return Deps{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	log := logger.New(cfg.LogLevel)

	creds, err := credentials.NewGoogle(ctx, cfg.ServiceAccountFile)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize credential provider: %w", err)
	}
	model := vertex.NewClient(cfg.GeminiProjectID, cfg.GeminiLocation, cfg.GeminiModel, creds)
	log.Info("using Vertex Gemini model", "model", cfg.GeminiModel, "location", cfg.GeminiLocation)

	rec, err := buildAudit(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize audit recorder: %w", err)
	}
	pub, err := buildEvents(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize event publisher: %w", err)
	}

	return Deps{
		Config:     cfg,
		Log:        log,
		Gate:       auth.NewGate(cfg.JWTSecret),
		Classifier: classify.NewPipeline(log, model),
		Audit:      rec,
		Events:     pub,
	}, nil
}

func buildAudit(cfg config.Config, log *slog.Logger) (audit.Recorder, error) {
	switch cfg.AuditProvider {
	case "postgres":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("DB_URL is required when AUDIT_PROVIDER=postgres")
		}
		rec, err := audit.NewPostgres(cfg.DBURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Postgres: %w", err)
		}
		log.Info("using Postgres audit recorder")
		return rec, nil
	case "none":
		return audit.NewNoop(), nil
	default:
		return nil, fmt.Errorf("invalid AUDIT_PROVIDER: %s (valid options: postgres, none)", cfg.AuditProvider)
	}
}

func buildEvents(cfg config.Config, log *slog.Logger) (events.Publisher, error) {
	switch cfg.EventsProvider {
	case "nats":
		if cfg.QueueURL == "" {
			return nil, fmt.Errorf("QUEUE_URL is required when EVENTS_PROVIDER=nats")
		}
		nc, err := nats.Connect(cfg.QueueURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		log.Info("using NATS event publisher")
		return events.NewNATS(log, nc), nil
	case "none":
		return events.NewNoop(), nil
	default:
		return nil, fmt.Errorf("invalid EVENTS_PROVIDER: %s (valid options: nats, none)", cfg.EventsProvider)
	}
}
