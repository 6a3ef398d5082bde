package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"
)

const subjectVerified = "civicfix.issue.verified"

// NewNATS constructs a thin NATS-based publisher.
func NewNATS(log *slog.Logger, nc *nats.Conn) Publisher {
	return &natsPublisher{log: log, nc: nc}
}

type natsPublisher struct {
	log *slog.Logger
	nc  *nats.Conn
}

func (p *natsPublisher) PublishVerified(_ context.Context, ev VerifiedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.nc.Publish(subjectVerified, body)
}

func (p *natsPublisher) Close() {
	p.nc.Close()
}
