package events

import "context"

// NoopPublisher drops events. Used when no event backend is configured.
type NoopPublisher struct{}

func NewNoop() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) PublishVerified(_ context.Context, _ VerifiedEvent) error {
	return nil
}

func (p *NoopPublisher) Close() {}
