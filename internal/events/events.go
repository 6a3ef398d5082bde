package events

import "context"

// VerifiedEvent notifies downstream consumers that an image passed through
// verification. Consumed by the main backend; losing one is acceptable.
type VerifiedEvent struct {
	RequestID string `json:"request_id"`
	Issue     string `json:"issue"`
	Priority  string `json:"priority"`
}

// Publisher emits verification events. Publishing is best effort; a failing
// publisher must never fail the request that produced the event.
type Publisher interface {
	PublishVerified(ctx context.Context, ev VerifiedEvent) error
	Close()
}
