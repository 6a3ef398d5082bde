package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is one verification outcome, kept for operators. It never feeds
// back into request handling.
type Entry struct {
	ID         uuid.UUID
	RequestID  string
	Principal  string
	Issue      string
	Priority   string
	DurationMS int64
	CreatedAt  time.Time
}

// Recorder persists verification outcomes. Recording is best effort; a
// failing recorder must never fail the request that produced the entry.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
	Close() error
}
