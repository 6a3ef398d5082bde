package audit

import "context"

// NoopRecorder discards entries. Used when no audit backend is configured.
type NoopRecorder struct{}

func NewNoop() *NoopRecorder {
	return &NoopRecorder{}
}

func (r *NoopRecorder) Record(_ context.Context, _ Entry) error {
	return nil
}

func (r *NoopRecorder) Close() error {
	return nil
}
