package audit

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRecorder is a mock implementation of Recorder using testify/mock.
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, e Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRecorder) Close() error {
	args := m.Called()
	return args.Error(0)
}
