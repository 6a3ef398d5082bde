package vertex

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCaller is a mock implementation of Caller using testify/mock.
type MockCaller struct {
	mock.Mock
}

func (m *MockCaller) GenerateContent(ctx context.Context, req Request) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
