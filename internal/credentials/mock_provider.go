package credentials

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of Provider using testify/mock.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetAccessToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
