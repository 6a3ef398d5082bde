package classify

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClassifier is a mock implementation of Classifier using testify/mock.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, image []byte, mimeType string) (Result, error) {
	args := m.Called(ctx, image, mimeType)
	return args.Get(0).(Result), args.Error(1)
}
