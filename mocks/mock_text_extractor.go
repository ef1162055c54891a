package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"vocalis/internal/port"
)

// MockTextExtractionService is a mock implementation of port.TextExtractionService.
type MockTextExtractionService struct {
	mock.Mock
}

func (m *MockTextExtractionService) Complete(ctx context.Context, input port.CompletionInput) (json.RawMessage, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
