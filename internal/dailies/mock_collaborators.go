package dailies

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock implementation of the Notifier interface
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendDirect(ctx context.Context, userID, text string) error {
	args := m.Called(ctx, userID, text)
	return args.Error(0)
}

func (m *MockNotifier) SendChannel(ctx context.Context, channelID, text string) error {
	args := m.Called(ctx, channelID, text)
	return args.Error(0)
}

// MockPresence is a mock implementation of the Presence interface
type MockPresence struct {
	mock.Mock
}

func (m *MockPresence) Publish(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}
