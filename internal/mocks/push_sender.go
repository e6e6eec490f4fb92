package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type PushSender struct {
	mock.Mock
}

func (m *PushSender) Send(ctx context.Context, tokens []string, title, body string) error {
	args := m.Called(ctx, tokens, title, body)
	return args.Error(0)
}
