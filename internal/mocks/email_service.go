package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendPostRemovedEmail(ctx context.Context, toEmail, authorName, postTitle string) error {
	args := m.Called(ctx, toEmail, authorName, postTitle)
	return args.Error(0)
}
