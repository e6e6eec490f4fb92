package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kenshi-webspace/internal/domain"
)

type DeviceRepository struct {
	mock.Mock
}

func (m *DeviceRepository) Upsert(ctx context.Context, token *domain.DeviceToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *DeviceRepository) List(ctx context.Context) ([]domain.DeviceToken, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeviceToken), args.Error(1)
}

func (m *DeviceRepository) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
