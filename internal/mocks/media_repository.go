package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kenshi-webspace/internal/domain"
)

type MediaRepository struct {
	mock.Mock
}

func (m *MediaRepository) Create(ctx context.Context, media *domain.Media) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MediaRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.Media, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Media), args.Error(1)
}

func (m *MediaRepository) SetServiceRef(ctx context.Context, publicID string, refID uuid.UUID) error {
	args := m.Called(ctx, publicID, refID)
	return args.Error(0)
}

func (m *MediaRepository) ListByServiceRef(ctx context.Context, refID uuid.UUID) ([]domain.Media, error) {
	args := m.Called(ctx, refID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Media), args.Error(1)
}

func (m *MediaRepository) Delete(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

func (m *MediaRepository) DeleteByServiceRef(ctx context.Context, refID uuid.UUID) error {
	args := m.Called(ctx, refID)
	return args.Error(0)
}

func (m *MediaRepository) DetachByServiceRef(ctx context.Context, refID uuid.UUID) error {
	args := m.Called(ctx, refID)
	return args.Error(0)
}
