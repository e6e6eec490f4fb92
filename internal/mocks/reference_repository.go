package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kenshi-webspace/internal/domain"
)

type ReferenceRepository struct {
	mock.Mock
}

func (m *ReferenceRepository) Upsert(ctx context.Context, id uuid.UUID, ownerType domain.OwnerType) (*domain.ServiceReference, error) {
	args := m.Called(ctx, id, ownerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceReference), args.Error(1)
}

func (m *ReferenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceReference, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceReference), args.Error(1)
}

func (m *ReferenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
