package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kenshi-webspace/internal/domain"
)

type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *PostRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *PostRepository) GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.PostWithAuthor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostWithAuthor), args.Error(1)
}

func (m *PostRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.PostWithAuthor, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.PostWithAuthor), args.Get(1).(int64), args.Error(2)
}

func (m *PostRepository) ListFeatured(ctx context.Context, limit int) ([]domain.PostWithAuthor, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.PostWithAuthor), args.Error(1)
}

func (m *PostRepository) ListByAuthor(ctx context.Context, authorID string, params domain.PaginationParams) ([]domain.Post, int64, error) {
	args := m.Called(ctx, authorID, params)
	return args.Get(0).([]domain.Post), args.Get(1).(int64), args.Error(2)
}

func (m *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PostRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
