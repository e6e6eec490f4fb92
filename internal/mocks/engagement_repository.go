package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kenshi-webspace/internal/domain"
)

type EngagementRepository struct {
	mock.Mock
}

func (m *EngagementRepository) ToggleLike(ctx context.Context, postID uuid.UUID, userID string) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *EngagementRepository) CountLikes(ctx context.Context, postID uuid.UUID) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *EngagementRepository) ToggleBookmark(ctx context.Context, postID uuid.UUID, userID string) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *EngagementRepository) ListBookmarked(ctx context.Context, userID string) ([]domain.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}
