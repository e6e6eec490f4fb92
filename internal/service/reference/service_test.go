package reference_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kenshi-webspace/internal/domain"
	"kenshi-webspace/internal/mocks"
	"kenshi-webspace/internal/service/reference"
)

func TestReferenceService_Link(t *testing.T) {
	ctx := context.Background()
	entityID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRefRepo := new(mocks.ReferenceRepository)
		svc := reference.NewService(mockRefRepo, new(mocks.MediaRepository))

		ref := &domain.ServiceReference{ID: entityID, Type: domain.OwnerTypePost}
		mockRefRepo.On("Upsert", ctx, entityID, domain.OwnerTypePost).Return(ref, nil).Once()

		got, err := svc.Link(ctx, entityID, domain.OwnerTypePost)

		assert.NoError(t, err)
		assert.Equal(t, entityID, got.ID)
		mockRefRepo.AssertExpectations(t)
	})

	t.Run("Idempotent - Repeated Link Converges", func(t *testing.T) {
		mockRefRepo := new(mocks.ReferenceRepository)
		svc := reference.NewService(mockRefRepo, new(mocks.MediaRepository))

		created := time.Now().Add(-time.Hour)
		first := &domain.ServiceReference{ID: entityID, Type: domain.OwnerTypePost, CreatedAt: created, UpdatedAt: created}
		second := &domain.ServiceReference{ID: entityID, Type: domain.OwnerTypePost, CreatedAt: created, UpdatedAt: time.Now()}
		mockRefRepo.On("Upsert", ctx, entityID, domain.OwnerTypePost).Return(first, nil).Once()
		mockRefRepo.On("Upsert", ctx, entityID, domain.OwnerTypePost).Return(second, nil).Once()

		r1, err1 := svc.Link(ctx, entityID, domain.OwnerTypePost)
		r2, err2 := svc.Link(ctx, entityID, domain.OwnerTypePost)

		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.Equal(t, r1.ID, r2.ID)
		assert.Equal(t, r1.CreatedAt, r2.CreatedAt)
		assert.True(t, r2.UpdatedAt.After(r1.UpdatedAt))
		mockRefRepo.AssertExpectations(t)
	})

	t.Run("Invalid Owner Type", func(t *testing.T) {
		mockRefRepo := new(mocks.ReferenceRepository)
		svc := reference.NewService(mockRefRepo, new(mocks.MediaRepository))

		got, err := svc.Link(ctx, entityID, domain.OwnerType("COMMENT"))

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrInvalidEnumValue)
		mockRefRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("Repository Error", func(t *testing.T) {
		mockRefRepo := new(mocks.ReferenceRepository)
		svc := reference.NewService(mockRefRepo, new(mocks.MediaRepository))

		mockRefRepo.On("Upsert", ctx, entityID, domain.OwnerTypePost).
			Return(nil, errors.New("connection refused")).Once()

		got, err := svc.Link(ctx, entityID, domain.OwnerTypePost)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrReferenceCreationFailed)
		mockRefRepo.AssertExpectations(t)
	})
}

func TestReferenceService_Detach(t *testing.T) {
	ctx := context.Background()
	entityID := uuid.New()

	t.Run("Success - Media Orphaned Before Reference Removed", func(t *testing.T) {
		mockRefRepo := new(mocks.ReferenceRepository)
		mockMediaRepo := new(mocks.MediaRepository)
		svc := reference.NewService(mockRefRepo, mockMediaRepo)

		var calls []string
		mockMediaRepo.On("DetachByServiceRef", ctx, entityID).Run(func(args mock.Arguments) {
			calls = append(calls, "detach media")
		}).Return(nil).Once()
		mockRefRepo.On("Delete", ctx, entityID).Run(func(args mock.Arguments) {
			calls = append(calls, "delete reference")
		}).Return(nil).Once()

		err := svc.Detach(ctx, entityID)

		assert.NoError(t, err)
		assert.Equal(t, []string{"detach media", "delete reference"}, calls)
		mockRefRepo.AssertExpectations(t)
		mockMediaRepo.AssertExpectations(t)
	})

	t.Run("Media Detach Fails - Reference Kept", func(t *testing.T) {
		mockRefRepo := new(mocks.ReferenceRepository)
		mockMediaRepo := new(mocks.MediaRepository)
		svc := reference.NewService(mockRefRepo, mockMediaRepo)

		mockMediaRepo.On("DetachByServiceRef", ctx, entityID).
			Return(errors.New("deadlock detected")).Once()

		err := svc.Detach(ctx, entityID)

		assert.Error(t, err)
		mockRefRepo.AssertNotCalled(t, "Delete")
	})
}
