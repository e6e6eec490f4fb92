// Package reference maintains the service-reference rows that tie media
// records to their owning entity.
package reference

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"kenshi-webspace/internal/domain"
	"kenshi-webspace/internal/repository"
)

type Service interface {
	// Link ensures a reference row exists for entityID, creating it or
	// refreshing updated_at. Calling it twice converges to one row.
	Link(ctx context.Context, entityID uuid.UUID, ownerType domain.OwnerType) (*domain.ServiceReference, error)
	// Detach orphans the attached media rows and removes the reference.
	Detach(ctx context.Context, entityID uuid.UUID) error
}

type service struct {
	refRepo   repository.ReferenceRepository
	mediaRepo repository.MediaRepository
}

func NewService(refRepo repository.ReferenceRepository, mediaRepo repository.MediaRepository) Service {
	return &service{
		refRepo:   refRepo,
		mediaRepo: mediaRepo,
	}
}

func (s *service) Link(ctx context.Context, entityID uuid.UUID, ownerType domain.OwnerType) (*domain.ServiceReference, error) {
	return Link(ctx, s.refRepo, entityID, ownerType)
}

func (s *service) Detach(ctx context.Context, entityID uuid.UUID) error {
	return Detach(ctx, s.refRepo, s.mediaRepo, entityID)
}

// Link is the repository-level form used by the post coordinator inside
// its transactions.
func Link(ctx context.Context, refRepo repository.ReferenceRepository, entityID uuid.UUID, ownerType domain.OwnerType) (*domain.ServiceReference, error) {
	if !ownerType.Valid() {
		return nil, fmt.Errorf("%w: owner type %q", domain.ErrInvalidEnumValue, ownerType)
	}

	ref, err := refRepo.Upsert(ctx, entityID, ownerType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReferenceCreationFailed, err)
	}
	return ref, nil
}

// Detach is the repository-level form of Service.Detach. Media rows are
// orphaned before the reference row goes away to respect the foreign key.
func Detach(ctx context.Context, refRepo repository.ReferenceRepository, mediaRepo repository.MediaRepository, entityID uuid.UUID) error {
	if err := mediaRepo.DetachByServiceRef(ctx, entityID); err != nil {
		return err
	}
	return refRepo.Delete(ctx, entityID)
}
