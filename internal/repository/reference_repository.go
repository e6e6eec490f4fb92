package repository

import (
	"context"

	"github.com/google/uuid"

	"kenshi-webspace/internal/domain"
)

type ReferenceRepository interface {
	Upsert(ctx context.Context, id uuid.UUID, ownerType domain.OwnerType) (*domain.ServiceReference, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceReference, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type referenceRepository struct {
	db DBTX
}

func NewReferenceRepository(db DBTX) ReferenceRepository {
	return &referenceRepository{db: db}
}

// Upsert creates the reference row or, if it already exists, bumps
// updated_at. ON CONFLICT makes concurrent calls for the same id
// converge to a single row without application-side locking.
func (r *referenceRepository) Upsert(ctx context.Context, id uuid.UUID, ownerType domain.OwnerType) (*domain.ServiceReference, error) {
	var ref domain.ServiceReference
	query := `
		INSERT INTO service_references (id, type)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET updated_at = NOW()
		RETURNING id, type, created_at, updated_at`
	err := r.db.GetContext(ctx, &ref, query, id, ownerType)
	return &ref, err
}

func (r *referenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceReference, error) {
	var ref domain.ServiceReference
	query := `SELECT * FROM service_references WHERE id = $1`
	err := r.db.GetContext(ctx, &ref, query, id)
	return &ref, err
}

func (r *referenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM service_references WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
