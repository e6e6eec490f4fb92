package repository

import (
	"context"

	"github.com/google/uuid"

	"kenshi-webspace/internal/domain"
)

type MediaRepository interface {
	Create(ctx context.Context, media *domain.Media) error
	GetByPublicID(ctx context.Context, publicID string) (*domain.Media, error)
	SetServiceRef(ctx context.Context, publicID string, refID uuid.UUID) error
	ListByServiceRef(ctx context.Context, refID uuid.UUID) ([]domain.Media, error)
	Delete(ctx context.Context, publicID string) error
	DeleteByServiceRef(ctx context.Context, refID uuid.UUID) error
	DetachByServiceRef(ctx context.Context, refID uuid.UUID) error
}

type mediaRepository struct {
	db DBTX
}

func NewMediaRepository(db DBTX) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *domain.Media) error {
	query := `
		INSERT INTO media (public_id, media_type, url, service_ref_id, uploaded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		media.PublicID, media.MediaType, media.URL, media.ServiceRefID, media.UploadedBy,
	).Scan(&media.CreatedAt)
}

func (r *mediaRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.Media, error) {
	var media domain.Media
	query := `SELECT * FROM media WHERE public_id = $1`
	err := r.db.GetContext(ctx, &media, query, publicID)
	return &media, err
}

func (r *mediaRepository) SetServiceRef(ctx context.Context, publicID string, refID uuid.UUID) error {
	query := `UPDATE media SET service_ref_id = $1 WHERE public_id = $2`
	res, err := r.db.ExecContext(ctx, query, refID, publicID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrMediaNotFound
	}
	return nil
}

func (r *mediaRepository) ListByServiceRef(ctx context.Context, refID uuid.UUID) ([]domain.Media, error) {
	var mediaList []domain.Media
	query := `SELECT * FROM media WHERE service_ref_id = $1 ORDER BY created_at`
	err := r.db.SelectContext(ctx, &mediaList, query, refID)
	return mediaList, err
}

func (r *mediaRepository) Delete(ctx context.Context, publicID string) error {
	query := `DELETE FROM media WHERE public_id = $1`
	_, err := r.db.ExecContext(ctx, query, publicID)
	return err
}

func (r *mediaRepository) DeleteByServiceRef(ctx context.Context, refID uuid.UUID) error {
	query := `DELETE FROM media WHERE service_ref_id = $1`
	_, err := r.db.ExecContext(ctx, query, refID)
	return err
}

// DetachByServiceRef orphans the media rows attached to a reference so
// the reference row can be removed without violating the foreign key.
func (r *mediaRepository) DetachByServiceRef(ctx context.Context, refID uuid.UUID) error {
	query := `UPDATE media SET service_ref_id = NULL WHERE service_ref_id = $1`
	_, err := r.db.ExecContext(ctx, query, refID)
	return err
}
