package repository

import (
	"context"

	"kenshi-webspace/internal/domain"
)

type DeviceRepository interface {
	Upsert(ctx context.Context, token *domain.DeviceToken) error
	List(ctx context.Context) ([]domain.DeviceToken, error)
	Delete(ctx context.Context, token string) error
}

type deviceRepository struct {
	db DBTX
}

func NewDeviceRepository(db DBTX) DeviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) Upsert(ctx context.Context, token *domain.DeviceToken) error {
	query := `
		INSERT INTO device_tokens (token, user_id, platform)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE
		SET user_id = EXCLUDED.user_id, platform = EXCLUDED.platform, updated_at = NOW()
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		token.Token, token.UserID, token.Platform,
	).Scan(&token.CreatedAt, &token.UpdatedAt)
}

func (r *deviceRepository) List(ctx context.Context) ([]domain.DeviceToken, error) {
	var tokens []domain.DeviceToken
	query := `SELECT * FROM device_tokens ORDER BY updated_at DESC`
	err := r.db.SelectContext(ctx, &tokens, query)
	return tokens, err
}

func (r *deviceRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM device_tokens WHERE token = $1`
	_, err := r.db.ExecContext(ctx, query, token)
	return err
}
