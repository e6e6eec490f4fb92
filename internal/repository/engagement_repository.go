package repository

import (
	"context"

	"github.com/google/uuid"

	"kenshi-webspace/internal/domain"
)

type EngagementRepository interface {
	ToggleLike(ctx context.Context, postID uuid.UUID, userID string) (bool, error)
	CountLikes(ctx context.Context, postID uuid.UUID) (int64, error)
	ToggleBookmark(ctx context.Context, postID uuid.UUID, userID string) (bool, error)
	ListBookmarked(ctx context.Context, userID string) ([]domain.Post, error)
}

type engagementRepository struct {
	db DBTX
}

func NewEngagementRepository(db DBTX) EngagementRepository {
	return &engagementRepository{db: db}
}

// ToggleLike flips the like state for one user and post. The delete-
// first approach keeps the toggle a single round trip per direction and
// is safe under the (post_id, user_id) primary key.
func (r *engagementRepository) ToggleLike(ctx context.Context, postID uuid.UUID, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return false, nil
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		postID, userID)
	return true, err
}

func (r *engagementRepository) CountLikes(ctx context.Context, postID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM likes WHERE post_id = $1`, postID)
	return total, err
}

func (r *engagementRepository) ToggleBookmark(ctx context.Context, postID uuid.UUID, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return false, nil
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO bookmarks (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		postID, userID)
	return true, err
}

func (r *engagementRepository) ListBookmarked(ctx context.Context, userID string) ([]domain.Post, error) {
	var posts []domain.Post
	query := `
		SELECT p.* FROM posts p
		JOIN bookmarks b ON b.post_id = p.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`
	err := r.db.SelectContext(ctx, &posts, query, userID)
	return posts, err
}
