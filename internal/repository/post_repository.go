package repository

import (
	"context"

	"github.com/google/uuid"

	"kenshi-webspace/internal/domain"
)

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.PostWithAuthor, error)
	List(ctx context.Context, params domain.PaginationParams) ([]domain.PostWithAuthor, int64, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.PostWithAuthor, error)
	ListByAuthor(ctx context.Context, authorID string, params domain.PaginationParams) ([]domain.Post, int64, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
}

type postRepository struct {
	db DBTX
}

func NewPostRepository(db DBTX) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, author_id, title, excerpt, category, thumbnail, cover_image, content, read_time, reference_status, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		post.ID, post.AuthorID, post.Title, post.Excerpt, post.Category,
		post.Thumbnail, post.CoverImage, post.Content, post.ReadTime,
		post.ReferenceStatus, post.Featured,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var post domain.Post
	query := `SELECT * FROM posts WHERE id = $1`
	err := r.db.GetContext(ctx, &post, query, id)
	return &post, err
}

// GetByIDForUpdate locks the post row for the rest of the transaction so
// concurrent cascade deletes and reference updates on the same post
// serialize instead of racing.
func (r *postRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var post domain.Post
	query := `SELECT * FROM posts WHERE id = $1 FOR UPDATE`
	err := r.db.GetContext(ctx, &post, query, id)
	return &post, err
}

func (r *postRepository) GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.PostWithAuthor, error) {
	var post domain.PostWithAuthor
	query := `
		SELECT p.*, u.full_name AS author_name, u.avatar_url AS author_avatar,
			(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS likes
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1`
	err := r.db.GetContext(ctx, &post, query, id)
	return &post, err
}

func (r *postRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.PostWithAuthor, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM posts`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	var posts []domain.PostWithAuthor
	query := `
		SELECT p.*, u.full_name AS author_name, u.avatar_url AS author_avatar,
			(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS likes
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &posts, query, params.PageSize, params.Offset())
	return posts, total, err
}

func (r *postRepository) ListFeatured(ctx context.Context, limit int) ([]domain.PostWithAuthor, error) {
	var posts []domain.PostWithAuthor
	query := `
		SELECT p.*, u.full_name AS author_name, u.avatar_url AS author_avatar,
			(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS likes
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY likes DESC, p.created_at DESC
		LIMIT $1`
	err := r.db.SelectContext(ctx, &posts, query, limit)
	return posts, err
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string, params domain.PaginationParams) ([]domain.Post, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM posts WHERE author_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, authorID); err != nil {
		return nil, 0, err
	}

	var posts []domain.Post
	query := `
		SELECT * FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &posts, query, authorID, params.PageSize, params.Offset())
	return posts, total, err
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	query := `
		UPDATE posts
		SET title = $1, excerpt = $2, category = $3, thumbnail = $4, cover_image = $5,
			content = $6, read_time = $7, reference_status = $8, featured = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at`
	return r.db.QueryRowxContext(ctx, query,
		post.Title, post.Excerpt, post.Category, post.Thumbnail, post.CoverImage,
		post.Content, post.ReadTime, post.ReferenceStatus, post.Featured, post.ID,
	).Scan(&post.UpdatedAt)
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *postRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE posts SET views = views + 1 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
