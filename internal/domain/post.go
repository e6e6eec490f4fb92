package domain

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID              uuid.UUID `json:"id" db:"id"`
	AuthorID        string    `json:"author_id" db:"author_id"`
	Title           string    `json:"title" db:"title"`
	Excerpt         *string   `json:"excerpt,omitempty" db:"excerpt"`
	Category        string    `json:"category" db:"category"`
	Thumbnail       *string   `json:"thumbnail,omitempty" db:"thumbnail"`
	CoverImage      *string   `json:"cover_image,omitempty" db:"cover_image"`
	Content         string    `json:"content" db:"content"`
	ReadTime        int       `json:"read_time" db:"read_time"`
	ReferenceStatus bool      `json:"reference_status" db:"reference_status"`
	Featured        bool      `json:"featured" db:"featured"`
	Views           int64     `json:"views" db:"views"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// PostWithAuthor is the read model for single-post endpoints: the post
// plus its author profile and like count.
type PostWithAuthor struct {
	Post
	AuthorName   string  `json:"author_name" db:"author_name"`
	AuthorAvatar *string `json:"author_avatar,omitempty" db:"author_avatar"`
	Likes        int64   `json:"likes" db:"likes"`
}

type CreatePostInput struct {
	Title           string  `json:"title" validate:"required,min=3,max=300"`
	Excerpt         *string `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Category        string  `json:"category" validate:"required,max=100"`
	Thumbnail       *string `json:"thumbnail,omitempty" validate:"omitempty,url"`
	CoverImage      *string `json:"coverImage,omitempty" validate:"omitempty,url"`
	Content         string  `json:"content" validate:"required"`
	ReadTime        int     `json:"readTime" validate:"omitempty,min=0"`
	ThumbID         *string `json:"thumb_id,omitempty"`
	CoverID         *string `json:"cover_id,omitempty"`
	ReferenceStatus bool    `json:"referenceStatus"`
}

// MediaIDs collects the store-assigned identifiers submitted with the
// post. They are workflow inputs, never post columns.
func (in CreatePostInput) MediaIDs() []string {
	var ids []string
	if in.ThumbID != nil && *in.ThumbID != "" {
		ids = append(ids, *in.ThumbID)
	}
	if in.CoverID != nil && *in.CoverID != "" {
		ids = append(ids, *in.CoverID)
	}
	return ids
}

type UpdatePostInput struct {
	Title           *string `json:"title,omitempty" validate:"omitempty,min=3,max=300"`
	Excerpt         *string `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Category        *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Thumbnail       *string `json:"thumbnail,omitempty" validate:"omitempty,url"`
	CoverImage      *string `json:"coverImage,omitempty" validate:"omitempty,url"`
	Content         *string `json:"content,omitempty"`
	ReadTime        *int    `json:"readTime,omitempty" validate:"omitempty,min=0"`
	ReferenceStatus *bool   `json:"referenceStatus,omitempty"`

	// Workflow-only fields, stripped before the post row is updated.
	ThumbID *string `json:"thumb_id,omitempty"`
	CoverID *string `json:"cover_id,omitempty"`
	DelReq  bool    `json:"del_req,omitempty"`
}

func (in UpdatePostInput) MediaIDs() []string {
	var ids []string
	if in.ThumbID != nil && *in.ThumbID != "" {
		ids = append(ids, *in.ThumbID)
	}
	if in.CoverID != nil && *in.CoverID != "" {
		ids = append(ids, *in.CoverID)
	}
	return ids
}
